package y2023

import "math"

// Scores and powers are non-negative and clamp at math.MaxInt instead of
// wrapping, so a larger input never yields a smaller result.

func satAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func satMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
