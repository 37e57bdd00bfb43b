package y2021

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/aoc/internal/grammar"
)

func parseDepths(lines []string) ([]int, error) {
	depths := make([]int, 0, len(lines))
	for i, line := range lines {
		s := grammar.NewScanner(strings.TrimSpace(line))
		n, err := s.Uint()
		if err == nil {
			err = s.End()
		}
		if err != nil {
			return nil, fmt.Errorf("parse depth: %w", grammar.WithLine(err, i+1))
		}
		depths = append(depths, n)
	}
	return depths, nil
}

// CountIncreases counts the sums of window consecutive depths that are
// larger than the previous sum.
func CountIncreases(depths []int, window int) int {
	if window <= 0 {
		return 0
	}
	// Adjacent windows share all but their first and last element.
	count := 0
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			count++
		}
	}
	return count
}
