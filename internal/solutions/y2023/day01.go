package y2023

import (
	"strings"
)

var spelledDigits = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// CalibrationValue combines the first and last digit of line into a two
// digit number. With spelled set, the words one through nine count as
// digits too, and may overlap ("eightwo" is 8 then 2). A line without any
// digit is worth 0.
func CalibrationValue(line string, spelled bool) int {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d := digitAt(line, i, spelled)
		if d < 0 {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0
	}
	return 10*first + last
}

func digitAt(line string, i int, spelled bool) int {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0')
	}
	if !spelled {
		return -1
	}
	for d, word := range spelledDigits {
		if strings.HasPrefix(line[i:], word) {
			return d + 1
		}
	}
	return -1
}

// SumCalibration sums the calibration value of every line.
func SumCalibration(lines []string, spelled bool) int {
	sum := 0
	for _, line := range lines {
		sum += CalibrationValue(line, spelled)
	}
	return sum
}
