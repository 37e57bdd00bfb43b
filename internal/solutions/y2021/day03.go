package y2021

import (
	"fmt"

	"github.com/fyrsmithlabs/aoc/internal/grammar"
	"github.com/fyrsmithlabs/aoc/internal/puzzle"
)

// Report is the diagnostic report: equal width rows of '0' and '1'.
type Report struct {
	rows  []string
	width int
}

// ParseReport checks every row is binary and as wide as the first.
func ParseReport(lines []string) (*Report, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty diagnostic report", puzzle.ErrNoSolution)
	}
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width || width == 0 {
			return nil, fmt.Errorf("parse report: %w", grammar.WithLine(
				grammar.Errorf(line, 0, "row width %d, want %d", len(line), width), i+1))
		}
		for col := 0; col < len(line); col++ {
			if c := line[col]; c != '0' && c != '1' {
				return nil, fmt.Errorf("parse report: %w", grammar.WithLine(
					grammar.Errorf(line, col, "unexpected %q", c), i+1))
			}
		}
	}
	return &Report{rows: lines, width: width}, nil
}

// PowerConsumption multiplies the gamma rate, built from the most common
// bit of each column, by the epsilon rate, its complement.
func (r *Report) PowerConsumption() int {
	gamma := 0
	for col := 0; col < r.width; col++ {
		gamma <<= 1
		if 2*ones(r.rows, col) > len(r.rows) {
			gamma |= 1
		}
	}
	epsilon := (1<<r.width - 1) ^ gamma
	return gamma * epsilon
}

// LifeSupport multiplies the oxygen generator rating by the CO2 scrubber
// rating.
func (r *Report) LifeSupport() int {
	oxygen := r.rating(true)
	co2 := r.rating(false)
	return oxygen * co2
}

// rating filters rows column by column until one remains. With mostCommon
// the rows holding the column's most common bit are kept, ties keeping '1';
// otherwise the least common bit is kept, ties keeping '0'. A column where
// every row agrees filters nothing.
func (r *Report) rating(mostCommon bool) int {
	rows := r.rows
	for col := 0; col < r.width && len(rows) > 1; col++ {
		hasMoreOnes := 2*ones(rows, col) >= len(rows)
		keep := byte('0')
		if hasMoreOnes == mostCommon {
			keep = '1'
		}
		kept := make([]string, 0, len(rows))
		for _, row := range rows {
			if row[col] == keep {
				kept = append(kept, row)
			}
		}
		if len(kept) > 0 {
			rows = kept
		}
	}
	return binary(rows[0])
}

func ones(rows []string, col int) int {
	n := 0
	for _, row := range rows {
		if row[col] == '1' {
			n++
		}
	}
	return n
}

func binary(row string) int {
	v := 0
	for i := 0; i < len(row); i++ {
		v = v<<1 | int(row[i]-'0')
	}
	return v
}
