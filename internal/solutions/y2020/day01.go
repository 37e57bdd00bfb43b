package y2020

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/aoc/internal/grammar"
	"github.com/fyrsmithlabs/aoc/internal/puzzle"
)

// parseEntries reads one unsigned integer per line.
func parseEntries(lines []string) ([]int, error) {
	entries := make([]int, 0, len(lines))
	for i, line := range lines {
		s := grammar.NewScanner(strings.TrimSpace(line))
		n, err := s.Uint()
		if err == nil {
			err = s.End()
		}
		if err != nil {
			return nil, fmt.Errorf("parse entry: %w", grammar.WithLine(err, i+1))
		}
		entries = append(entries, n)
	}
	return entries, nil
}

// PairProduct finds two entries summing to target and returns their product.
func PairProduct(entries []int, target int) (int, error) {
	seen := make(map[int]struct{}, len(entries))
	for _, x := range entries {
		if _, ok := seen[target-x]; ok {
			return x * (target - x), nil
		}
		seen[x] = struct{}{}
	}
	return 0, fmt.Errorf("%w: no two entries sum to %d", puzzle.ErrNoSolution, target)
}

// TripleProduct finds three distinct entries summing to target and returns
// their product.
func TripleProduct(entries []int, target int) (int, error) {
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			for k := j + 1; k < len(entries); k++ {
				if entries[i]+entries[j]+entries[k] == target {
					return entries[i] * entries[j] * entries[k], nil
				}
			}
		}
	}
	return 0, fmt.Errorf("%w: no three entries sum to %d", puzzle.ErrNoSolution, target)
}
