// Package puzzle wires solvers to puzzles and runs them against their inputs.
//
// A solver is registered per (year, day, part). The Runner loads a day's
// input once, splits it according to the configured trailing line policy
// and runs the requested parts in order, logging each answer.
package puzzle

import (
	"context"
	"errors"
	"fmt"
)

// Errors for registry and runner operations.
var (
	ErrUnknownPuzzle  = errors.New("unknown puzzle")
	ErrNoSolution     = errors.New("no solution")
	ErrAnswerMismatch = errors.New("answer mismatch")
)

// Key identifies a single puzzle part.
type Key struct {
	Year int
	Day  int
	Part int
}

func (k Key) String() string {
	return fmt.Sprintf("%d/day_%02d/part_%d", k.Year, k.Day, k.Part)
}

// Less orders keys by year, day, then part.
func (k Key) Less(o Key) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	if k.Day != o.Day {
		return k.Day < o.Day
	}
	return k.Part < o.Part
}

// Input is a loaded puzzle input.
type Input struct {
	Path string
	Text string
	// Lines is Text split according to the trailing line policy.
	Lines []string
}

// Solver computes the answer for one puzzle part.
type Solver func(ctx context.Context, in *Input) (int, error)
