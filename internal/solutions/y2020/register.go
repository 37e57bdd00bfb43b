// Package y2020 holds the 2020 puzzles.
package y2020

import (
	"context"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/aoc/internal/input"
	"github.com/fyrsmithlabs/aoc/internal/logging"
	"github.com/fyrsmithlabs/aoc/internal/puzzle"
)

// Year is the event year of this package.
const Year = 2020

// Options tunes the 2020 solvers.
type Options struct {
	// ExpenseTarget is the sum day 1 searches for.
	ExpenseTarget int
}

// DefaultOptions returns the options the puzzles are stated with.
func DefaultOptions() Options {
	return Options{ExpenseTarget: 2020}
}

// Register adds every 2020 solver to reg.
func Register(reg *puzzle.Registry, opts Options) {
	reg.Register(Year, 1, 1, func(ctx context.Context, in *puzzle.Input) (int, error) {
		entries, err := parseEntries(in.Lines)
		if err != nil {
			return 0, err
		}
		logging.FromContext(ctx).Debug(ctx, "searching expense report",
			zap.Int("entries", len(entries)),
			zap.Int("target", opts.ExpenseTarget))
		return PairProduct(entries, opts.ExpenseTarget)
	})
	reg.Register(Year, 1, 2, func(_ context.Context, in *puzzle.Input) (int, error) {
		entries, err := parseEntries(in.Lines)
		if err != nil {
			return 0, err
		}
		return TripleProduct(entries, opts.ExpenseTarget)
	})

	reg.Register(Year, 2, 1, func(_ context.Context, in *puzzle.Input) (int, error) {
		return CountValidPasswords(in.Lines, PasswordEntry.ValidCount)
	})
	reg.Register(Year, 2, 2, func(_ context.Context, in *puzzle.Input) (int, error) {
		return CountValidPasswords(in.Lines, PasswordEntry.ValidPosition)
	})

	reg.Register(Year, 3, 1, func(_ context.Context, in *puzzle.Input) (int, error) {
		t, err := ParseTerrain(in.Lines)
		if err != nil {
			return 0, err
		}
		return t.Trees(Slope{Right: 3, Down: 1}), nil
	})
	reg.Register(Year, 3, 2, func(_ context.Context, in *puzzle.Input) (int, error) {
		t, err := ParseTerrain(in.Lines)
		if err != nil {
			return 0, err
		}
		return t.TreeProduct(Slopes), nil
	})

	reg.Register(Year, 4, 1, func(_ context.Context, in *puzzle.Input) (int, error) {
		return CountPassports(input.Blocks(in.Text), Passport.Complete), nil
	})
	reg.Register(Year, 4, 2, func(_ context.Context, in *puzzle.Input) (int, error) {
		return CountPassports(input.Blocks(in.Text), Passport.Valid), nil
	})
}
