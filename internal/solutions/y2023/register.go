// Package y2023 holds the 2023 puzzles.
package y2023

import (
	"context"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/aoc/internal/logging"
	"github.com/fyrsmithlabs/aoc/internal/puzzle"
)

// Year is the event year of this package.
const Year = 2023

// Options tunes the 2023 solvers.
type Options struct {
	// Bound is the bag content checked by day 2 part 1.
	Bound Cubes
}

// DefaultOptions returns the options the puzzles are stated with.
func DefaultOptions() Options {
	return Options{Bound: DefaultBound}
}

// Register adds every 2023 solver to reg.
func Register(reg *puzzle.Registry, opts Options) {
	reg.Register(Year, 1, 1, func(_ context.Context, in *puzzle.Input) (int, error) {
		return SumCalibration(in.Lines, false), nil
	})
	reg.Register(Year, 1, 2, func(_ context.Context, in *puzzle.Input) (int, error) {
		return SumCalibration(in.Lines, true), nil
	})

	reg.Register(Year, 2, 1, func(ctx context.Context, in *puzzle.Input) (int, error) {
		games, err := parseGames(ctx, in.Lines)
		if err != nil {
			return 0, err
		}
		logging.FromContext(ctx).Debug(ctx, "checking games against bound",
			zap.Int("games", len(games)),
			zap.Stringer("bound", opts.Bound))
		return sumPossible(games, opts.Bound), nil
	})
	reg.Register(Year, 2, 2, func(ctx context.Context, in *puzzle.Input) (int, error) {
		games, err := parseGames(ctx, in.Lines)
		if err != nil {
			return 0, err
		}
		return sumPower(games), nil
	})

	reg.Register(Year, 3, 1, func(_ context.Context, in *puzzle.Input) (int, error) {
		return SumPartNumbers(in.Lines), nil
	})
	reg.Register(Year, 3, 2, func(_ context.Context, in *puzzle.Input) (int, error) {
		return SumGearRatios(in.Lines), nil
	})

	reg.Register(Year, 4, 1, func(ctx context.Context, in *puzzle.Input) (int, error) {
		cards, err := parseCards(ctx, in.Lines)
		if err != nil {
			return 0, err
		}
		return sumCardScores(cards), nil
	})
	reg.Register(Year, 4, 2, func(ctx context.Context, in *puzzle.Input) (int, error) {
		cards, err := parseCards(ctx, in.Lines)
		if err != nil {
			return 0, err
		}
		return TotalScratchcards(cards), nil
	})
}
