// Package y2021 holds the 2021 puzzles.
package y2021

import (
	"context"

	"github.com/fyrsmithlabs/aoc/internal/puzzle"
)

// Year is the event year of this package.
const Year = 2021

// Register adds every 2021 solver to reg.
func Register(reg *puzzle.Registry) {
	reg.Register(Year, 1, 1, func(_ context.Context, in *puzzle.Input) (int, error) {
		depths, err := parseDepths(in.Lines)
		if err != nil {
			return 0, err
		}
		return CountIncreases(depths, 1), nil
	})
	reg.Register(Year, 1, 2, func(_ context.Context, in *puzzle.Input) (int, error) {
		depths, err := parseDepths(in.Lines)
		if err != nil {
			return 0, err
		}
		return CountIncreases(depths, 3), nil
	})

	reg.Register(Year, 2, 1, func(_ context.Context, in *puzzle.Input) (int, error) {
		cmds, err := parseCommands(in.Lines)
		if err != nil {
			return 0, err
		}
		return Pilot(cmds)
	})
	reg.Register(Year, 2, 2, func(_ context.Context, in *puzzle.Input) (int, error) {
		cmds, err := parseCommands(in.Lines)
		if err != nil {
			return 0, err
		}
		return PilotWithAim(cmds)
	})

	reg.Register(Year, 3, 1, func(_ context.Context, in *puzzle.Input) (int, error) {
		r, err := ParseReport(in.Lines)
		if err != nil {
			return 0, err
		}
		return r.PowerConsumption(), nil
	})
	reg.Register(Year, 3, 2, func(_ context.Context, in *puzzle.Input) (int, error) {
		r, err := ParseReport(in.Lines)
		if err != nil {
			return 0, err
		}
		return r.LifeSupport(), nil
	})
}
