package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/aoc/internal/puzzle"
)

// selection is the puzzle set chosen by --year, --day, --part and --all.
type selection struct {
	year  int
	day   int
	part  int
	all   bool
	input string
}

func (s *selection) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&s.year, "year", "y", 0, "event year (default: latest with solutions)")
	cmd.Flags().IntVarP(&s.day, "day", "d", 0, "day to run (default: latest of the year)")
	cmd.Flags().IntVarP(&s.part, "part", "p", 0, "part to run, 1 or 2 (default: both)")
	cmd.Flags().StringVarP(&s.input, "input", "i", "", "input file (default: <input.dir>/<year>/day_<NN>/input.txt)")
}

// resolve fills in the latest year and day where they were not given.
func (s *selection) resolve(reg *puzzle.Registry) error {
	if s.part != 0 && s.part != 1 && s.part != 2 {
		return fmt.Errorf("--part must be 1 or 2, got %d", s.part)
	}
	if s.all {
		if s.day != 0 || s.part != 0 || s.input != "" {
			return errors.New("--all cannot be combined with --day, --part or --input")
		}
		return nil
	}

	latestYear, latestDay, ok := reg.Latest()
	if !ok {
		return puzzle.ErrUnknownPuzzle
	}
	if s.year == 0 {
		s.year = latestYear
	}
	if s.day == 0 {
		days := reg.Days(s.year)
		if len(days) == 0 {
			return fmt.Errorf("%w: no days registered for %d", puzzle.ErrUnknownPuzzle, s.year)
		}
		s.day = days[len(days)-1]
		if s.year == latestYear {
			s.day = latestDay
		}
	}
	return nil
}

func (s *selection) parts() []int {
	if s.part == 0 {
		return nil
	}
	return []int{s.part}
}

func newRunCmd(a *app) *cobra.Command {
	var (
		sel   selection
		check bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run puzzle solutions",
		Long: `Run one day, one part, a whole year or everything.

Examples:
  # Run the latest day
  aoc run

  # Run part 2 of 2023 day 4 against a sample
  aoc run -y 2023 -d 4 -p 2 -i sample.txt

  # Run every 2020 puzzle and compare with known answers
  aoc run -y 2020 --all --check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := sel.resolve(a.registry); err != nil {
				return err
			}
			runner, err := a.newRunner(check)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var results []puzzle.Result
			switch {
			case sel.all && sel.year != 0:
				results, err = runner.RunYear(ctx, sel.year)
			case sel.all:
				for _, year := range a.registry.Years() {
					var yearResults []puzzle.Result
					yearResults, err = runner.RunYear(ctx, year)
					results = append(results, yearResults...)
					if err != nil {
						break
					}
				}
			default:
				results, err = runner.RunDay(ctx, sel.year, sel.day, sel.parts(), sel.input)
			}
			if err != nil {
				return err
			}

			renderResults(cmd.OutOrStdout(), results)
			if puzzle.Failed(results) {
				return errPartsFailed
			}
			return nil
		},
	}

	sel.register(cmd)
	cmd.Flags().BoolVarP(&sel.all, "all", "a", false, "run every registered day (of --year when given)")
	cmd.Flags().BoolVar(&check, "check", false, "compare answers with the answers file")
	return cmd
}
