package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/aoc/internal/input"
)

func newListCmd(a *app) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the puzzles with solutions",
		Long: `List every registered puzzle with its parts and whether its input file
is present under input.dir.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			years := a.registry.Years()
			if year != 0 {
				years = []int{year}
			}

			out := cmd.OutOrStdout()
			for _, y := range years {
				days := a.registry.Days(y)
				if len(days) == 0 {
					return fmt.Errorf("no solutions for %d", y)
				}
				fmt.Fprintln(out, headerStyle.Render(fmt.Sprint(y)))
				for _, d := range days {
					parts := a.registry.Parts(y, d)
					labels := make([]string, len(parts))
					for i, p := range parts {
						labels[i] = fmt.Sprint(p)
					}

					status := dimStyle.Render("no input")
					if _, err := os.Stat(input.Path(a.cfg.Input.Dir, y, d)); err == nil {
						status = okStyle.Render("input")
					}
					fmt.Fprintf(out, "  %s  %s  %s\n",
						labelStyle.Render(fmt.Sprintf("day %02d", d)),
						valueStyle.Width(10).Render("parts "+strings.Join(labels, ",")),
						status)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", 0, "only list this year")
	return cmd
}
