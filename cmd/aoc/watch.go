package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/aoc/internal/input"
	"github.com/fyrsmithlabs/aoc/internal/logging"
	"github.com/fyrsmithlabs/aoc/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var (
		sel      selection
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rerun a day whenever its input changes",
		Long: `Run a day once, then again every time its input file is written.
Stop with Ctrl-C.

Examples:
  # Iterate on a sample input
  aoc watch -y 2023 -d 3 -i sample.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := sel.resolve(a.registry); err != nil {
				return err
			}
			runner, err := a.newRunner(false)
			if err != nil {
				return err
			}

			path := sel.input
			if path == "" {
				path = input.Path(a.cfg.Input.Dir, sel.year, sel.day)
			}

			out := cmd.OutOrStdout()
			rerun := func(ctx context.Context, _ string) {
				results, err := runner.RunDay(ctx, sel.year, sel.day, sel.parts(), path)
				if err != nil {
					a.logger.Error(ctx, "run failed", zap.Error(err))
					return
				}
				renderResults(out, results)
			}

			w, err := watch.New([]string{path}, debounce, a.logger)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rerun(ctx, path)
			logging.FromContext(ctx).Info(ctx, "waiting for input changes", zap.String("path", path))

			if err := w.Run(ctx, rerun); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	sel.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before rerunning")
	return cmd
}
