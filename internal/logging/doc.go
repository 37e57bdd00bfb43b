// Package logging provides structured logging for the aoc runner.
//
// # Overview
//
// Logging package wraps Zap with:
//   - Custom Trace level (-2, below Debug) for per-record parse output
//   - Automatic context field injection (run.id, puzzle.year/day/part)
//   - Per-level sampling (errors never sampled)
//   - An observable TestLogger for assertions in tests
//
// # Usage
//
//	cfg, err := logging.FromAppConfig(appCfg.Logging)
//	if err != nil {
//	    return err
//	}
//	logger, err := logging.NewLogger(cfg)
//	if err != nil {
//	    return err
//	}
//	defer logger.Sync()
//
//	ctx = logging.WithRunID(ctx, logging.NewRunID())
//	ctx = logging.WithPuzzle(ctx, logging.Puzzle{Year: 2023, Day: 4, Part: 1})
//	logger.Info(ctx, "RESULT", zap.Int("answer", 13))
//
// # Sampling
//
// Solvers log every parsed record at Trace, which floods on a full input.
// Each level below Error has its own sampler keyed by message; see
// DefaultLevelSamplingConfig.
//
// # Testing
//
//	tl := logging.NewTestLogger()
//	runner := puzzle.NewRunner(reg, tl.Logger)
//	...
//	tl.AssertLogged(t, zapcore.InfoLevel, "RESULT")
//	tl.AssertField(t, "RESULT", "answer", int64(13))
package logging
