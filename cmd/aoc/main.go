// Package main implements the aoc CLI, which runs Advent of Code solvers
// against their puzzle inputs.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/aoc/internal/config"
	"github.com/fyrsmithlabs/aoc/internal/logging"
	"github.com/fyrsmithlabs/aoc/internal/puzzle"
	"github.com/fyrsmithlabs/aoc/internal/solutions/y2020"
	"github.com/fyrsmithlabs/aoc/internal/solutions/y2021"
	"github.com/fyrsmithlabs/aoc/internal/solutions/y2023"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// errPartsFailed is returned after the summary has been printed so that the
// process exits non-zero without repeating the failures.
var errPartsFailed = errors.New("one or more puzzle parts failed")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errPartsFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// app is the state shared by subcommands once the root command has loaded
// configuration.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg      *config.Config
	logger   *logging.Logger
	registry *puzzle.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "aoc",
		Short: "Run Advent of Code solutions",
		Long: `aoc runs Advent of Code puzzle solvers against their inputs and reports
the answers.

Inputs are read from <input.dir>/<year>/day_<NN>/input.txt. Configuration is
loaded from ~/.config/aoc/config.yaml (or --config) and AOC_* environment
variables.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.logger != nil {
				return a.logger.Sync()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.config/aoc/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: console or json")

	rootCmd.AddCommand(
		newRunCmd(a),
		newListCmd(a),
		newWatchCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads configuration, applies flag overrides and builds the logger
// and solver registry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadWithFile(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logCfg, err := logging.FromAppConfig(cfg.Logging)
	if err != nil {
		return err
	}
	logger, err := logging.NewLoggerWithWriter(logCfg, zapcore.AddSync(cmd.ErrOrStderr()))
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.registry = newRegistry(cfg)

	ctx := logging.WithRunID(cmd.Context(), logging.NewRunID())
	cmd.SetContext(logging.WithLogger(ctx, logger))
	return nil
}

// newRegistry registers every solver with its configured options.
func newRegistry(cfg *config.Config) *puzzle.Registry {
	reg := puzzle.NewRegistry()
	y2020.Register(reg, y2020.Options{ExpenseTarget: cfg.Puzzles.ExpenseTarget})
	y2021.Register(reg)
	y2023.Register(reg, y2023.Options{Bound: y2023.Cubes{
		Red:   cfg.Puzzles.CubeRed,
		Green: cfg.Puzzles.CubeGreen,
		Blue:  cfg.Puzzles.CubeBlue,
	}})
	return reg
}

// newRunner builds a runner from the loaded configuration. Answers are
// loaded only when check is set.
func (a *app) newRunner(check bool) (*puzzle.Runner, error) {
	opts := []puzzle.RunnerOption{
		puzzle.WithInputDir(a.cfg.Input.Dir),
		puzzle.WithTrailingPolicy(a.cfg.TrailingPolicy()),
	}
	if check {
		if a.cfg.Answers.Path == "" {
			return nil, errors.New("--check needs answers.path to be configured")
		}
		answers, err := puzzle.LoadAnswers(a.cfg.Answers.Path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, puzzle.WithAnswers(answers))
	}
	return puzzle.NewRunner(a.registry, a.logger, opts...)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		// Skip configuration loading.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "aoc by Fyrsmith Labs\n")
			fmt.Fprintf(out, "Version:    %s\n", version)
			fmt.Fprintf(out, "Commit:     %s\n", gitCommit)
			fmt.Fprintf(out, "Build Date: %s\n", buildDate)
			return nil
		},
	}
}
