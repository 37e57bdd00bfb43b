// Package config provides configuration loading for aoc.
//
// Configuration is layered: built-in defaults, an optional YAML file, then
// AOC_* environment variables. See LoadWithFile for precedence details.
package config

import (
	"errors"
	"fmt"

	"github.com/fyrsmithlabs/aoc/internal/input"
)

// Config holds the complete aoc configuration.
type Config struct {
	Input   InputConfig   `koanf:"input" yaml:"input"`
	Logging LoggingConfig `koanf:"logging" yaml:"logging"`
	Answers AnswersConfig `koanf:"answers" yaml:"answers"`
	Puzzles PuzzlesConfig `koanf:"puzzles" yaml:"puzzles"`
}

// InputConfig controls where puzzle inputs live and how they are split.
type InputConfig struct {
	Dir string `koanf:"dir" yaml:"dir"`
	// Trailing is the trailing empty line policy: "ignore" or "strict".
	Trailing string `koanf:"trailing" yaml:"trailing"`
}

// LoggingConfig holds the user-facing subset of logging options.
type LoggingConfig struct {
	Level        string   `koanf:"level" yaml:"level"`
	Format       string   `koanf:"format" yaml:"format"`
	Sampling     bool     `koanf:"sampling" yaml:"sampling"`
	SamplingTick Duration `koanf:"sampling_tick" yaml:"sampling_tick"`
}

// AnswersConfig points at a TOML file of known answers used by --check.
type AnswersConfig struct {
	Path string `koanf:"path" yaml:"path"`
}

// PuzzlesConfig holds per-puzzle tunables.
//
// Keys are flat so that every field maps onto a single AOC_PUZZLES_* variable.
type PuzzlesConfig struct {
	CubeRed       int `koanf:"cube_red" yaml:"cube_red"`
	CubeGreen     int `koanf:"cube_green" yaml:"cube_green"`
	CubeBlue      int `koanf:"cube_blue" yaml:"cube_blue"`
	ExpenseTarget int `koanf:"expense_target" yaml:"expense_target"`
}

// TrailingPolicy returns the parsed trailing line policy.
// Call Validate first; an invalid value falls back to input.TrailingIgnore.
func (c *Config) TrailingPolicy() input.TrailingPolicy {
	p, err := input.ParseTrailingPolicy(c.Input.Trailing)
	if err != nil {
		return input.TrailingIgnore
	}
	return p
}

// Validate validates the configuration.
//
// Returns an error if:
//   - the input directory is empty
//   - the trailing policy is unknown
//   - the log format is not json or console
//   - sampling is enabled with a non-positive tick
//   - any cube bound is negative
func (c *Config) Validate() error {
	if c.Input.Dir == "" {
		return errors.New("input dir must not be empty")
	}
	if _, err := input.ParseTrailingPolicy(c.Input.Trailing); err != nil {
		return fmt.Errorf("invalid input.trailing: %w", err)
	}

	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging format must be 'json' or 'console', got %q", c.Logging.Format)
	}
	if c.Logging.Sampling && c.Logging.SamplingTick.Duration() <= 0 {
		return errors.New("sampling tick must be > 0 when sampling enabled")
	}

	if c.Puzzles.CubeRed < 0 || c.Puzzles.CubeGreen < 0 || c.Puzzles.CubeBlue < 0 {
		return fmt.Errorf("cube bounds must be non-negative, got red=%d green=%d blue=%d",
			c.Puzzles.CubeRed, c.Puzzles.CubeGreen, c.Puzzles.CubeBlue)
	}

	return nil
}
