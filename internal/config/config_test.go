package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/aoc/internal/input"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "data", cfg.Input.Dir)
	assert.Equal(t, input.TrailingIgnore, cfg.TrailingPolicy())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Sampling)
	assert.Empty(t, cfg.Answers.Path)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "empty input dir",
			mutate:  func(c *Config) { c.Input.Dir = "" },
			wantErr: "input dir",
		},
		{
			name:    "unknown trailing policy",
			mutate:  func(c *Config) { c.Input.Trailing = "lenient" },
			wantErr: "input.trailing",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging format",
		},
		{
			name: "sampling without tick",
			mutate: func(c *Config) {
				c.Logging.Sampling = true
				c.Logging.SamplingTick = 0
			},
			wantErr: "sampling tick",
		},
		{
			name: "sampling disabled ignores tick",
			mutate: func(c *Config) {
				c.Logging.Sampling = false
				c.Logging.SamplingTick = 0
			},
		},
		{
			name:    "negative bound",
			mutate:  func(c *Config) { c.Puzzles.CubeBlue = -1 },
			wantErr: "cube bounds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_TrailingPolicy(t *testing.T) {
	cfg := Default()
	cfg.Input.Trailing = "strict"
	assert.Equal(t, input.TrailingStrict, cfg.TrailingPolicy())

	cfg.Input.Trailing = "bogus"
	assert.Equal(t, input.TrailingIgnore, cfg.TrailingPolicy())
}

func TestDuration_UnmarshalText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1500ms")))
	assert.Equal(t, "1.5s", d.Duration().String())

	assert.Error(t, d.UnmarshalText([]byte("-1s")))
	assert.Error(t, d.UnmarshalText([]byte("soon")))

	out, err := d.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", out)
}
