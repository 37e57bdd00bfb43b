package config

import (
	"fmt"
	"time"
)

// Duration is a time.Duration read from text such as "250ms", so YAML and
// AOC_LOGGING_SAMPLING_TICK accept the same spelling.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	if v < 0 {
		return fmt.Errorf("invalid duration %q: must not be negative", text)
	}
	*d = Duration(v)
	return nil
}

// MarshalYAML renders the value as `aoc config` prints it, e.g. "1s".
func (d Duration) MarshalYAML() (any, error) {
	return d.Duration().String(), nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
