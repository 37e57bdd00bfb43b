// Package input loads puzzle input files and splits them into records.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyInput indicates an input file had no records after splitting.
var ErrEmptyInput = errors.New("input is empty")

// IOError reports a puzzle input that could not be loaded.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read input %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// TrailingPolicy decides what happens to empty segments at the end of a file.
type TrailingPolicy int

const (
	// TrailingIgnore drops empty segments after the last record.
	TrailingIgnore TrailingPolicy = iota
	// TrailingStrict keeps every segment, so a trailing newline yields a
	// final empty line that line parsers will reject.
	TrailingStrict
)

func (p TrailingPolicy) String() string {
	switch p {
	case TrailingIgnore:
		return "ignore"
	case TrailingStrict:
		return "strict"
	default:
		return fmt.Sprintf("TrailingPolicy(%d)", int(p))
	}
}

// ParseTrailingPolicy parses "ignore" or "strict". The empty string means ignore.
func ParseTrailingPolicy(s string) (TrailingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return TrailingIgnore, nil
	case "strict":
		return TrailingStrict, nil
	default:
		return TrailingIgnore, fmt.Errorf("unknown trailing policy %q (want ignore or strict)", s)
	}
}

// Read loads a whole input file as text.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}
	return string(data), nil
}

// Path returns the conventional location of a day's input:
// <dir>/<year>/day_<NN>/input.txt.
func Path(dir string, year, day int) string {
	return filepath.Join(dir, fmt.Sprint(year), fmt.Sprintf("day_%02d", day), "input.txt")
}

// Lines splits text on newlines, strips carriage returns and applies the
// trailing policy.
func Lines(text string, policy TrailingPolicy) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	if policy == TrailingIgnore {
		for len(lines) > 0 && lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
	}
	return lines
}

// Blocks splits text into groups of lines separated by blank lines.
// Each block is returned with its lines joined by a single space.
func Blocks(text string) []string {
	var (
		blocks []string
		cur    []string
	)
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, " "))
			cur = cur[:0]
		}
	}
	for _, line := range Lines(text, TrailingIgnore) {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}
