package y2021

import (
	"errors"
	"fmt"

	"github.com/fyrsmithlabs/aoc/internal/grammar"
)

// ErrAboveSurface is returned when the submarine would rise past depth 0.
var ErrAboveSurface = errors.New("submarine above the surface")

// Direction is a submarine command verb.
type Direction int

const (
	Forward Direction = iota
	Up
	Down
)

var directions = map[string]Direction{
	"forward": Forward,
	"up":      Up,
	"down":    Down,
}

// Command is one planned move.
type Command struct {
	Dir Direction
	N   int
}

// ParseCommand parses a line of the form "forward 5".
func ParseCommand(line string) (Command, error) {
	s := grammar.NewScanner(line)

	s.SkipSpace()
	start := s.Pos()
	word := s.Word()
	dir, ok := directions[word]
	if !ok {
		return Command{}, s.ErrorAt(start, "unknown command %q", word)
	}
	if b, ok := s.Peek(); !ok || (b != ' ' && b != '\t') {
		return Command{}, s.Errorf("expected space after %s", word)
	}
	s.SkipSpace()
	n, err := s.Uint()
	if err != nil {
		return Command{}, err
	}
	s.SkipSpace()
	if err := s.End(); err != nil {
		return Command{}, err
	}
	return Command{Dir: dir, N: n}, nil
}

func parseCommands(lines []string) ([]Command, error) {
	cmds := make([]Command, 0, len(lines))
	for i, line := range lines {
		c, err := ParseCommand(line)
		if err != nil {
			return nil, fmt.Errorf("parse command: %w", grammar.WithLine(err, i+1))
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// Pilot applies cmds where up and down change depth directly and returns
// horizontal position times depth.
func Pilot(cmds []Command) (int, error) {
	pos, depth := 0, 0
	for i, c := range cmds {
		switch c.Dir {
		case Forward:
			pos += c.N
		case Up:
			if c.N > depth {
				return 0, fmt.Errorf("command %d: up %d from depth %d: %w", i+1, c.N, depth, ErrAboveSurface)
			}
			depth -= c.N
		case Down:
			depth += c.N
		}
	}
	return pos * depth, nil
}

// PilotWithAim applies cmds where up and down steer the aim and forward
// moves along it, and returns horizontal position times depth.
func PilotWithAim(cmds []Command) (int, error) {
	pos, depth, aim := 0, 0, 0
	for i, c := range cmds {
		switch c.Dir {
		case Forward:
			pos += c.N
			depth += aim * c.N
			if depth < 0 {
				return 0, fmt.Errorf("command %d: forward %d at aim %d: %w", i+1, c.N, aim, ErrAboveSurface)
			}
		case Up:
			aim -= c.N
		case Down:
			aim += c.N
		}
	}
	return pos * depth, nil
}
