package y2023

import (
	"fmt"
	"strings"

	"github.com/fyrsmithlabs/aoc/internal/grammar"
)

// Cubes is a count of cubes per colour.
type Cubes struct {
	Red   int
	Green int
	Blue  int
}

// DefaultBound is the bag content the part 1 question asks about.
var DefaultBound = Cubes{Red: 12, Green: 13, Blue: 14}

// Within reports whether every component of c is at most the matching
// component of bound.
func (c Cubes) Within(bound Cubes) bool {
	return c.Red <= bound.Red && c.Green <= bound.Green && c.Blue <= bound.Blue
}

func (c Cubes) String() string {
	var items []string
	if c.Red > 0 {
		items = append(items, fmt.Sprintf("%d red", c.Red))
	}
	if c.Green > 0 {
		items = append(items, fmt.Sprintf("%d green", c.Green))
	}
	if c.Blue > 0 {
		items = append(items, fmt.Sprintf("%d blue", c.Blue))
	}
	if len(items) == 0 {
		return "0 red"
	}
	return strings.Join(items, ", ")
}

// Game is one line of the cube game record: an id and the handfuls of
// cubes revealed, in order.
type Game struct {
	ID     int
	Groups []Cubes
}

// Max returns the per-colour maximum across all groups.
func (g Game) Max() Cubes {
	var m Cubes
	for _, c := range g.Groups {
		m.Red = max(m.Red, c.Red)
		m.Green = max(m.Green, c.Green)
		m.Blue = max(m.Blue, c.Blue)
	}
	return m
}

// Power is the product of the per-colour maxima, clamped at math.MaxInt.
func (g Game) Power() int {
	m := g.Max()
	return satMul(satMul(m.Red, m.Green), m.Blue)
}

// Possible reports whether every group fits within bound.
func (g Game) Possible(bound Cubes) bool {
	for _, c := range g.Groups {
		if !c.Within(bound) {
			return false
		}
	}
	return true
}

// String renders the game in its input form. ParseGame(g.String()) yields
// a game equal to g.
func (g Game) String() string {
	groups := make([]string, len(g.Groups))
	for i, c := range g.Groups {
		groups[i] = c.String()
	}
	if len(groups) == 0 {
		return fmt.Sprintf("Game %d:", g.ID)
	}
	return fmt.Sprintf("Game %d: %s", g.ID, strings.Join(groups, "; "))
}

// ParseGame parses a line of the form
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// Spaces and tabs around tokens are insignificant. A colour missing from a
// group counts as zero; a colour repeated within a group is summed. A body
// of only whitespace has no groups.
func ParseGame(line string) (Game, error) {
	s := grammar.NewScanner(line)

	s.SkipSpace()
	if err := s.Literal("Game"); err != nil {
		return Game{}, err
	}
	s.SkipSpace()
	id, err := s.Uint()
	if err != nil {
		return Game{}, err
	}
	s.SkipSpace()
	if err := s.Byte(':'); err != nil {
		return Game{}, err
	}

	groups, err := parseGroups(s)
	if err != nil {
		return Game{}, err
	}
	return Game{ID: id, Groups: groups}, nil
}

func parseGroups(s *grammar.Scanner) ([]Cubes, error) {
	groups := []Cubes{}

	s.SkipSpace()
	if s.AtEnd() {
		return groups, nil
	}

	for {
		c, err := parseGroup(s)
		if err != nil {
			return nil, err
		}
		groups = append(groups, c)

		if s.Accept(';') {
			continue
		}
		if err := s.End(); err != nil {
			return nil, err
		}
		return groups, nil
	}
}

// parseGroup consumes a comma separated list of "<n> <colour>" items and any
// whitespace that follows it.
func parseGroup(s *grammar.Scanner) (Cubes, error) {
	var c Cubes
	for {
		s.SkipSpace()
		n, err := s.Uint()
		if err != nil {
			return Cubes{}, err
		}

		s.SkipSpace()
		start := s.Pos()
		switch colour := s.Word(); colour {
		case "red":
			c.Red += n
		case "green":
			c.Green += n
		case "blue":
			c.Blue += n
		case "":
			return Cubes{}, s.Errorf("expected colour after %d", n)
		default:
			return Cubes{}, s.ErrorAt(start, "unknown colour %q", colour)
		}

		s.SkipSpace()
		if !s.Accept(',') {
			return c, nil
		}
	}
}
