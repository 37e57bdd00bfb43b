package y2020

import (
	"fmt"

	"github.com/fyrsmithlabs/aoc/internal/grammar"
)

const tree = '#'

// Slope is a toboggan trajectory: Right columns for every Down rows.
type Slope struct {
	Right int
	Down  int
}

// Slopes are the trajectories checked by part 2.
var Slopes = []Slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

// Terrain is the map of open squares and trees. Each row repeats to the
// right indefinitely.
type Terrain []string

// ParseTerrain validates the map rows. Rows may only hold '.' and '#' and
// must not be empty.
func ParseTerrain(lines []string) (Terrain, error) {
	for i, line := range lines {
		if line == "" {
			return nil, fmt.Errorf("parse terrain: %w", grammar.WithLine(grammar.Errorf(line, 0, "empty row"), i+1))
		}
		for col := 0; col < len(line); col++ {
			if c := line[col]; c != '.' && c != tree {
				return nil, fmt.Errorf("parse terrain: %w",
					grammar.WithLine(grammar.Errorf(line, col, "unexpected %q", c), i+1))
			}
		}
	}
	return Terrain(lines), nil
}

// Trees counts the trees hit following s from the top left corner.
func (t Terrain) Trees(s Slope) int {
	if s.Down <= 0 {
		return 0
	}
	trees := 0
	col := 0
	for row := 0; row < len(t); row += s.Down {
		line := t[row]
		if line[col%len(line)] == tree {
			trees++
		}
		col += s.Right
	}
	return trees
}

// TreeProduct multiplies the trees hit on every slope.
func (t Terrain) TreeProduct(slopes []Slope) int {
	product := 1
	for _, s := range slopes {
		product *= t.Trees(s)
	}
	return product
}
