package y2023

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/aoc/internal/grammar"
)

var gameSample = []string{
	"Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
	"Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue",
	"Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red",
	"Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red",
	"Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green",
}

func TestParseGame(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Game
	}{
		{
			name: "example",
			line: "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green",
			want: Game{ID: 1, Groups: []Cubes{
				{Red: 4, Green: 0, Blue: 3},
				{Red: 1, Green: 2, Blue: 6},
				{Red: 0, Green: 2, Blue: 0},
			}},
		},
		{
			name: "extra whitespace and tabs",
			line: "  Game\t7 :\t1 red ,2 blue ;  3 green  ",
			want: Game{ID: 7, Groups: []Cubes{{Red: 1, Blue: 2}, {Green: 3}}},
		},
		{
			name: "no space between number and colour",
			line: "Game 2: 5red",
			want: Game{ID: 2, Groups: []Cubes{{Red: 5}}},
		},
		{
			name: "repeated colour is summed",
			line: "Game 3: 1 red, 2 red, 1 blue",
			want: Game{ID: 3, Groups: []Cubes{{Red: 3, Blue: 1}}},
		},
		{
			name: "empty body",
			line: "Game 4:",
			want: Game{ID: 4, Groups: []Cubes{}},
		},
		{
			name: "whitespace body",
			line: "Game 5:  \t ",
			want: Game{ID: 5, Groups: []Cubes{}},
		},
		{
			name: "zero counts",
			line: "Game 6: 0 red",
			want: Game{ID: 6, Groups: []Cubes{{}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGame(tt.line)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseGame(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseGame_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantMsg string
	}{
		{"unknown colour", "Game 1: 4 purple", `unknown colour "purple"`},
		{"missing keyword", "1: 4 red", `expected "Game"`},
		{"wrong keyword", "Card 1: 4 red", `expected "Game"`},
		{"missing id", "Game : 4 red", "expected integer"},
		{"missing colon", "Game 1 4 red", `expected ':'`},
		{"missing count", "Game 1: red", "expected integer"},
		{"missing colour", "Game 1: 4", "expected colour"},
		{"empty group", "Game 1: 4 red;; 2 blue", "expected integer"},
		{"trailing semicolon", "Game 1: 4 red;", "expected integer"},
		{"empty item", "Game 1: 4 red,, 2 blue", "expected integer"},
		{"wrong delimiter", "Game 1: 4 red. 2 blue", "trailing input"},
		{"trailing garbage", "Game 1: 4 red 2 blue", "trailing input"},
		{"negative count", "Game 1: -4 red", "expected integer"},
		{"overflow", "Game 1: 99999999999999999999 red", "out of range"},
		{"empty line", "", "end of input"},
		{"capitalised colour", "Game 1: 4 Red", `unknown colour "Red"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGame(tt.line)
			require.Error(t, err)
			assert.Equal(t, Game{}, got, "no partial record")

			var pe *grammar.ParseError
			require.True(t, errors.As(err, &pe), "want *grammar.ParseError, got %T", err)
			assert.Equal(t, tt.line, pe.Input)
			assert.Contains(t, pe.Msg, tt.wantMsg)
		})
	}
}

func TestParseGame_UnknownColourOffset(t *testing.T) {
	_, err := ParseGame("Game 1: 4 purple")

	var pe *grammar.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 10, pe.Offset, "error points at the colour token")
}

func TestGame_Scoring(t *testing.T) {
	g, err := ParseGame(gameSample[0])
	require.NoError(t, err)

	assert.Equal(t, Cubes{Red: 4, Green: 2, Blue: 6}, g.Max())
	assert.Equal(t, 48, g.Power())
	assert.True(t, g.Possible(DefaultBound))
	assert.False(t, g.Possible(Cubes{Red: 3, Green: 13, Blue: 14}))
}

func TestGame_ZeroGroups(t *testing.T) {
	g := Game{ID: 9}
	assert.Equal(t, Cubes{}, g.Max())
	assert.Equal(t, 0, g.Power())
	assert.True(t, g.Possible(Cubes{}))
}

func TestGame_PowerSaturates(t *testing.T) {
	g, err := ParseGame("Game 1: 4294967296 red, 4294967296 green, 4294967296 blue")
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, g.Power())

	g, err = ParseGame("Game 2: 0 red, 4294967296 green, 4294967296 blue")
	require.NoError(t, err)
	assert.Equal(t, 0, g.Power())

	got, err := SumPower([]string{
		"Game 1: 4294967296 red, 4294967296 green, 4294967296 blue",
		"Game 2: 1 red, 1 green, 1 blue",
	})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)
}

func TestGame_RoundTrip(t *testing.T) {
	lines := append([]string{
		"Game 4:",
		"Game 6: 0 red; 0 blue",
		"Game  12 :\t3 green , 3 green",
	}, gameSample...)

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			g, err := ParseGame(line)
			require.NoError(t, err)

			again, err := ParseGame(g.String())
			require.NoError(t, err, "reparse %q", g.String())
			if diff := cmp.Diff(g, again); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCubes_String(t *testing.T) {
	assert.Equal(t, "4 red, 3 blue", Cubes{Red: 4, Blue: 3}.String())
	assert.Equal(t, "0 red", Cubes{}.String())
}
