package y2023

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/fyrsmithlabs/aoc/internal/logging"
	"github.com/fyrsmithlabs/aoc/internal/puzzle"
)

var calibrationSample = []string{
	"1abc2",
	"pqr3stu8vwx",
	"a1b2c3d4e5f",
	"treb7uchet",
}

var spelledSample = []string{
	"two1nine",
	"eightwothree",
	"abcone2threexyz",
	"xtwone3four",
	"4nineeightseven2",
	"zoneight234",
	"7pqrstsixteen",
}

var schematicSample = []string{
	"467..114..",
	"...*......",
	"..35..633.",
	"......#...",
	"617*......",
	".....+.58.",
	"..592.....",
	"......755.",
	"...$.*....",
	".664.598..",
}

func TestCalibrationValue(t *testing.T) {
	tests := []struct {
		line    string
		spelled bool
		want    int
	}{
		{"1abc2", false, 12},
		{"treb7uchet", false, 77},
		{"no digits here", false, 0},
		{"", false, 0},
		{"two1nine", false, 11},
		{"two1nine", true, 29},
		{"eightwo", true, 82},
		{"oneight", true, 18},
		{"zoneight234", true, 14},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalibrationValue(tt.line, tt.spelled), "%q spelled=%v", tt.line, tt.spelled)
	}
}

func TestSumCalibration(t *testing.T) {
	assert.Equal(t, 142, SumCalibration(calibrationSample, false))
	assert.Equal(t, 281, SumCalibration(spelledSample, true))
}

func TestSchematic(t *testing.T) {
	assert.Equal(t, 4361, SumPartNumbers(schematicSample))
	assert.Equal(t, 467835, SumGearRatios(schematicSample))

	wide := []string{
		".....210................356..*.........977.68.........38.......835",
		"..............14..312......+..926.....*.......529..*............*.",
		"416...../467..........................423.....*...143...132..955..",
	}
	assert.Equal(t, 5611, SumPartNumbers(wide))
}

func TestParseSchematic(t *testing.T) {
	s := parseSchematic([]string{"467..114..", "...*......"})
	assert.Equal(t, []schematicNumber{
		{value: 467, row: 0, start: 0, end: 2},
		{value: 114, row: 0, start: 5, end: 7},
	}, s.numbers)
	assert.Equal(t, []schematicSymbol{{char: '*', row: 1, col: 3}}, s.symbols)

	empty := parseSchematic([]string{""})
	assert.Empty(t, empty.numbers)
	assert.Empty(t, empty.symbols)
}

func TestRegister(t *testing.T) {
	reg := puzzle.NewRegistry()
	Register(reg, DefaultOptions())

	assert.Equal(t, []int{1, 2, 3, 4}, reg.Days(Year))

	tests := []struct {
		day, part int
		lines     []string
		want      int
	}{
		{1, 1, calibrationSample, 142},
		{1, 2, spelledSample, 281},
		{2, 1, gameSample, 8},
		{2, 2, gameSample, 2286},
		{3, 1, schematicSample, 4361},
		{3, 2, schematicSample, 467835},
		{4, 1, cardSample, 13},
		{4, 2, cardSample, 30},
	}

	for _, tt := range tests {
		k := puzzle.Key{Year: Year, Day: tt.day, Part: tt.part}
		t.Run(k.String(), func(t *testing.T) {
			solve, err := reg.Lookup(k)
			require.NoError(t, err)

			got, err := solve(context.Background(), &puzzle.Input{Lines: tt.lines})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister_CustomBound(t *testing.T) {
	reg := puzzle.NewRegistry()
	Register(reg, Options{Bound: Cubes{Red: 20, Green: 13, Blue: 14}})

	solve, err := reg.Lookup(puzzle.Key{Year: Year, Day: 2, Part: 1})
	require.NoError(t, err)

	got, err := solve(context.Background(), &puzzle.Input{Lines: gameSample})
	require.NoError(t, err)
	assert.Equal(t, 11, got, "game 3 becomes possible with 20 red")
}

func TestRegister_TracesRecords(t *testing.T) {
	reg := puzzle.NewRegistry()
	Register(reg, DefaultOptions())

	tl := logging.NewTestLogger()
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	solve, err := reg.Lookup(puzzle.Key{Year: Year, Day: 4, Part: 1})
	require.NoError(t, err)
	_, err = solve(ctx, &puzzle.Input{Lines: cardSample})
	require.NoError(t, err)

	assert.Len(t, tl.FilterMessage("parsed card").All(), len(cardSample))
	tl.AssertLogged(t, logging.TraceLevel, "parsed card")
	tl.AssertNotLogged(t, zapcore.ErrorLevel, "parsed card")
}
