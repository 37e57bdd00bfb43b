package y2021

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/aoc/internal/puzzle"
)

func TestRegister(t *testing.T) {
	reg := puzzle.NewRegistry()
	Register(reg)

	assert.Equal(t, []int{1, 2, 3}, reg.Days(Year))

	tests := []struct {
		day, part int
		lines     []string
		want      int
	}{
		{1, 1, depthSample, 7},
		{1, 2, depthSample, 5},
		{2, 1, commandSample, 150},
		{2, 2, commandSample, 900},
		{3, 1, reportSample, 198},
		{3, 2, reportSample, 230},
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
