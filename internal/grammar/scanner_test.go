package grammar

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_Literal(t *testing.T) {
	s := NewScanner("Game 1")
	require.NoError(t, s.Literal("Game"))
	assert.Equal(t, " 1", s.Rest())

	err := s.Literal("Card")
	require.Error(t, err)
	assert.Equal(t, 4, s.Pos(), "failed literal must not consume input")
	assert.Contains(t, err.Error(), `expected "Card"`)
}

func TestScanner_Uint(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		rest    string
		wantErr string
	}{
		{"single digit", "4 red", 4, " red", ""},
		{"multi digit", "1234", 1234, "", ""},
		{"leading zeros", "007x", 7, "x", ""},
		{"no digits", "red", 0, "red", "expected integer"},
		{"empty", "", 0, "", "end of input"},
		{"sign is not a digit", "-3", 0, "-3", "expected integer"},
		{"overflow", "99999999999999999999999", 0, "99999999999999999999999", "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(tt.in)
			got, err := s.Uint()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.Equal(t, tt.rest, s.Rest())
		})
	}
}

func TestScanner_SkipSpaceAndWord(t *testing.T) {
	s := NewScanner(" \t green, blue")
	s.SkipSpace()
	assert.Equal(t, "green", s.Word())
	assert.True(t, s.Accept(','))
	assert.False(t, s.Accept(','))
	s.SkipSpace()
	assert.Equal(t, "blue", s.Word())
	assert.Equal(t, "", s.Word())
	assert.True(t, s.AtEnd())
	require.NoError(t, s.End())
}

func TestScanner_Uints(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
		rest string
	}{
		{"spaced list", " 41 48  83\t86 17 | 9", []int{41, 48, 83, 86, 17}, "| 9"},
		{"empty list", "   | 1", []int{}, "| 1"},
		{"nothing at all", "", []int{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(tt.in)
			got, err := s.Uints()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rest, s.Rest())
		})
	}

	_, err := NewScanner("1 2abc").Uints()
	assert.Error(t, err)
}

func TestScanner_End(t *testing.T) {
	s := NewScanner("x")
	err := s.End()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trailing input")
}

func TestParseError_Format(t *testing.T) {
	err := Errorf("Game 1: 4 purple", 10, "unknown category %q", "purple")
	assert.Equal(t, `col 11: unknown category "purple" in "Game 1: 4 purple"`, err.Error())

	err.Line = 3
	assert.Equal(t, `line 3 col 11: unknown category "purple" in "Game 1: 4 purple"`, err.Error())
}

func TestWithLine(t *testing.T) {
	base := Errorf("abc", 0, "bad")
	wrapped := fmt.Errorf("parse game: %w", base)

	annotated := WithLine(wrapped, 7)

	var pe *ParseError
	require.True(t, errors.As(annotated, &pe))
	assert.Equal(t, 7, pe.Line)
	assert.Equal(t, 0, base.Line, "original error must not be mutated")

	plain := errors.New("not a parse error")
	assert.Same(t, plain, WithLine(plain, 2))
}
