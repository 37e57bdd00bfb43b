package puzzle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadAnswers(t *testing.T) {
	path := writeAnswers(t, `
[[answer]]
year = 2023
day = 2
part = 1
value = 8

[[answer]]
year = 2023
day = 2
part = 2
value = 2286
`)

	a, err := LoadAnswers(path)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Len())

	v, ok := a.Expected(Key{Year: 2023, Day: 2, Part: 2})
	assert.True(t, ok)
	assert.Equal(t, 2286, v)

	checked, err := a.Check(Key{Year: 2023, Day: 2, Part: 1}, 8)
	assert.True(t, checked)
	assert.NoError(t, err)

	checked, err = a.Check(Key{Year: 2023, Day: 2, Part: 1}, 9)
	assert.True(t, checked)
	assert.True(t, errors.Is(err, ErrAnswerMismatch))
	assert.Contains(t, err.Error(), "got 9, want 8")

	checked, err = a.Check(Key{Year: 2020, Day: 1, Part: 1}, 1)
	assert.False(t, checked)
	assert.NoError(t, err)
}

func TestLoadAnswers_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax",
			content: "[[answer]\nyear = 1",
			wantErr: "decode answers",
		},
		{
			name:    "unknown key",
			content: "[[answer]]\nyear = 2023\nday = 1\npart = 1\nvalue = 1\nexpected = 2\n",
			wantErr: "unknown keys",
		},
		{
			name:    "missing part",
			content: "[[answer]]\nyear = 2023\nday = 1\nvalue = 1\n",
			wantErr: "required",
		},
		{
			name: "duplicate",
			content: "[[answer]]\nyear = 2023\nday = 1\npart = 1\nvalue = 1\n" +
				"[[answer]]\nyear = 2023\nday = 1\npart = 1\nvalue = 2\n",
			wantErr: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAnswers(writeAnswers(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadAnswers_MissingFile(t *testing.T) {
	_, err := LoadAnswers(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestAnswers_Nil(t *testing.T) {
	var a *Answers
	assert.Equal(t, 0, a.Len())
	checked, err := a.Check(Key{Year: 2023, Day: 1, Part: 1}, 42)
	assert.False(t, checked)
	assert.NoError(t, err)
}
