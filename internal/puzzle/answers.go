package puzzle

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Answers holds known correct results used to check solver output.
// A nil *Answers knows nothing and accepts every result.
type Answers struct {
	values map[Key]int
}

type answersFile struct {
	Answer []answerEntry `toml:"answer"`
}

type answerEntry struct {
	Year  int `toml:"year"`
	Day   int `toml:"day"`
	Part  int `toml:"part"`
	Value int `toml:"value"`
}

// LoadAnswers reads expected answers from a TOML file of the form:
//
//	[[answer]]
//	year = 2023
//	day = 2
//	part = 1
//	value = 2105
func LoadAnswers(path string) (*Answers, error) {
	var f answersFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode answers %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in answers %s: %s", path, strings.Join(keys, ", "))
	}
	return newAnswers(f.Answer)
}

func newAnswers(entries []answerEntry) (*Answers, error) {
	a := &Answers{values: make(map[Key]int, len(entries))}
	for i, e := range entries {
		k := Key{Year: e.Year, Day: e.Day, Part: e.Part}
		if e.Year <= 0 || e.Day <= 0 || e.Part <= 0 {
			return nil, fmt.Errorf("answer %d: year, day and part are required, got %s", i+1, k)
		}
		if _, dup := a.values[k]; dup {
			return nil, fmt.Errorf("answer %d: duplicate entry for %s", i+1, k)
		}
		a.values[k] = e.Value
	}
	return a, nil
}

// Expected returns the known answer for k.
func (a *Answers) Expected(k Key) (int, bool) {
	if a == nil {
		return 0, false
	}
	v, ok := a.values[k]
	return v, ok
}

// Len returns the number of known answers.
func (a *Answers) Len() int {
	if a == nil {
		return 0
	}
	return len(a.values)
}

// Check compares got with the known answer for k.
// checked is false when no answer is known; err wraps ErrAnswerMismatch
// when the values differ.
func (a *Answers) Check(k Key, got int) (checked bool, err error) {
	want, ok := a.Expected(k)
	if !ok {
		return false, nil
	}
	if got != want {
		return true, fmt.Errorf("%w: %s got %d, want %d", ErrAnswerMismatch, k, got, want)
	}
	return true, nil
}
