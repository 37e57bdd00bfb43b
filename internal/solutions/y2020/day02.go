package y2020

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fyrsmithlabs/aoc/internal/grammar"
)

var passwordEntryRe = regexp.MustCompile(`^(\d+)-(\d+) (.): (.+)$`)

// PasswordEntry is one line of the password database: a policy and the
// password it applies to.
type PasswordEntry struct {
	Min      int
	Max      int
	Char     byte
	Password string
}

// ParsePasswordEntry parses a line of the form "1-3 a: abcde".
func ParsePasswordEntry(line string) (PasswordEntry, error) {
	m := passwordEntryRe.FindStringSubmatch(line)
	if m == nil {
		return PasswordEntry{}, grammar.Errorf(line, 0, "expected \"<min>-<max> <char>: <password>\"")
	}
	lo, err := strconv.Atoi(m[1])
	if err != nil {
		return PasswordEntry{}, grammar.Errorf(line, 0, "min %s out of range", m[1])
	}
	hi, err := strconv.Atoi(m[2])
	if err != nil {
		return PasswordEntry{}, grammar.Errorf(line, len(m[1])+1, "max %s out of range", m[2])
	}
	return PasswordEntry{Min: lo, Max: hi, Char: m[3][0], Password: m[4]}, nil
}

// ValidCount reports whether Char occurs between Min and Max times.
func (e PasswordEntry) ValidCount() bool {
	n := strings.Count(e.Password, string(e.Char))
	return n >= e.Min && n <= e.Max
}

// ValidPosition reports whether exactly one of the 1-based positions Min
// and Max holds Char. Positions past the end hold nothing.
func (e PasswordEntry) ValidPosition() bool {
	return e.charAt(e.Min) != e.charAt(e.Max)
}

func (e PasswordEntry) charAt(pos int) bool {
	return pos >= 1 && pos <= len(e.Password) && e.Password[pos-1] == e.Char
}

// CountValidPasswords parses every line and counts those accepted by valid.
func CountValidPasswords(lines []string, valid func(PasswordEntry) bool) (int, error) {
	count := 0
	for i, line := range lines {
		e, err := ParsePasswordEntry(line)
		if err != nil {
			return 0, fmt.Errorf("parse password entry: %w", grammar.WithLine(err, i+1))
		}
		if valid(e) {
			count++
		}
	}
	return count, nil
}
