package grammar

import (
	"strconv"
	"strings"
)

// Scanner is a cursor over one line of input.
type Scanner struct {
	src string
	pos int
}

// NewScanner returns a Scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int {
	return s.pos
}

// Rest returns the unconsumed input.
func (s *Scanner) Rest() string {
	return s.src[s.pos:]
}

// AtEnd reports whether all input has been consumed.
func (s *Scanner) AtEnd() bool {
	return s.pos >= len(s.src)
}

// Peek returns the next byte without consuming it.
func (s *Scanner) Peek() (byte, bool) {
	if s.AtEnd() {
		return 0, false
	}
	return s.src[s.pos], true
}

// SkipSpace consumes a possibly empty run of spaces and tabs.
func (s *Scanner) SkipSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

// Accept consumes c if it is the next byte.
func (s *Scanner) Accept(c byte) bool {
	if b, ok := s.Peek(); ok && b == c {
		s.pos++
		return true
	}
	return false
}

// Byte consumes c or fails.
func (s *Scanner) Byte(c byte) error {
	if s.Accept(c) {
		return nil
	}
	return s.errorf("expected %q, found %s", c, s.found())
}

// Literal consumes lit or fails.
func (s *Scanner) Literal(lit string) error {
	if strings.HasPrefix(s.Rest(), lit) {
		s.pos += len(lit)
		return nil
	}
	return s.errorf("expected %q, found %s", lit, s.found())
}

// Uint consumes a run of decimal digits.
func (s *Scanner) Uint() (int, error) {
	start := s.pos
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	if start == s.pos {
		return 0, s.errorf("expected integer, found %s", s.found())
	}
	digits := s.src[start:s.pos]
	n, err := strconv.Atoi(digits)
	if err != nil {
		s.pos = start
		return 0, s.errorf("integer %s out of range", digits)
	}
	return n, nil
}

// Word consumes a run of ASCII letters. It may return the empty string.
func (s *Scanner) Word() string {
	start := s.pos
	for s.pos < len(s.src) && isLetter(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// Uints consumes a whitespace-separated, possibly empty run of integers,
// including any surrounding whitespace.
func (s *Scanner) Uints() ([]int, error) {
	nums := []int{}
	for {
		s.SkipSpace()
		b, ok := s.Peek()
		if !ok || !isDigit(b) {
			return nums, nil
		}
		n, err := s.Uint()
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
		// Digits must be followed by a separator, not glued to a token.
		if b, ok := s.Peek(); ok && isLetter(b) {
			return nil, s.errorf("expected whitespace after integer, found %s", s.found())
		}
	}
}

// End fails unless all input has been consumed.
func (s *Scanner) End() error {
	if s.AtEnd() {
		return nil
	}
	return s.errorf("unexpected trailing input %q", s.Rest())
}

// Errorf builds a ParseError at the current position.
func (s *Scanner) Errorf(format string, args ...interface{}) *ParseError {
	return s.errorf(format, args...)
}

// ErrorAt builds a ParseError at an earlier offset, for example the start
// of a token that turned out to be invalid.
func (s *Scanner) ErrorAt(offset int, format string, args ...interface{}) *ParseError {
	return Errorf(s.src, offset, format, args...)
}

func (s *Scanner) errorf(format string, args ...interface{}) *ParseError {
	return Errorf(s.src, s.pos, format, args...)
}

func (s *Scanner) found() string {
	if s.AtEnd() {
		return "end of input"
	}
	return strconv.Quote(s.src[s.pos : s.pos+1])
}

func isSpace(b byte) bool  { return b == ' ' || b == '\t' }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isLetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
