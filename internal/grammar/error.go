package grammar

import (
	"errors"
	"fmt"
)

// ParseError describes a line that does not match its grammar.
type ParseError struct {
	// Input is the complete line being parsed.
	Input string
	// Offset is the 0-based byte offset where parsing failed.
	Offset int
	// Line is the 1-based line number within the file, 0 when unknown.
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d col %d: %s in %q", e.Line, e.Offset+1, e.Msg, e.Input)
	}
	return fmt.Sprintf("col %d: %s in %q", e.Offset+1, e.Msg, e.Input)
}

// Errorf builds a ParseError for input at offset.
func Errorf(input string, offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Input:  input,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// WithLine annotates err with a 1-based line number when it is, or wraps,
// a *ParseError. Other errors are returned unchanged.
func WithLine(err error, line int) error {
	var pe *ParseError
	if !errors.As(err, &pe) {
		return err
	}
	annotated := *pe
	annotated.Line = line
	return &annotated
}
