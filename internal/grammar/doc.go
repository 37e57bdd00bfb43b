// Package grammar provides the recursive-descent building blocks shared by
// the line-oriented puzzle record parsers.
//
// A Scanner walks a single line of text with a byte cursor. Each primitive
// either consumes input and succeeds or leaves a *ParseError describing the
// offending input and column; no primitive panics on malformed text.
//
//	s := grammar.NewScanner("Card 1: 41 48 | 83 86")
//	if err := s.Literal("Card"); err != nil {
//	    return err
//	}
//	s.SkipSpace()
//	id, err := s.Uint()
//
// Whitespace handling is explicit: only SkipSpace consumes spaces and tabs,
// so grammars decide where runs of whitespace are insignificant.
package grammar
