// internal/logging/context.go
package logging

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextFields extracts correlation data from context.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, 4)

	if runID := RunIDFromContext(ctx); runID != "" {
		fields = append(fields, zap.String("run.id", runID))
	}

	if p := PuzzleFromContext(ctx); p != nil {
		fields = append(fields, zap.Int("puzzle.year", p.Year), zap.Int("puzzle.day", p.Day))
		if p.Part > 0 {
			fields = append(fields, zap.Int("puzzle.part", p.Part))
		}
	}

	return fields
}

// Context key types
type runCtxKey struct{}
type puzzleCtxKey struct{}

// Puzzle identifies the puzzle being solved. Part is 0 while the whole day
// is in scope (for example while loading its input).
type Puzzle struct {
	Year int
	Day  int
	Part int
}

const maxIDLen = 128

// idPattern allows alphanumeric, hyphen, underscore
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// validateID validates a run ID.
func validateID(id, name string) error {
	if id == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	if !utf8.ValidString(id) {
		return fmt.Errorf("%s contains invalid UTF-8", name)
	}
	if len(id) > maxIDLen {
		return fmt.Errorf("%s exceeds max length %d", name, maxIDLen)
	}
	if !idPattern.MatchString(id) {
		return fmt.Errorf("%s contains invalid characters (must be alphanumeric, hyphen, underscore)", name)
	}
	return nil
}

// NewRunID returns a fresh identifier for one CLI invocation.
func NewRunID() string {
	return uuid.NewString()
}

// RunIDFromContext extracts run ID from context.
func RunIDFromContext(ctx context.Context) string {
	if r, ok := ctx.Value(runCtxKey{}).(string); ok {
		return r
	}
	return ""
}

// WithRunID adds run ID to context.
// Panics if runID is empty or contains invalid characters.
func WithRunID(ctx context.Context, runID string) context.Context {
	if err := validateID(runID, "runID"); err != nil {
		panic(fmt.Sprintf("logging: %v", err))
	}
	return context.WithValue(ctx, runCtxKey{}, runID)
}

// PuzzleFromContext extracts the puzzle from context.
func PuzzleFromContext(ctx context.Context) *Puzzle {
	if p, ok := ctx.Value(puzzleCtxKey{}).(*Puzzle); ok {
		return p
	}
	return nil
}

// WithPuzzle adds the puzzle being solved to context.
// Panics if year or day is not positive, or part is negative.
func WithPuzzle(ctx context.Context, p Puzzle) context.Context {
	if p.Year <= 0 || p.Day <= 0 || p.Part < 0 {
		panic(fmt.Sprintf("logging: invalid puzzle %+v", p))
	}
	return context.WithValue(ctx, puzzleCtxKey{}, &p)
}

// loggerCtxKey is the context key for Logger.
type loggerCtxKey struct{}

// WithLogger stores logger in context.
func WithLogger(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// FromContext retrieves logger from context.
// Returns a nop logger if not found.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerCtxKey{}).(*Logger); ok {
		return l
	}
	return Nop()
}
