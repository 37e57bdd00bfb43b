package logging

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestLogger records every entry, trace included and unsampled, so tests
// can assert on what a run reported.
type TestLogger struct {
	*Logger
	observed *observer.ObservedLogs
}

// NewTestLogger returns a TestLogger that observes all levels.
func NewTestLogger() *TestLogger {
	core, observed := observer.New(TraceLevel)
	return &TestLogger{
		Logger:   &Logger{zap: zap.New(core)},
		observed: observed,
	}
}

func (t *TestLogger) All() []observer.LoggedEntry {
	return t.observed.All()
}

func (t *TestLogger) FilterMessage(msg string) *observer.ObservedLogs {
	return t.observed.FilterMessage(msg)
}

// Reset drops everything recorded so far.
func (t *TestLogger) Reset() {
	t.observed.TakeAll()
}

// Answers returns the "answer" field of every RESULT entry in the order
// the parts ran.
func (t *TestLogger) Answers() []int64 {
	var answers []int64
	for _, entry := range t.observed.FilterMessage("RESULT").All() {
		if v, ok := entry.ContextMap()["answer"].(int64); ok {
			answers = append(answers, v)
		}
	}
	return answers
}

func (t *TestLogger) matching(level zapcore.Level, substr string) []observer.LoggedEntry {
	var out []observer.LoggedEntry
	for _, entry := range t.observed.All() {
		if entry.Level == level && strings.Contains(entry.Message, substr) {
			out = append(out, entry)
		}
	}
	return out
}

// AssertLogged fails tb unless some entry at level has a message
// containing substr.
func (t *TestLogger) AssertLogged(tb testing.TB, level zapcore.Level, substr string) {
	tb.Helper()
	if len(t.matching(level, substr)) == 0 {
		tb.Errorf("no %s entry containing %q; recorded: %+v", LevelName(level), substr, t.observed.All())
	}
}

// AssertNotLogged fails tb if any entry at level has a message containing
// substr.
func (t *TestLogger) AssertNotLogged(tb testing.TB, level zapcore.Level, substr string) {
	tb.Helper()
	if n := len(t.matching(level, substr)); n > 0 {
		tb.Errorf("found %d %s entries containing %q", n, LevelName(level), substr)
	}
}

// AssertField fails tb unless an entry with message msg carries key=want.
// zap records integers as int64.
func (t *TestLogger) AssertField(tb testing.TB, msg, key string, want any) {
	tb.Helper()
	for _, entry := range t.observed.FilterMessage(msg).All() {
		if got, ok := entry.ContextMap()[key]; ok && reflect.DeepEqual(got, want) {
			return
		}
	}
	tb.Errorf("no %q entry with %s=%v", msg, key, want)
}
