package puzzle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/aoc/internal/input"
	"github.com/fyrsmithlabs/aoc/internal/logging"
)

// Result is the outcome of running one puzzle part.
type Result struct {
	Key      Key
	Value    int
	Duration time.Duration
	Err      error
	// Checked is true when a known answer existed and matched or not.
	Checked bool
}

// Failed reports whether any result carries an error.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Runner loads inputs and runs solvers from a Registry.
type Runner struct {
	registry *Registry
	logger   *logging.Logger
	dir      string
	policy   input.TrailingPolicy
	answers  *Answers
	now      func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithInputDir sets the root directory inputs are resolved against.
func WithInputDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.dir = dir
	}
}

// WithTrailingPolicy sets how trailing empty lines are handled.
func WithTrailingPolicy(p input.TrailingPolicy) RunnerOption {
	return func(r *Runner) {
		r.policy = p
	}
}

// WithAnswers enables checking results against known answers.
func WithAnswers(a *Answers) RunnerOption {
	return func(r *Runner) {
		r.answers = a
	}
}

// WithClock replaces time.Now for duration measurement.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		r.now = now
	}
}

// NewRunner creates a runner over registry.
func NewRunner(registry *Registry, logger *logging.Logger, opts ...RunnerOption) (*Runner, error) {
	if registry == nil {
		return nil, errors.New("registry cannot be nil")
	}
	if logger == nil {
		logger = logging.Nop()
	}

	r := &Runner{
		registry: registry,
		logger:   logger.Named("runner"),
		dir:      "data",
		policy:   input.TrailingIgnore,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Load reads the input at path and splits it into lines.
// A file with nothing but whitespace fails with input.ErrEmptyInput.
func (r *Runner) Load(path string) (*Input, error) {
	text, err := input.Read(path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%s: %w", path, input.ErrEmptyInput)
	}
	return &Input{
		Path:  path,
		Text:  text,
		Lines: input.Lines(text, r.policy),
	}, nil
}

// RunDay runs parts of year/day against one load of its input.
//
// An empty parts slice runs every registered part. An empty path resolves to
// input.Path(dir, year, day). Every requested part yields a Result; a load
// failure is recorded on each of them. The returned error is non-nil only
// when no requested part is registered.
func (r *Runner) RunDay(ctx context.Context, year, day int, parts []int, path string) ([]Result, error) {
	if len(parts) == 0 {
		parts = r.registry.Parts(year, day)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: %d day %d", ErrUnknownPuzzle, year, day)
	}

	solvers := make([]Solver, len(parts))
	found := false
	for i, p := range parts {
		if s, err := r.registry.Lookup(Key{Year: year, Day: day, Part: p}); err == nil {
			solvers[i] = s
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %d day %d parts %v", ErrUnknownPuzzle, year, day, parts)
	}

	if path == "" {
		path = input.Path(r.dir, year, day)
	}

	dayCtx := logging.WithPuzzle(ctx, logging.Puzzle{Year: year, Day: day})
	in, loadErr := r.Load(path)
	if loadErr != nil {
		r.logger.Error(dayCtx, "failed to load input", zap.String("path", path), zap.Error(loadErr))
	} else {
		r.logger.Debug(dayCtx, "loaded input",
			zap.String("path", path),
			zap.Int("lines", len(in.Lines)),
			zap.Int("bytes", len(in.Text)))
	}

	results := make([]Result, 0, len(parts))
	for i, part := range parts {
		k := Key{Year: year, Day: day, Part: part}
		switch {
		case loadErr != nil:
			results = append(results, Result{Key: k, Err: loadErr})
		case solvers[i] == nil:
			err := fmt.Errorf("%w: %s", ErrUnknownPuzzle, k)
			r.logger.Warn(dayCtx, "no solver registered", zap.Stringer("puzzle", k))
			results = append(results, Result{Key: k, Err: err})
		default:
			results = append(results, r.runPart(ctx, k, solvers[i], in))
		}
	}
	return results, nil
}

// RunYear runs every registered day of year in order.
func (r *Runner) RunYear(ctx context.Context, year int) ([]Result, error) {
	days := r.registry.Days(year)
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no days registered for %d", ErrUnknownPuzzle, year)
	}

	var results []Result
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		dayResults, err := r.RunDay(ctx, year, day, nil, "")
		if err != nil {
			return results, err
		}
		results = append(results, dayResults...)
	}
	return results, nil
}

func (r *Runner) runPart(ctx context.Context, k Key, solve Solver, in *Input) Result {
	ctx = logging.WithPuzzle(ctx, logging.Puzzle{Year: k.Year, Day: k.Day, Part: k.Part})
	ctx = logging.WithLogger(ctx, r.logger.Named("solver"))

	res := Result{Key: k}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	start := r.now()
	res.Value, res.Err = solve(ctx, in)
	res.Duration = r.now().Sub(start)

	if res.Err != nil {
		res.Value = 0
		r.logger.Error(ctx, "part failed", zap.Error(res.Err), zap.Duration("elapsed", res.Duration))
		return res
	}

	r.logger.Info(ctx, "RESULT", zap.Int("answer", res.Value), zap.Duration("elapsed", res.Duration))

	checked, err := r.answers.Check(k, res.Value)
	res.Checked = checked
	if err != nil {
		res.Err = err
		r.logger.Error(ctx, "answer check failed", zap.Error(err))
	} else if checked {
		r.logger.Debug(ctx, "answer verified")
	}
	return res
}
