// Package watch reruns work when puzzle input files change on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/aoc/internal/logging"
)

// ErrWatcherFailed indicates the filesystem watcher failed to initialize.
var ErrWatcherFailed = errors.New("failed to initialize filesystem watcher")

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

// Handler is called once per changed file after the debounce interval.
type Handler func(ctx context.Context, path string)

// Watcher watches a fixed set of files.
//
// Parent directories are watched rather than the files themselves so that
// editors which save by renaming a temporary file over the original are
// still seen.
type Watcher struct {
	files    map[string]struct{}
	dirs     []string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *logging.Logger

	closeOnce sync.Once
}

// New creates a watcher for paths. Paths need not exist yet, but their
// directories must.
func New(paths []string, debounce time.Duration, logger *logging.Logger) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("no paths to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = logging.Nop()
	}

	files := make(map[string]struct{}, len(paths))
	seenDirs := make(map[string]struct{})
	var dirs []string
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		files[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := seenDirs[dir]; !ok {
			seenDirs[dir] = struct{}{}
			dirs = append(dirs, dir)
		}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatcherFailed, err)
	}

	return &Watcher{
		files:    files,
		dirs:     dirs,
		debounce: debounce,
		watcher:  fw,
		logger:   logger.Named("watch"),
	}, nil
}

// Run blocks until ctx is done, calling handle for every watched file that
// was written or created. Changes arriving within the debounce interval of
// each other are delivered together, each file once, in path order.
// Run closes the watcher before returning.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	defer w.Close()

	for _, dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	w.logger.Info(ctx, "watching for changes", zap.Strings("dirs", w.dirs), zap.Int("files", len(w.files)))

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	var fire <-chan time.Time
	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug(ctx, "file changed", zap.String("path", event.Name), zap.Stringer("op", event.Op))
			pending[filepath.Clean(event.Name)] = struct{}{}
			timer.Reset(w.debounce)
			fire = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			// Keep watching; a dropped event only delays the next run.
			w.logger.Warn(ctx, "watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			sort.Strings(changed)
			clear(pending)

			for _, p := range changed {
				if ctx.Err() != nil {
					return nil
				}
				handle(ctx, p)
			}
		}
	}
}

// Close releases the underlying watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	_, ok := w.files[filepath.Clean(event.Name)]
	return ok
}
