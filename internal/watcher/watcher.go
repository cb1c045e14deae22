// Package watcher watches a notes root and triggers a debounced full
// re-scan whenever files change. The re-scan itself stays a pure function
// of root -> notes; this package only supplies the change notification.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"noema/internal/notes"
)

const defaultDebounce = 400 * time.Millisecond

// Watcher watches one notes root for changes.
type Watcher struct {
	root     string
	debounce time.Duration
	onChange func([]notes.Note, error)
	logger   *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the debounce interval. Mainly useful in tests.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// New creates a watcher for root. onChange receives the result of a fresh
// scan after each debounced burst of filesystem events.
func New(root string, onChange func([]notes.Note, error), opts ...Option) (*Watcher, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", notes.ErrNotADirectory, root)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	w := &Watcher{
		root:     abs,
		debounce: defaultDebounce,
		onChange: onChange,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run blocks, delivering debounced re-scans to the onChange callback until
// ctx is cancelled. Bursts of events collapse into a single re-scan.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		_ = fw.Close()
	}()

	if err := w.addRecursive(fw, w.root); err != nil {
		return err
	}

	// The timer starts drained; each event rearms it, so the callback
	// fires once per quiet period.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(fw, ev.Name); err != nil {
						w.logger.WarnContext(ctx, "failed to watch new directory", "path", ev.Name, "error", err)
					}
				}
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnContext(ctx, "watcher error", "error", err)

		case <-timer.C:
			ns, err := notes.Scan(w.root)
			w.onChange(ns, err)
		}
	}
}

// addRecursive registers dir and every non-hidden subdirectory under it.
func (w *Watcher) addRecursive(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to access path %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}
