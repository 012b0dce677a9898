// Package watch reports batches of changed stylesheet inputs.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before a batch is delivered.
const DefaultDebounce = 200 * time.Millisecond

var ErrWatch = errors.New("watch error")

// Watcher follows files and directory trees. Files are watched through their
// parent directory so editors that replace files on save are still seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	roots    []string
	debounce time.Duration
	logger   *slog.Logger
}

func New(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatch, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	w := &Watcher{
		watcher:  fw,
		files:    map[string]bool{},
		debounce: debounce,
		logger:   logger,
	}

	for _, p := range paths {
		if err := w.add(p); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWatch, path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWatch, err)
	}
	if info.IsDir() {
		w.roots = append(w.roots, abs)
		return w.addRecursive(abs)
	}
	w.files[abs] = true
	if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWatch, path, err)
	}
	return nil
}

// addRecursive adds a directory and all subdirectories to the watch list.
func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrWatch, path, err)
		}
		return nil
	})
}

// relevant reports whether a change to path affects the inputs.
func (w *Watcher) relevant(path string) bool {
	if w.files[path] {
		return true
	}
	if !strings.EqualFold(filepath.Ext(path), ".css") {
		return false
	}
	for _, root := range w.roots {
		if strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Run blocks until ctx is done, calling fn with the sorted set of changed
// paths once no event has arrived for the debounce period. fn runs on the
// watcher goroutine; events arriving meanwhile are batched for the next call.
func (w *Watcher) Run(ctx context.Context, fn func(changed []string)) error {
	pending := map[string]bool{}
	var timer *time.Timer
	var timerC <-chan time.Time

	flush := func() {
		timer, timerC = nil, nil
		if len(pending) == 0 {
			return
		}
		changed := make([]string, 0, len(pending))
		for p := range pending {
			changed = append(changed, p)
		}
		clear(pending)
		slices.Sort(changed)
		fn(changed)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && w.relevantDir(event.Name) {
					if err := w.addRecursive(event.Name); err != nil {
						w.logger.Warn("watch new directory", "path", event.Name, "error", err)
					}
				}
			}
			if event.Has(fsnotify.Chmod) || !w.relevant(event.Name) {
				continue
			}
			w.logger.Debug("change", "path", event.Name, "op", event.Op.String())
			pending[event.Name] = true

			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			flush()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch", "error", err)
		}
	}
}

func (w *Watcher) relevantDir(path string) bool {
	for _, root := range w.roots {
		if strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
