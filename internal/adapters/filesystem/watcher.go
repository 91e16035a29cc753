package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"vaultmigrate/internal/logging"
)

// DefaultDebounce is how long the tree must stay quiet before a rerun
const DefaultDebounce = 500 * time.Millisecond

// Watcher reports changes below a set of source roots. Directories created
// while watching are added as they appear.
type Watcher struct {
	roots    []string
	exclude  []string
	debounce time.Duration
	logger   *zap.Logger
}

// NewWatcher creates a watcher for the given roots
func NewWatcher(roots []string, logger *zap.Logger) *Watcher {
	abs := make([]string, 0, len(roots))
	for _, r := range roots {
		abs = append(abs, absOrSelf(r))
	}
	return &Watcher{roots: abs, debounce: DefaultDebounce, logger: logging.OrNop(logger)}
}

// Exclude ignores changes at or below each path (typically the vault and
// the mapping file, which every run rewrites)
func (w *Watcher) Exclude(paths ...string) *Watcher {
	for _, p := range paths {
		if p != "" {
			w.exclude = append(w.exclude, absOrSelf(p))
		}
	}
	return w
}

// WithDebounce overrides DefaultDebounce
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Run calls onChange once per burst of changes until ctx is done.
// Errors from onChange are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	for _, root := range w.roots {
		if err := w.addTree(fw, root); err != nil {
			return err
		}
	}
	w.logger.Info("watching for changes", zap.Strings("roots", w.roots))

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if w.excluded(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(fw, event.Name); err != nil {
						w.logger.Warn("cannot watch new directory", zap.String("path", event.Name), zap.Error(err))
					}
				}
			}
			w.logger.Debug("source changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", zap.Error(err))

		case <-timer.C:
			if err := onChange(ctx); err != nil {
				w.logger.Error("rerun failed", zap.Error(err))
			}
		}
	}
}

// addTree watches dir and every directory below it
func (w *Watcher) addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("cannot read directory entry", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if w.excluded(path) {
			return filepath.SkipDir
		}
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func (w *Watcher) excluded(path string) bool {
	for _, ex := range w.exclude {
		if path == ex || strings.HasPrefix(path, ex+string(filepath.Separator)) {
			return true
		}
		// temp files of an atomic replace
		if strings.HasPrefix(path, ex+".") && strings.HasSuffix(path, ".tmp") {
			return true
		}
	}
	return false
}
