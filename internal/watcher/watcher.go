// Package watcher reloads the similarity index when the corpus artifact
// changes on disk, so a long-running interactive session picks up a
// re-ingestion without a restart.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/griot-labs/griot-cli/internal/logger"
)

// DefaultDebounce coalesces the burst of filesystem events a single
// artifact rewrite produces into one reload.
const DefaultDebounce = 500 * time.Millisecond

// Reloader rebuilds the index from the persisted artifacts.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Watcher observes a single corpus artifact path and triggers a
// debounced reload on change.
type Watcher struct {
	path     string
	reloader Reloader
	debounce time.Duration
	fw       *fsnotify.Watcher
}

// New creates a watcher for the artifact at path. Non-positive debounce
// falls back to the default.
func New(path string, reloader Reloader, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create filesystem watcher: %w", err)
	}

	// Watch the parent directory: ingestion replaces the artifact, and
	// replace shows up as create/rename on the directory, not as a write
	// on the old inode.
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		reloader: reloader,
		debounce: debounce,
		fw:       fw,
	}, nil
}

// Start runs the event loop until ctx is cancelled or the underlying
// watcher closes.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Corpus artifact event: %s", ev)
			pending = time.After(w.debounce)

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			logger.Warn("Filesystem watcher error: %v", err)

		case <-pending:
			pending = nil
			logger.Info("Corpus artifact changed, reloading index")
			if err := w.reloader.Reload(ctx); err != nil {
				logger.Warn("Index reload failed: %v", err)
			}
		}
	}
}
