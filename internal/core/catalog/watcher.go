// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the dataset file must stay quiet before a reload.
const DefaultDebounce = 500 * time.Millisecond

// Reloader is the part of [Loader] the watcher drives.
type Reloader interface {
	Reload(context context.Context) (Status, error)
}

// # File Watcher

// Watcher reloads the catalogue when the dataset file changes on disk.
//
// The parent directory is watched rather than the file itself, so editors
// that save by rename are still seen. Bursts of events collapse into one
// reload after the debounce window.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	reloader Reloader
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a [Watcher] for the dataset at path.
func NewWatcher(path string, debounce time.Duration, reloader Reloader, logger *slog.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog: create watcher: %w", err)
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("catalog: resolve %s: %w", path, err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		watcher:  watcher,
		path:     absolute,
		debounce: debounce,
		reloader: reloader,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking and a second call is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("catalog: watch %s: %w", filepath.Dir(w.path), err)
	}
	w.running = true

	w.logger.Info("catalog_watch_started", slog.String("path", w.path))
	go w.run(ctx)

	return nil
}

// Stop ends the event loop, waits for it to exit and releases the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}

	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("catalog_watch_close_failed", slog.Any("error", err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog_watch_error", slog.Any("error", err))

		case <-timer.C:
			if _, err := w.reloader.Reload(ctx); err != nil && !IsSuperseded(err) {
				w.logger.Warn("catalog_watch_reload_failed", slog.Any("error", err))
			}
		}
	}
}

// relevant reports whether event touched the dataset file with new content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
