// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// CONFIG WATCHER
// =============================================================================

// Watcher reloads the global config when the file changes on disk.
// Editors typically fire several events per save, so changes are
// debounced before reloading.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload func(*Config)

	mu      sync.Mutex
	pending bool

	ctx    context.Context
	cancel context.CancelFunc
}

// NewWatcher creates a watcher for the default config path. onReload
// is called (possibly from the watcher goroutine) with the fresh
// config after each successful reload; it may be nil.
func NewWatcher(debounce time.Duration, onReload func(*Config)) (*Watcher, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return newWatcherForPath(path, debounce, onReload)
}

func newWatcherForPath(path string, debounce time.Duration, onReload func(*Config)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		path:     path,
		watcher:  fsWatcher,
		debounce: debounce,
		onReload: onReload,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Watch starts watching for config changes. The config directory is
// watched rather than the file itself so atomic saves (write to temp,
// rename over) are still observed.
func (w *Watcher) Watch() error {
	if err := os.MkdirAll(filepath.Dir(w.path), 0700); err != nil {
		return err
	}
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	go w.processEvents()

	return nil
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleReload()

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not actionable here; the next event
			// or a restart recovers.
		}
	}
}

// scheduleReload arms a one-shot debounce timer. Further events
// during the window are coalesced into a single reload.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	if w.pending {
		w.mu.Unlock()
		return
	}
	w.pending = true
	w.mu.Unlock()

	time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		w.pending = false
		w.mu.Unlock()

		if w.ctx.Err() != nil {
			return
		}
		if err := ReloadGlobal(); err != nil {
			return
		}
		if w.onReload != nil {
			w.onReload(Global())
		}
	})
}
