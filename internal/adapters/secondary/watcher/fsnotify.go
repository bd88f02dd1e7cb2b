package watcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// FSWatcher reports changes to individual files. It watches the parent
// directory of every file so editors that save by rename are still seen.
// Bursts of events are coalesced into one event per file after the
// debounce period.
type FSWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   ports.Logger

	mu      sync.Mutex
	targets map[string]struct{}
	dirs    map[string]struct{}
	started bool
	stopped bool

	events chan ports.FileChangeEvent
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewFSWatcher creates a watcher; call Watch for each file of interest
func NewFSWatcher(debounce time.Duration, logger ports.Logger) (*FSWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	return &FSWatcher{
		watcher:  w,
		debounce: debounce,
		logger:   logger,
		targets:  make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
		events:   make(chan ports.FileChangeEvent, 10),
		stopCh:   make(chan struct{}),
	}, nil
}

// Watch adds path to the watched files. Every call returns the same channel.
func (w *FSWatcher) Watch(ctx context.Context, path string) (<-chan ports.FileChangeEvent, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil, errors.New("watcher stopped")
	}

	dir := filepath.Dir(absPath)
	if _, ok := w.dirs[dir]; !ok {
		if err := w.watcher.Add(dir); err != nil {
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
		w.dirs[dir] = struct{}{}
	}
	w.targets[absPath] = struct{}{}

	if !w.started {
		w.started = true
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.loop(ctx)
		}()
	}

	return w.events, nil
}

// Stop stops the watcher and closes the events channel
func (w *FSWatcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.stopCh)
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	close(w.events)

	return err
}

func (w *FSWatcher) loop(ctx context.Context) {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	pending := make(map[string]ports.ChangeType)

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
			path := filepath.Clean(event.Name)
			if !w.isTarget(path) {
				continue
			}
			changeType, ok := changeTypeOf(event.Op)
			if !ok {
				continue
			}
			pending[path] = changeType
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error: %v", err)

		case <-timer.C:
			for path, changeType := range pending {
				event := ports.FileChangeEvent{
					Path:      path,
					Type:      changeType,
					Timestamp: time.Now(),
				}
				select {
				case w.events <- event:
				case <-ctx.Done():
					return
				case <-w.stopCh:
					return
				}
			}
			clear(pending)
		}
	}
}

func (w *FSWatcher) isTarget(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.targets[path]
	return ok
}

// changeTypeOf maps an fsnotify operation; chmod-only events are ignored
func changeTypeOf(op fsnotify.Op) (ports.ChangeType, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return ports.Created, true
	case op.Has(fsnotify.Write):
		return ports.Modified, true
	case op.Has(fsnotify.Remove):
		return ports.Deleted, true
	case op.Has(fsnotify.Rename):
		return ports.Renamed, true
	default:
		return ports.Modified, false
	}
}

// Ensure FSWatcher implements ports.FileWatcher
var _ ports.FileWatcher = (*FSWatcher)(nil)
