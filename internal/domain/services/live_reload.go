package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// ConfigLoader returns the configuration for the next rebuild
type ConfigLoader func(ctx context.Context) (*entities.Config, error)

// LiveReloadService rebuilds a deck when its source changes and tells
// connected browsers to reload
type LiveReloadService struct {
	builder ports.BuildService
	watcher ports.FileWatcher
	server  ports.PreviewServer
	logger  ports.Logger

	mu           sync.Mutex
	watching     bool
	watchCancel  context.CancelFunc
	request      ports.BuildRequest
	write        bool
	configLoader ConfigLoader
	done         chan struct{}
}

// NewLiveReloadService creates a new live reload service
func NewLiveReloadService(
	builder ports.BuildService,
	watcher ports.FileWatcher,
	server ports.PreviewServer,
	logger ports.Logger,
) *LiveReloadService {
	return &LiveReloadService{
		builder: builder,
		watcher: watcher,
		server:  server,
		logger:  logger,
	}
}

// SetConfigLoader makes every rebuild load its configuration through load
// instead of reusing the request's Config. A nil load restores the default.
func (s *LiveReloadService) SetConfigLoader(load ConfigLoader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configLoader = load
}

// Start builds the deck once, hands it to the server and watches the source
// plus any extra paths. When write is set every rebuild is also compiled to
// its output file. A failing first build is returned; later failures are
// logged and pushed to browsers as error events.
func (s *LiveReloadService) Start(ctx context.Context, req ports.BuildRequest, write bool, extra ...string) error {
	s.mu.Lock()
	if s.watching {
		s.mu.Unlock()
		return errors.New("already watching")
	}
	s.watching = true
	s.request = req
	s.write = write
	s.mu.Unlock()

	reset := func() {
		s.mu.Lock()
		s.watching = false
		s.mu.Unlock()
	}

	if _, err := s.Rebuild(ctx); err != nil {
		reset()
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)

	var events <-chan ports.FileChangeEvent
	for _, path := range append([]string{req.Source}, extra...) {
		ch, err := s.watcher.Watch(watchCtx, path)
		if err != nil {
			cancel()
			reset()
			return fmt.Errorf("starting watcher: %w", err)
		}
		events = ch
	}

	done := make(chan struct{})
	s.mu.Lock()
	s.watchCancel = cancel
	s.done = done
	s.mu.Unlock()

	go func() {
		defer close(done)
		s.handleEvents(watchCtx, events)
	}()

	return nil
}

// Stop stops reacting to changes and waits for a rebuild in flight
func (s *LiveReloadService) Stop() error {
	s.mu.Lock()
	if !s.watching {
		s.mu.Unlock()
		return nil
	}
	cancel, done := s.watchCancel, s.done
	s.watching = false
	s.watchCancel = nil
	s.done = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
	return nil
}

// IsWatching returns whether the service is currently watching
func (s *LiveReloadService) IsWatching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watching
}

// Rebuild renders (or builds) the deck and replaces the served document
func (s *LiveReloadService) Rebuild(ctx context.Context) (*ports.BuildResult, error) {
	s.mu.Lock()
	req, write, load := s.request, s.write, s.configLoader
	s.mu.Unlock()

	if load != nil {
		cfg, err := load(ctx)
		if err != nil {
			return nil, fmt.Errorf("reloading configuration: %w", err)
		}
		req.Config = cfg
	}

	var (
		result *ports.BuildResult
		err    error
	)
	if write {
		result, err = s.builder.Build(ctx, req)
	} else {
		result, err = s.builder.Render(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	s.server.SetDocument(result.HTML)
	return result, nil
}

func (s *LiveReloadService) handleEvents(ctx context.Context, events <-chan ports.FileChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}

			s.logger.Info("%s %s, rebuilding", event.Path, event.Type)

			result, err := s.Rebuild(ctx)
			if err != nil {
				s.logger.Error("rebuild failed: %v", err)
				s.notify(ports.UpdateEvent{
					Type:      ports.EventTypeError,
					Timestamp: event.Timestamp,
					Data:      map[string]string{"file": event.Path, "error": err.Error()},
				})
				continue
			}

			s.logger.Debug("rebuilt %s: %d fragments in %s", event.Path, result.Fragments, result.Duration)
			s.notify(ports.UpdateEvent{
				Type:      ports.EventTypeReload,
				Timestamp: event.Timestamp,
				Data:      map[string]string{"file": event.Path, "type": event.Type.String()},
			})
		}
	}
}

func (s *LiveReloadService) notify(event ports.UpdateEvent) {
	if err := s.server.NotifyClients(event); err != nil {
		s.logger.Warn("failed to notify browsers: %v", err)
	}
}
