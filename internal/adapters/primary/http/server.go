package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// Server serves the compiled deck, the files next to its source and a
// websocket used to reload open browsers
type Server struct {
	server    *http.Server
	listener  net.Listener
	connMgr   *ConnectionManager
	config    entities.ServerConfig
	staticDir string
	logger    ports.Logger

	mu       sync.RWMutex
	document []byte
	running  bool
}

// NewServer creates a preview server. Files under staticDir are served
// at the root so non-embedded media resolve like they do on disk.
func NewServer(config entities.ServerConfig, staticDir string, logger ports.Logger) *Server {
	return &Server{
		config:    config,
		staticDir: staticDir,
		logger:    logger,
		connMgr:   NewConnectionManager(),
	}
}

// SetDocument replaces the document served at "/"
func (s *Server) SetDocument(html []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.document = append([]byte(nil), html...)
}

func (s *Server) currentDocument() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.document
}

// Start listens on the configured address and serves in the background.
// Listen errors are returned directly.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("server already running")
	}

	listener, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.config.Address(), err)
	}

	s.connMgr = NewConnectionManager()
	go s.connMgr.Run(ctx)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.config.GetCORSOrigins(),
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	s.listener = listener
	s.server = &http.Server{
		Handler:      c.Handler(s.Handler()),
		ReadTimeout:  s.config.GetReadTimeout(),
		WriteTimeout: s.config.GetWriteTimeout(),
		IdleTimeout:  60 * time.Second,
	}
	s.running = true

	server := s.server
	go func() {
		s.logger.Info("preview server listening on http://%s", listener.Addr())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("preview server error: %v", err)
		}
	}()

	return nil
}

// Addr returns the address the server listens on, or "" when stopped
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop closes websocket clients and shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return errors.New("server not running")
	}
	server, connMgr := s.server, s.connMgr
	s.running = false
	s.listener = nil
	s.mu.Unlock()

	connMgr.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.GetShutdownTimeout())
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// NotifyClients sends event to every connected browser
func (s *Server) NotifyClients(event ports.UpdateEvent) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.running {
		return errors.New("server not running")
	}

	s.connMgr.Broadcast(event)
	return nil
}

func (s *Server) manager() *ConnectionManager {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connMgr
}

// IsRunning reports whether the server is serving
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Handler returns the router with its middleware, without CORS
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/ws", s.handleWebSocket).Methods(http.MethodGet)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/", s.handleDocument).Methods(http.MethodGet, http.MethodHead)
	router.PathPrefix("/").Handler(secureFileServer(s.staticDir)).Methods(http.MethodGet, http.MethodHead)

	router.Use(
		func(next http.Handler) http.Handler { return createRecoveryMiddleware(next, s.logger) },
		func(next http.Handler) http.Handler { return createLoggingMiddleware(next, s.logger) },
		securityHeadersMiddleware,
	)

	return router
}

// Ensure Server implements ports.PreviewServer
var _ ports.PreviewServer = (*Server)(nil)
