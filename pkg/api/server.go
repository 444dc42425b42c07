package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matryer/way"
	"github.com/rs/zerolog"
)

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host         string        // Host to bind to (default "localhost")
	Port         int           // Port to listen on (default 8080)
	ReadTimeout  time.Duration // Read timeout (default 30s)
	WriteTimeout time.Duration // Write timeout (default 30s; streaming endpoints need headroom)
	IdleTimeout  time.Duration // Idle timeout (default 60s)
}

// DefaultConfig returns a ServerConfig with sensible defaults.
func DefaultConfig() ServerConfig {
	return ServerConfig{
		Host:         "localhost",
		Port:         8080,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Server is the HTTP API server.
type Server struct {
	config   ServerConfig
	handlers *Handlers
	server   *http.Server
	logger   zerolog.Logger
	version  string
}

// NewServer creates a new API server.
func NewServer(config ServerConfig, version string, logger zerolog.Logger) *Server {
	return &Server{
		config:   config,
		handlers: NewHandlers(version, logger),
		logger:   logger,
		version:  version,
	}
}

// Handlers exposes the handler set, mainly for tests.
func (s *Server) Handlers() *Handlers {
	return s.handlers
}

// corsMiddleware adds CORS headers for browser access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs all requests.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() http.Handler {
	router := way.NewRouter()

	router.HandleFunc("POST", "/api/v1/games", s.handlers.CreateGame)
	router.HandleFunc("GET", "/api/v1/games/:id", s.handlers.GetState)
	router.HandleFunc("DELETE", "/api/v1/games/:id", s.handlers.DeleteGame)
	router.HandleFunc("POST", "/api/v1/games/:id/roll", s.handlers.Roll)
	router.HandleFunc("POST", "/api/v1/games/:id/select", s.handlers.Select)
	router.HandleFunc("GET", "/api/v1/games/:id/bestmove", s.handlers.BestMove)
	router.HandleFunc("POST", "/api/v1/games/:id/reset", s.handlers.Reset)
	router.HandleFunc("GET", "/api/v1/games/:id/ws", s.handlers.WebSocket)
	router.HandleFunc("GET", "/api/v1/games/:id/events", s.handlers.Events)
	router.HandleFunc("GET", "/api/v1/health", s.handlers.Health)

	return corsMiddleware(s.loggingMiddleware(router))
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	s.logger.Info().Str("addr", addr).Str("version", s.version).Msg("starting ludo API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// ListenAndServeWithGracefulShutdown starts the server and handles shutdown
// signals.
func (s *Server) ListenAndServeWithGracefulShutdown() error {
	errChan := make(chan error, 1)

	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		s.logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info().Msg("server stopped")
	return nil
}
