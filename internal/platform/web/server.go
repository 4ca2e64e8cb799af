// Package web serves the score database as a read-only JSON API.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-wezzle/internal/storage"
)

// Server is the HTTP score API.
type Server struct {
	router chi.Router
	server *http.Server
	store  *storage.Store
	logger *log.Logger
}

// NewServer builds the API on addr. A nil logger disables access logs.
func NewServer(addr string, store *storage.Store, logger *log.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		store:  store,
		logger: logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(AccessLog(logger))
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/modes", s.handleModes)
		r.Get("/scores/{gameID}", s.handleScores)
		r.Get("/runs/{gameID}", s.handleRuns)
		r.Get("/stats", s.handleStats)
	})

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	if s.logger != nil {
		s.logger.Info("starting HTTP server", "address", s.server.Addr)
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// AccessLog emits one log line per request. A nil logger makes it a no-op.
func AccessLog(logger *log.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			logger.Log(levelByStatus(rw.status), "http.access",
				"status", rw.status,
				"method", r.Method,
				"path", r.URL.Path,
				"reqid", middleware.GetReqID(r.Context()),
				"latency", time.Since(start),
			)
		})
	}
}

func levelByStatus(status int) log.Level {
	switch {
	case status >= 500:
		return log.ErrorLevel
	case status >= 400:
		return log.WarnLevel
	default:
		return log.InfoLevel
	}
}
