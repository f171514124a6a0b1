// Package server hosts the growplan HTTP API.
//
// The server is a thin, stateless host around the pipeline: every request
// recomputes its plan from the posted parameters, so there is no session
// state, no persistence, and nothing shared between requests beyond the
// runner itself.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/growplan/pkg/pipeline"
)

// Timeouts for the HTTP server. Layout computation is arithmetic; anything
// slow is a stuck client, not a slow plan.
const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	requestTimeout  = 15 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server is the growplan API host.
type Server struct {
	addr   string
	logger *log.Logger
	runner *pipeline.Runner
}

// New creates a server listening on addr. If logger is nil, log.Default()
// is used.
func New(addr string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		addr:   addr,
		logger: logger,
		runner: pipeline.NewRunner(logger),
	}
}

// Handler builds the chi router with the full middleware chain.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/defaults", s.handleDefaults)
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info("listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info("shut down")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
