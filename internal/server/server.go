// Package server exposes the casement pipeline over HTTP.
//
// Routes:
//
//	GET  /health      liveness probe
//	GET  /            three.js viewer with a live spec form
//	POST /api/price   WindowSpecs -> pricing breakdown
//	POST /api/model   WindowSpecs -> geometry (json, obj, png or html)
//	POST /api/quote   WindowSpecs -> quotation (pdf, svg, png or json)
//
// Errors are JSON objects {"error": ..., "code": ...}. Validation errors
// are 400 and carry the validation message; generation failures are 500
// with a generic message and the cause goes to the log.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/casement/pkg/config"
	"github.com/matzehuels/casement/pkg/pipeline"
	"github.com/matzehuels/casement/pkg/window"
)

// API paths, shared with the viewer page.
const (
	PathHealth = "/health"
	PathPrice  = "/api/price"
	PathModel  = "/api/model"
	PathQuote  = "/api/quote"
)

// maxBodyBytes caps request bodies; a spec is a few hundred bytes.
const maxBodyBytes = 1 << 20

const shutdownTimeout = 5 * time.Second

// ============================================================
// Server
// ============================================================

// Server serves the HTTP surface.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	seed   window.WindowSpecs
	client string
	router chi.Router
}

// New creates a server. seed fills the viewer form and client is the
// default client name for quotations.
func New(runner *pipeline.Runner, logger *log.Logger, seed window.WindowSpecs, client string) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
		seed:   seed,
		client: client,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	// ============================================================
	// Global Middleware
	// ============================================================

	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(serverHeader)

	// ============================================================
	// Routes
	// ============================================================

	r.Get(PathHealth, s.health)
	r.Get("/", s.index)

	r.Route("/api", func(api chi.Router) {
		api.Post("/price", s.price)
		api.Post("/model", s.model)
		api.Post("/quote", s.quote)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found", "NOT_FOUND")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", "METHOD_NOT_ALLOWED")
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg config.Server) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
