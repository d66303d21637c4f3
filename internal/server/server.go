// Package server exposes the scheduling engine over a JSON REST API.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/Aanishnithin07/Schedulyze/internal/config"
	"github.com/Aanishnithin07/Schedulyze/internal/scheduler"
)

// Server is the Schedulyze REST API server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.ServerConfig
	startTime time.Time
	scorer    scheduler.Scorer
	planner   *scheduler.Planner
	checker   *scheduler.Validator
	validate  *validator.Validate
	now       func() time.Time
}

// Option configures optional Server dependencies.
type Option func(*Server)

// WithScorer overrides the scoring weights and rating scales.
func WithScorer(scorer scheduler.Scorer) Option {
	return func(s *Server) {
		s.scorer = scorer
	}
}

// WithClock overrides the time source used when a request does not pin a
// start date. Tests use this to keep schedules deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New creates a new Server with all routes registered.
func New(cfg config.ServerConfig, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		startTime: time.Now(),
		scorer:    scheduler.DefaultScorer(),
		validate:  newRequestValidator(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.planner = scheduler.NewPlanner(s.scorer, logger)
	s.checker = scheduler.NewValidator(s.scorer)

	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	// Global middleware
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	// API routes (JSON)
	r.Route("/api/v1", func(r chi.Router) {
		// Discovery
		r.Get("/", s.handleDiscovery)

		// Health
		r.Get("/health", s.handleHealth)

		// Schedule generation and calendar export
		r.Route("/schedule", func(r chi.Router) {
			r.Post("/", s.handleCreateSchedule)
			r.Post("/export", s.handleExportSchedule)
		})

		// Priority scores without a full schedule
		r.Post("/scores", s.handleScores)
	})
}
