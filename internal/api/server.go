// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/gambitacademy/gambit/internal/chat"
	"github.com/gambitacademy/gambit/internal/core/assignment"
	"github.com/gambitacademy/gambit/internal/core/course"
	"github.com/gambitacademy/gambit/internal/core/exam"
	"github.com/gambitacademy/gambit/internal/core/lesson"
	"github.com/gambitacademy/gambit/internal/core/submission"
	"github.com/gambitacademy/gambit/internal/platform/config"
	"github.com/gambitacademy/gambit/internal/platform/constants"
	"github.com/gambitacademy/gambit/internal/platform/middleware"
	"github.com/gambitacademy/gambit/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles authentication routes (register, login, token refresh).
	Auth *auth.Handler

	// Chat handles direct messaging and the live event stream.
	Chat *chat.Handler

	// Course manages the course catalogue and enrollment.
	Course *course.Handler

	// Assignment manages course homework.
	Assignment *assignment.Handler

	// Submission manages homework answers and grading.
	Submission *submission.Handler

	// Lesson manages scheduled classes.
	Lesson *lesson.Handler

	// Exam manages live assessment sessions.
	Exam *exam.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		// The chat mount manages its own timeouts: the event stream stays
		// open for the life of the client connection.
		api.Mount("/chats", h.Chat.Routes())

		api.Group(func(timed chi.Router) {
			timed.Use(chimw.Timeout(constants.GlobalRequestTimeout))

			timed.Mount("/auth", h.Auth.Routes())
			timed.Mount("/courses", h.Course.Routes())
			timed.Mount("/assignments", h.Assignment.Routes())
			timed.Mount("/submissions", h.Submission.Routes())
			timed.Mount("/lessons", h.Lesson.Routes())
			timed.Mount("/exams", h.Exam.Routes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
