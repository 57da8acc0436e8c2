// Copyright (c) 2026 Gambit Academy. All rights reserved.
// Author: platform@gambitacademy.io

// Command api is the entry point for the Gambit HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gambitacademy/gambit/internal/api"
	"github.com/gambitacademy/gambit/internal/chat"
	"github.com/gambitacademy/gambit/internal/core/assignment"
	"github.com/gambitacademy/gambit/internal/core/course"
	"github.com/gambitacademy/gambit/internal/core/exam"
	"github.com/gambitacademy/gambit/internal/core/lesson"
	"github.com/gambitacademy/gambit/internal/core/submission"
	"github.com/gambitacademy/gambit/internal/platform/config"
	"github.com/gambitacademy/gambit/internal/platform/constants"
	"github.com/gambitacademy/gambit/internal/platform/migration"
	pgstore "github.com/gambitacademy/gambit/internal/platform/postgres"
	redisstore "github.com/gambitacademy/gambit/internal/platform/redis"
	"github.com/gambitacademy/gambit/internal/platform/sec"
	"github.com/gambitacademy/gambit/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[Gambit] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	// Local development reads a .env file; deployed environments inject
	// variables directly, so a missing file is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for the process. The rate limiter's janitor goroutine is
	// bound to it.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Startup deadline so misconfiguration is caught quickly rather than
	// hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	refreshTokenRepository := auth.NewRefreshTokenRepository(rdb)
	resetTokenRepository := auth.NewResetTokenRepository(rdb)
	authService := auth.NewService(userRepository, refreshTokenRepository, resetTokenRepository, jwtSvc)
	authHandler := auth.NewHandler(authService)

	courseRepository := course.NewPostgresRepository(pool)
	courseService := course.NewService(courseRepository, log)
	courseHandler := course.NewHandler(courseService)

	assignmentRepository := assignment.NewPostgresRepository(pool)
	assignmentService := assignment.NewService(assignmentRepository, courseService, log)
	assignmentHandler := assignment.NewHandler(assignmentService)

	submissionRepository := submission.NewPostgresRepository(pool)
	submissionService := submission.NewService(submissionRepository, assignmentService, courseService, log)
	submissionHandler := submission.NewHandler(submissionService)

	lessonRepository := lesson.NewPostgresRepository(pool)
	lessonService := lesson.NewService(lessonRepository, courseService, log)
	lessonHandler := lesson.NewHandler(lessonService)

	examRepository := exam.NewPostgresRepository(pool)
	examService := exam.NewService(examRepository, courseService, log)
	examHandler := exam.NewHandler(examService)

	presence := chat.NewDirectory()
	messageRepository := chat.NewMessageRepository(pool)
	rosterRepository := chat.NewRosterRepository(pool)
	chatService := chat.NewService(messageRepository, rosterRepository, presence)
	chatHandler := chat.NewHandler(chatService, presence, jwtSvc)

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
		OnlineUsers: presence.Count,
	}, log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       authHandler,
		Chat:       chatHandler,
		Course:     courseHandler,
		Assignment: assignmentHandler,
		Submission: submissionHandler,
		Lesson:     lessonHandler,
		Exam:       examHandler,
	}

	server := api.NewServer(rootCtx, cfg, log, jwtSvc, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
