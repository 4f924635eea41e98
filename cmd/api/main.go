// Copyright (c) 2026 WTWR. All rights reserved.

// Command api is the entry point for the WTWR HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Construct the token service (fails fast on a missing signing secret).
//  4. Connect to MongoDB.
//  5. Ensure indexes (unique email).
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

	"github.com/wtwr-app/wtwr/internal/api"
	"github.com/wtwr-app/wtwr/internal/items"
	"github.com/wtwr-app/wtwr/internal/platform/config"
	"github.com/wtwr-app/wtwr/internal/platform/constants"
	"github.com/wtwr-app/wtwr/internal/platform/mongodb"
	"github.com/wtwr-app/wtwr/internal/platform/sec"
	"github.com/wtwr-app/wtwr/internal/users"
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

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
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

	// ── 3. Token Service ──────────────────────────────────────────────────
	// Constructed before any I/O: an empty signing secret must abort startup
	// rather than let the server issue unsigned tokens.
	tokenService, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, constants.AuthTokenTTL)
	must(log, err, "initialize token service")

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 4. MongoDB ────────────────────────────────────────────────────────
	client, err := mongodb.Connect(startupCtx, cfg, log)
	must(log, err, "connect to mongodb")
	defer func() {
		log.Info("closing mongodb client")
		if cerr := client.Disconnect(context.Background()); cerr != nil {
			log.Error("mongodb close error", slog.Any("error", cerr))
		}
	}()

	database := client.Database(cfg.MongoDatabase)

	// ── 5. Indexes ────────────────────────────────────────────────────────
	must(log, users.EnsureIndexes(startupCtx, database), "ensure indexes")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return mongodb.Ping(context.Background(), client)
		},
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	userRepository := users.NewRepository(database)
	userService := users.NewService(userRepository, tokenService)
	userHandler := users.NewHandler(userService)

	itemRepository := items.NewRepository(database)
	itemService := items.NewService(itemRepository)
	itemHandler := items.NewHandler(itemService)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Users:     userHandler,
		Items:     itemHandler,
	}

	server := api.NewServer(cfg, log, tokenService, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
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
