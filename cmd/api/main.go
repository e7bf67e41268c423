// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Eventful HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool) and run migrations, when configured.
//  4. Connect to Redis, when configured.
//  5. Wire domain services and HTTP handlers.
//  6. Seed the demo catalogue.
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

	goredis "github.com/redis/go-redis/v9"

	"github.com/eventfulindia/eventful/internal/api"
	"github.com/eventfulindia/eventful/internal/auth"
	"github.com/eventfulindia/eventful/internal/core/artist"
	"github.com/eventfulindia/eventful/internal/core/booking"
	"github.com/eventfulindia/eventful/internal/core/event"
	"github.com/eventfulindia/eventful/internal/core/notification"
	"github.com/eventfulindia/eventful/internal/core/onboarding"
	"github.com/eventfulindia/eventful/internal/core/seed"
	"github.com/eventfulindia/eventful/internal/core/site"
	"github.com/eventfulindia/eventful/internal/platform/config"
	"github.com/eventfulindia/eventful/internal/platform/constants"
	"github.com/eventfulindia/eventful/internal/platform/migration"
	pgstore "github.com/eventfulindia/eventful/internal/platform/postgres"
	redisstore "github.com/eventfulindia/eventful/internal/platform/redis"
	"github.com/eventfulindia/eventful/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("postgres", cfg.DatabaseURL != ""),
		slog.Bool("redis", cfg.RedisURL != ""),
	)

	// Root context for startup. Misconfiguration fails fast instead of hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	health := api.HealthDependencies{}

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	var artistRepository artist.Repository = artist.NewMemoryRepository()

	if cfg.DatabaseURL != "" {
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		artistRepository = artist.NewPostgresRepository(pool)
		health.CheckDatabase = func(context context.Context) error {
			return pgstore.Ping(context, pool)
		}
	}

	// ── 4. Redis ──────────────────────────────────────────────────────────
	var criteriaStore artist.CriteriaStore = artist.NewMemoryCriteriaStore()

	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer closeRedis(log, rdb)

		criteriaStore = artist.NewRedisCriteriaStore(rdb)
		health.CheckCache = func(context context.Context) error {
			return redisstore.Ping(context, rdb)
		}
	}

	// ── 5. Domain Wiring ──────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.SessionSecret, constants.SessionIssuer, cfg.SessionTTL)
	must(log, err, "initialize token service")

	notificationService := notification.NewService(notification.NewMemoryRepository(), log)
	artistService := artist.NewService(artistRepository, criteriaStore, log)
	eventService := event.NewService(event.NewMemoryRepository(), log)
	bookingService := booking.NewService(booking.NewMemoryRepository(), artistService, eventService, notificationService, log)
	onboardingService := onboarding.NewService(onboarding.NewMemoryDraftStore(), artistService, notificationService, log)

	// ── 6. Demo Data ──────────────────────────────────────────────────────
	if cfg.SeedDemoData {
		must(log, seed.Load(startupCtx, seed.Loaders{
			Artists:  artistService,
			Events:   eventService,
			Bookings: bookingService,
		}, log), "seed demo data")
	}

	liveness, readiness := api.NewHealthHandlers(health, log)

	handlers := api.Handlers{
		Liveness:      liveness,
		Readiness:     readiness,
		Auth:          auth.NewHandler(auth.NewService(tokenService, log)),
		Artists:       artist.NewHandler(artistService),
		Events:        event.NewHandler(eventService),
		Bookings:      booking.NewHandler(bookingService),
		Notifications: notification.NewHandler(notificationService),
		Onboarding:    onboarding.NewHandler(onboardingService),
		Site:          site.NewHandler(artistService),
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokenService, handlers)

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
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// newLogger builds the JSON logger every entry of the process goes through.
func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

func closeRedis(log *slog.Logger, rdb *goredis.Client) {
	log.Info("closing_redis_client")
	if err := rdb.Close(); err != nil {
		log.Error("redis_close_error", slog.Any("error", err))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
