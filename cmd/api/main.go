// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Medira HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to MongoDB.
//  4. Connect to Redis.
//  5. Ensure collection indexes (idempotent).
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

	"github.com/taibuivan/medira/internal/api"
	"github.com/taibuivan/medira/internal/auth"
	"github.com/taibuivan/medira/internal/core/advert"
	"github.com/taibuivan/medira/internal/core/cart"
	"github.com/taibuivan/medira/internal/core/category"
	"github.com/taibuivan/medira/internal/core/medicine"
	"github.com/taibuivan/medira/internal/core/payment"
	"github.com/taibuivan/medira/internal/platform/cache"
	"github.com/taibuivan/medira/internal/platform/config"
	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/internal/platform/middleware"
	"github.com/taibuivan/medira/internal/platform/mongodb"
	redisstore "github.com/taibuivan/medira/internal/platform/redis"
	"github.com/taibuivan/medira/internal/platform/sec"
	"github.com/taibuivan/medira/internal/users"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "medira"))
	slog.SetDefault(log)

	log.Info("[Medira] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "medira"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. MongoDB ────────────────────────────────────────────────────────
	mongoClient, err := mongodb.NewClient(startupCtx, cfg.MongoURI, log)
	must(log, err, "connect to mongodb")
	defer func() {
		log.Info("closing mongodb client")
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer disconnectCancel()
		if cerr := mongoClient.Disconnect(disconnectCtx); cerr != nil {
			log.Error("mongodb disconnect error", slog.Any("error", cerr))
		}
	}()

	database := mongoClient.Database(cfg.MongoDatabase)

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	catalogueCache := cache.New(rdb)

	// ── 5. Indexes ────────────────────────────────────────────────────────
	must(log, mongodb.EnsureIndexes(startupCtx, database, log), "ensure indexes")

	// ── 6. Session Codec ──────────────────────────────────────────────────
	tokenCodec := sec.NewTokenCodec(cfg.AccessTokenSecret, constants.AuthIssuer, cfg.SessionTTL)

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return mongodb.Ping(context.Background(), mongoClient)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userDirectory := users.NewDirectory(users.NewMongoRepository(database), log)

	guard := middleware.Guards{
		Session: middleware.RequireSession,
		Admin:   middleware.RequireRole(userDirectory, string(users.RoleAdmin)),
		Seller:  middleware.RequireRole(userDirectory, string(users.RoleSeller)),
	}

	categoryService := category.NewService(category.NewMongoRepository(database), catalogueCache, log)
	medicineService := medicine.NewService(medicine.NewMongoRepository(database), userDirectory, log)
	advertService := advert.NewService(advert.NewMongoRepository(database), catalogueCache, log)
	cartService := cart.NewService(cart.NewMongoRepository(database), log)
	paymentService := payment.NewService(
		payment.NewMongoRepository(database),
		payment.NewStripeGateway(cfg.StripeSecretKey),
		log,
	)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(tokenCodec, cfg.IsProduction()),
		Users:     users.NewHandler(userDirectory),
		Category:  category.NewHandler(categoryService),
		Medicine:  medicine.NewHandler(medicineService),
		Advert:    advert.NewHandler(advertService),
		Cart:      cart.NewHandler(cartService),
		Payment:   payment.NewHandler(paymentService),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokenCodec, guard, handlers)

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
