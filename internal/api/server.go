// Copyright (c) 2026 Medira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

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

	"github.com/taibuivan/medira/internal/auth"
	"github.com/taibuivan/medira/internal/core/advert"
	"github.com/taibuivan/medira/internal/core/cart"
	"github.com/taibuivan/medira/internal/core/category"
	"github.com/taibuivan/medira/internal/core/medicine"
	"github.com/taibuivan/medira/internal/core/payment"
	"github.com/taibuivan/medira/internal/platform/config"
	"github.com/taibuivan/medira/internal/platform/constants"
	"github.com/taibuivan/medira/internal/platform/middleware"
	"github.com/taibuivan/medira/internal/users"
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

	// Auth issues and clears the session cookie.
	Auth *auth.Handler

	// Users is the account directory and role administration.
	Users *users.Handler

	// Category manages the catalogue taxonomy.
	Category *category.Handler

	// Medicine is the product catalogue.
	Medicine *medicine.Handler

	// Advert runs the promotion workflow.
	Advert *advert.Handler

	// Cart holds purchase intents.
	Cart *cart.Handler

	// Payment covers intents, the ledger, and revenue summaries.
	Payment *payment.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// Routes are mounted flat at the root: the frontend predates any versioned
// prefix and calls paths like /medicines and /jwt directly.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, guard middleware.Guards, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	h.Auth.RegisterRoutes(r)
	h.Users.RegisterRoutes(r, guard)
	h.Category.RegisterRoutes(r, guard)
	h.Medicine.RegisterRoutes(r, guard)
	h.Advert.RegisterRoutes(r, guard)
	h.Cart.RegisterRoutes(r, guard)
	h.Payment.RegisterRoutes(r, guard)

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
