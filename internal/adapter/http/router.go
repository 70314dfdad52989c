package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/ledgercore/internal/adapter/http/handler"
	"github.com/iho/ledgercore/internal/adapter/http/middleware"
	"github.com/iho/ledgercore/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LedgerHandler    *handler.LedgerHandler
	HealthHandler    *handler.HealthHandler
	Logger           zerolog.Logger
	Metrics          *metrics.Metrics
	IdempotencyStore middleware.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)

	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Metrics)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Postings
		r.Route("/ledger", func(r chi.Router) {
			r.Post("/deposit", cfg.LedgerHandler.Deposit)
			r.Post("/withdraw", cfg.LedgerHandler.Withdraw)
		})

		// Transaction lifecycle
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/{id}", cfg.LedgerHandler.GetTransaction)
			r.Post("/{id}/confirm", cfg.LedgerHandler.Confirm)
			r.Post("/{id}/reverse", cfg.LedgerHandler.Reverse)
		})

		// Balances
		r.Get("/accounts/{id}/balance", cfg.LedgerHandler.GetBalance)
	})

	return r
}
