package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpAdapter "github.com/iho/ledgercore/internal/adapter/http"
	"github.com/iho/ledgercore/internal/adapter/http/handler"
	postgresRepo "github.com/iho/ledgercore/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/ledgercore/internal/adapter/repository/redis"
	"github.com/iho/ledgercore/internal/infrastructure/config"
	"github.com/iho/ledgercore/internal/infrastructure/logger"
	"github.com/iho/ledgercore/internal/infrastructure/metrics"
	"github.com/iho/ledgercore/internal/infrastructure/postgres"
	"github.com/iho/ledgercore/internal/infrastructure/redis"
	"github.com/iho/ledgercore/internal/infrastructure/relay"
	"github.com/iho/ledgercore/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	m := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	balanceRepo := postgresRepo.NewBalanceRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	journalRepo := postgresRepo.NewJournalEntryRepository(pool)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	clock := usecase.SystemClock{}

	var outboxRepo usecase.OutboxRepository = postgresRepo.NewOutboxRepository(pool)
	if !cfg.OutboxEnabled {
		outboxRepo = postgresRepo.NewNullOutboxRepository()
	}

	// Initialize use cases
	outboxRecorder := usecase.NewOutboxRecorder(outboxRepo, idGen, clock)
	ledgerUC := usecase.NewLedgerUseCase(
		txManager,
		accountRepo,
		balanceRepo,
		transactionRepo,
		journalRepo,
		outboxRecorder,
		idGen,
		clock,
		log,
	)

	// Start the outbox relay
	relayCtx, stopRelay := context.WithCancel(ctx)
	defer stopRelay()

	if cfg.OutboxEnabled && cfg.RelayEnabled {
		var publisher relay.Publisher
		if len(cfg.KafkaBrokers) > 0 {
			kafkaPublisher := relay.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
			defer kafkaPublisher.Close()
			publisher = kafkaPublisher
		} else {
			publisher = relay.NewLogPublisher(log)
		}

		outboxRelay := relay.New(relay.Config{
			OutboxRepo: outboxRepo,
			Publisher:  publisher,
			Logger:     log,
			Metrics:    m,
			BatchSize:  cfg.RelayBatch,
			Interval:   cfg.RelayInterval,
		})

		go func() {
			if err := outboxRelay.Start(relayCtx); err != nil && err != context.Canceled {
				log.Error().Err(err).Msg("outbox relay stopped")
			}
		}()
	}

	// Initialize handlers
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		LedgerHandler:    ledgerHandler,
		HealthHandler:    healthHandler,
		Logger:           log,
		Metrics:          m,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	stopRelay()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
