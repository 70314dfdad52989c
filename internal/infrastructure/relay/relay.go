package relay

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/ledgercore/internal/domain"
	"github.com/iho/ledgercore/internal/infrastructure/metrics"
	"github.com/iho/ledgercore/internal/usecase"
)

// Relay drains PENDING outbox events and hands them to a Publisher. It is the
// asynchronous half of the outbox pattern: events were recorded atomically
// with their business mutation, delivery happens here, at least once.
type Relay struct {
	outboxRepo usecase.OutboxRepository
	publisher  Publisher
	logger     zerolog.Logger
	metrics    *metrics.Metrics
	batchSize  int
	interval   time.Duration
}

// Publisher defines the interface for publishing events to external systems.
type Publisher interface {
	Publish(ctx context.Context, event *domain.OutboxEvent) error
}

// Config for Relay.
type Config struct {
	OutboxRepo usecase.OutboxRepository
	Publisher  Publisher
	Logger     zerolog.Logger
	Metrics    *metrics.Metrics
	BatchSize  int           // Number of events to fetch per batch
	Interval   time.Duration // Polling interval
}

// New creates a new Relay.
func New(cfg Config) *Relay {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.Interval == 0 {
		cfg.Interval = time.Second
	}

	return &Relay{
		outboxRepo: cfg.OutboxRepo,
		publisher:  cfg.Publisher,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		batchSize:  cfg.BatchSize,
		interval:   cfg.Interval,
	}
}

// Start begins the relay worker. It runs until the context is cancelled.
func (r *Relay) Start(ctx context.Context) error {
	r.logger.Info().
		Int("batch_size", r.batchSize).
		Dur("interval", r.interval).
		Msg("outbox relay started")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// Process immediately on start
	if err := r.processBatch(ctx); err != nil {
		r.logger.Error().Err(err).Msg("error processing outbox batch on start")
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("outbox relay shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := r.processBatch(ctx); err != nil {
				r.logger.Error().Err(err).Msg("error processing outbox batch")
			}
		}
	}
}

// processBatch fetches and publishes one batch of pending events.
func (r *Relay) processBatch(ctx context.Context) error {
	events, err := r.outboxRepo.GetPending(ctx, r.batchSize)
	if err != nil {
		return err
	}

	if r.metrics != nil {
		r.metrics.OutboxLag.Set(float64(len(events)))
	}

	if len(events) == 0 {
		return nil
	}

	r.logger.Debug().Int("count", len(events)).Msg("processing outbox events")

	for _, event := range events {
		if err := r.publisher.Publish(ctx, event); err != nil {
			r.logger.Error().
				Err(err).
				Str("event_id", event.ID).
				Str("event_type", event.EventType).
				Msg("failed to publish event")

			if r.metrics != nil {
				r.metrics.OutboxFailed.Inc()
			}

			if err := r.outboxRepo.MarkFailed(ctx, event.ID); err != nil {
				r.logger.Error().Err(err).Str("event_id", event.ID).Msg("failed to mark event failed")
			}

			// Continue processing other events even if one fails
			continue
		}

		if r.metrics != nil {
			r.metrics.OutboxPublished.Inc()
		}

		if err := r.outboxRepo.MarkProcessed(ctx, event.ID, time.Now().UTC()); err != nil {
			// Left PENDING, the event will be delivered again. At-least-once.
			r.logger.Error().Err(err).Str("event_id", event.ID).Msg("failed to mark event processed")
		}
	}

	return nil
}

// LogPublisher is a simple publisher that logs events.
type LogPublisher struct {
	logger zerolog.Logger
}

// NewLogPublisher creates a new LogPublisher.
func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs the event.
func (p *LogPublisher) Publish(ctx context.Context, event *domain.OutboxEvent) error {
	p.logger.Info().
		Str("event_id", event.ID).
		Str("event_type", event.EventType).
		Str("aggregate_type", event.AggregateType).
		Str("aggregate_id", event.AggregateID).
		RawJSON("payload", event.Payload).
		Msg("event published")

	return nil
}
