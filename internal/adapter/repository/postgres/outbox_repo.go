package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgercore/internal/domain"
	"github.com/iho/ledgercore/internal/infrastructure/postgres/generated"
	"github.com/iho/ledgercore/internal/usecase"
)

// OutboxRepository implements usecase.OutboxRepository.
type OutboxRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewOutboxRepository creates a new OutboxRepository.
func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts an outbox event within the unit of work that produced it.
func (r *OutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateOutboxEvent(ctx, generated.CreateOutboxEventParams{
		ID:            event.ID,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		EventType:     event.EventType,
		Payload:       event.Payload,
		Status:        string(event.Status),
		RetryCount:    int32(event.RetryCount),
		CreatedAt:     timeToPgTimestamptz(event.CreatedAt),
	})

	return err
}

// GetPending retrieves the oldest PENDING events, up to limit.
func (r *OutboxRepository) GetPending(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	rows, err := r.queries.GetPendingOutboxEvents(ctx, int32(limit))
	if err != nil {
		return nil, err
	}

	events := make([]*domain.OutboxEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, rowToOutboxEvent(row))
	}

	return events, nil
}

// MarkProcessed marks an event as delivered.
func (r *OutboxRepository) MarkProcessed(ctx context.Context, id string, processedAt time.Time) error {
	return r.queries.MarkOutboxEventProcessed(ctx, generated.MarkOutboxEventProcessedParams{
		ID:          id,
		ProcessedAt: timeToPgTimestamptz(processedAt),
	})
}

// MarkFailed marks an event as failed and bumps its retry counter.
func (r *OutboxRepository) MarkFailed(ctx context.Context, id string) error {
	return r.queries.MarkOutboxEventFailed(ctx, id)
}

func rowToOutboxEvent(row generated.OutboxEvent) *domain.OutboxEvent {
	var processedAt *time.Time
	if row.ProcessedAt.Valid {
		t := row.ProcessedAt.Time
		processedAt = &t
	}

	return &domain.OutboxEvent{
		ID:            row.ID,
		AggregateType: row.AggregateType,
		AggregateID:   row.AggregateID,
		EventType:     row.EventType,
		Payload:       row.Payload,
		Status:        domain.OutboxEventStatus(row.Status),
		RetryCount:    int(row.RetryCount),
		CreatedAt:     row.CreatedAt.Time,
		ProcessedAt:   processedAt,
	}
}
