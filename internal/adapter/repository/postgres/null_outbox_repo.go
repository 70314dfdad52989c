package postgres

import (
	"context"
	"time"

	"github.com/iho/ledgercore/internal/domain"
	"github.com/iho/ledgercore/internal/usecase"
)

// NullOutboxRepository is a no-op implementation used when event publishing
// is disabled.
type NullOutboxRepository struct{}

// NewNullOutboxRepository creates a new NullOutboxRepository.
func NewNullOutboxRepository() *NullOutboxRepository {
	return &NullOutboxRepository{}
}

func (r *NullOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	return nil
}

func (r *NullOutboxRepository) GetPending(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	return nil, nil
}

func (r *NullOutboxRepository) MarkProcessed(ctx context.Context, id string, processedAt time.Time) error {
	return nil
}

func (r *NullOutboxRepository) MarkFailed(ctx context.Context, id string) error {
	return nil
}
