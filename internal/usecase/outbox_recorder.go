package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iho/ledgercore/internal/domain"
)

// OutboxRecorder serializes domain events into outbox rows inside the
// caller's unit of work, so event capture commits or rolls back atomically
// with the business mutation.
type OutboxRecorder struct {
	outboxRepo OutboxRepository
	idGen      IDGenerator
	clock      Clock
}

// NewOutboxRecorder creates a new OutboxRecorder.
func NewOutboxRecorder(outboxRepo OutboxRepository, idGen IDGenerator, clock Clock) *OutboxRecorder {
	return &OutboxRecorder{
		outboxRepo: outboxRepo,
		idGen:      idGen,
		clock:      clock,
	}
}

// Record persists event as a PENDING outbox row within tx.
func (r *OutboxRecorder) Record(ctx context.Context, tx Transaction, event domain.LedgerEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal outbox payload: %w", err)
	}

	outboxEvent := domain.NewOutboxEvent(
		r.idGen.Generate(),
		domain.AggregateTypeTransaction,
		event.AggregateID(),
		event.EventType(),
		payload,
		r.clock.Now(),
	)

	return r.outboxRepo.Create(ctx, tx, outboxEvent)
}
