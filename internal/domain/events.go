package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event types
const (
	EventTypeLedgerPosted   = "ledger.posted"
	EventTypeLedgerReversed = "ledger.reversed"
)

// Aggregate types
const (
	AggregateTypeTransaction = "TRANSACTION"
)

// OutboxEventStatus is the relay-side state of an outbox row.
type OutboxEventStatus string

const (
	OutboxEventStatusPending   OutboxEventStatus = "PENDING"
	OutboxEventStatusProcessed OutboxEventStatus = "PROCESSED"
	OutboxEventStatusFailed    OutboxEventStatus = "FAILED"
)

// OutboxEvent is a domain event persisted in the same unit of work as its
// triggering mutation, drained asynchronously by the relay.
type OutboxEvent struct {
	ID            string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
	Status        OutboxEventStatus
	RetryCount    int
	CreatedAt     time.Time
	ProcessedAt   *time.Time
}

// NewOutboxEvent creates a PENDING outbox event.
func NewOutboxEvent(id, aggregateType, aggregateID, eventType string, payload []byte, now time.Time) *OutboxEvent {
	return &OutboxEvent{
		ID:            id,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		EventType:     eventType,
		Payload:       payload,
		Status:        OutboxEventStatusPending,
		CreatedAt:     now,
	}
}

// LedgerPostedEvent is emitted when a deposit or withdrawal posts.
type LedgerPostedEvent struct {
	TransactionID   string          `json:"transaction_id"`
	AccountID       string          `json:"account_id"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType TransactionType `json:"transaction_type"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

// EventType implements LedgerEvent.
func (e LedgerPostedEvent) EventType() string { return EventTypeLedgerPosted }

// AggregateID implements LedgerEvent.
func (e LedgerPostedEvent) AggregateID() string { return e.TransactionID }

// LedgerReversedEvent is emitted when a posted transaction is reversed.
type LedgerReversedEvent struct {
	ReversalTransactionID string    `json:"reversal_transaction_id"`
	OriginalTransactionID string    `json:"original_transaction_id"`
	Reason                string    `json:"reason"`
	OccurredAt            time.Time `json:"occurred_at"`
}

// EventType implements LedgerEvent.
func (e LedgerReversedEvent) EventType() string { return EventTypeLedgerReversed }

// AggregateID implements LedgerEvent.
func (e LedgerReversedEvent) AggregateID() string { return e.ReversalTransactionID }

// LedgerEvent is the closed set of events the outbox recorder accepts.
type LedgerEvent interface {
	EventType() string
	AggregateID() string
}
