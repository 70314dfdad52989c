package usecase

import (
	"context"
	"time"

	"github.com/iho/ledgercore/internal/domain"
)

// AccountRepository defines read access to accounts. Accounts are created by
// the account management system; this core only reads them.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

// BalanceRepository defines data access for balances. Update and UpdateAll
// are version-conditioned: they fail with domain.ErrConcurrencyConflict when
// the stored version has advanced past the version the balance was read at.
type BalanceRepository interface {
	GetByAccountID(ctx context.Context, accountID string) (*domain.Balance, error)
	GetByAccountIDs(ctx context.Context, accountIDs []string) (map[string]*domain.Balance, error)
	Update(ctx context.Context, tx Transaction, balance *domain.Balance) error
	UpdateAll(ctx context.Context, tx Transaction, balances []*domain.Balance) error
}

// TransactionRepository defines data access for ledger transactions.
type TransactionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	GetByBusinessRefID(ctx context.Context, businessRefID string) (*domain.Transaction, error)
	// Create fails with domain.ErrDuplicateBusinessRef when the business
	// reference is already taken.
	Create(ctx context.Context, tx Transaction, transaction *domain.Transaction) error
	UpdateStatus(ctx context.Context, tx Transaction, transaction *domain.Transaction) error
}

// JournalEntryRepository defines data access for journal entries.
type JournalEntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.JournalEntry) error
	CreateAll(ctx context.Context, tx Transaction, entries []*domain.JournalEntry) error
	GetByTransactionID(ctx context.Context, transactionID string) ([]*domain.JournalEntry, error)
}

// OutboxRepository defines data access for outbox events. Create runs inside
// the business unit of work; the remaining operations serve the relay.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetPending(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkProcessed(ctx context.Context, id string, processedAt time.Time) error
	MarkFailed(ctx context.Context, id string) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock supplies the current instant, injected so every timestamp within one
// use-case invocation is consistent and tests can fix time.
type Clock interface {
	Now() time.Time
}
