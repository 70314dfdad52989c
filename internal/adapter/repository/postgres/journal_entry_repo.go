package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgercore/internal/domain"
	"github.com/iho/ledgercore/internal/infrastructure/postgres/generated"
	"github.com/iho/ledgercore/internal/usecase"
)

// JournalEntryRepository implements usecase.JournalEntryRepository.
type JournalEntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewJournalEntryRepository creates a new JournalEntryRepository.
func NewJournalEntryRepository(pool *pgxpool.Pool) *JournalEntryRepository {
	return &JournalEntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts a journal entry within the unit of work.
func (r *JournalEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return createEntry(ctx, queries, entry)
}

// CreateAll inserts multiple journal entries within the unit of work.
func (r *JournalEntryRepository) CreateAll(ctx context.Context, tx usecase.Transaction, entries []*domain.JournalEntry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	for _, entry := range entries {
		if err := createEntry(ctx, queries, entry); err != nil {
			return err
		}
	}

	return nil
}

// GetByTransactionID retrieves all entries of a transaction.
func (r *JournalEntryRepository) GetByTransactionID(ctx context.Context, transactionID string) ([]*domain.JournalEntry, error) {
	rows, err := r.queries.GetJournalEntriesByTransactionID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToJournalEntry(row))
	}

	return entries, nil
}

func createEntry(ctx context.Context, queries *generated.Queries, entry *domain.JournalEntry) error {
	_, err := queries.CreateJournalEntry(ctx, generated.CreateJournalEntryParams{
		ID:            entry.ID,
		TransactionID: entry.TransactionID,
		AccountID:     entry.AccountID,
		Amount:        decimalToNumeric(entry.Amount),
		EntryType:     string(entry.EntryType),
		CreatedAt:     timeToPgTimestamptz(entry.CreatedAt),
	})

	return err
}

func rowToJournalEntry(row generated.JournalEntry) *domain.JournalEntry {
	return &domain.JournalEntry{
		ID:            row.ID,
		TransactionID: row.TransactionID,
		AccountID:     row.AccountID,
		Amount:        numericToDecimal(row.Amount),
		EntryType:     domain.EntryType(row.EntryType),
		CreatedAt:     row.CreatedAt.Time,
	}
}
