package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgercore/internal/domain"
	"github.com/iho/ledgercore/internal/infrastructure/postgres/generated"
	"github.com/iho/ledgercore/internal/usecase"
)

// Postgres unique_violation.
const uniqueViolationCode = "23505"

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row, err := r.queries.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return rowToTransaction(row), nil
}

// GetByBusinessRefID retrieves a transaction by its business reference.
func (r *TransactionRepository) GetByBusinessRefID(ctx context.Context, businessRefID string) (*domain.Transaction, error) {
	row, err := r.queries.GetTransactionByBusinessRefID(ctx, businessRefID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return rowToTransaction(row), nil
}

// Create inserts the transaction within the unit of work. A unique-index hit
// on business_ref_id surfaces as domain.ErrDuplicateBusinessRef so the caller
// can resolve the race to the first writer.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, transaction *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		ID:                      transaction.ID,
		TransactionType:         string(transaction.Type),
		Description:             stringToPgText(transaction.Description),
		BusinessRefID:           transaction.BusinessRefID,
		Status:                  string(transaction.Status),
		ReversalOfTransactionID: stringToPgText(transaction.ReversalOfTransactionID),
		CreatedAt:               timeToPgTimestamptz(transaction.CreatedAt),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.ErrDuplicateBusinessRef
		}

		return err
	}

	return nil
}

// UpdateStatus writes the transaction's status within the unit of work.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, transaction *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateTransactionStatus(ctx, generated.UpdateTransactionStatusParams{
		ID:     transaction.ID,
		Status: string(transaction.Status),
	})
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:                      row.ID,
		Type:                    domain.TransactionType(row.TransactionType),
		Description:             row.Description.String,
		BusinessRefID:           row.BusinessRefID,
		Status:                  domain.TransactionStatus(row.Status),
		ReversalOfTransactionID: row.ReversalOfTransactionID.String,
		CreatedAt:               row.CreatedAt.Time,
	}
}
