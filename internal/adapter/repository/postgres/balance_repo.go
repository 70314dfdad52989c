package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgercore/internal/domain"
	"github.com/iho/ledgercore/internal/infrastructure/postgres/generated"
	"github.com/iho/ledgercore/internal/usecase"
)

// BalanceRepository implements usecase.BalanceRepository with optimistic
// locking: writes are conditioned on the version the balance was read at and
// report domain.ErrConcurrencyConflict when the row has moved on.
type BalanceRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewBalanceRepository creates a new BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool) *BalanceRepository {
	return &BalanceRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// GetByAccountID retrieves the balance of an account.
func (r *BalanceRepository) GetByAccountID(ctx context.Context, accountID string) (*domain.Balance, error) {
	row, err := r.queries.GetBalanceByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}

		return nil, err
	}

	return rowToBalance(row), nil
}

// GetByAccountIDs retrieves the balances of multiple accounts in one query,
// keyed by account ID. Missing accounts are absent from the map.
func (r *BalanceRepository) GetByAccountIDs(ctx context.Context, accountIDs []string) (map[string]*domain.Balance, error) {
	rows, err := r.queries.GetBalancesByAccountIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	balances := make(map[string]*domain.Balance, len(rows))
	for _, row := range rows {
		balances[row.AccountID] = rowToBalance(row)
	}

	return balances, nil
}

// Update writes the balance within the transaction, conditioned on the
// version it was read at.
func (r *BalanceRepository) Update(ctx context.Context, tx usecase.Transaction, balance *domain.Balance) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return updateVersioned(ctx, queries, balance)
}

// UpdateAll writes multiple balances within the transaction, one versioned
// write per account. The first conflict aborts the batch.
func (r *BalanceRepository) UpdateAll(ctx context.Context, tx usecase.Transaction, balances []*domain.Balance) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	for _, balance := range balances {
		if err := updateVersioned(ctx, queries, balance); err != nil {
			return err
		}
	}

	return nil
}

func updateVersioned(ctx context.Context, queries *generated.Queries, balance *domain.Balance) error {
	affected, err := queries.UpdateBalanceVersioned(ctx, generated.UpdateBalanceVersionedParams{
		AccountID:         balance.AccountID,
		Amount:            decimalToNumeric(balance.Amount),
		HoldAmount:        decimalToNumeric(balance.HoldAmount),
		LastTransactionID: stringToPgText(balance.LastTransactionID),
		UpdatedAt:         timeToPgTimestamptz(balance.UpdatedAt),
		Version:           balance.Version,
	})
	if err != nil {
		return err
	}

	// Zero rows means another writer bumped the version since our read.
	if affected == 0 {
		return domain.ErrConcurrencyConflict
	}

	return nil
}

func rowToBalance(row generated.Balance) *domain.Balance {
	return &domain.Balance{
		AccountID:         row.AccountID,
		Amount:            numericToDecimal(row.Amount),
		HoldAmount:        numericToDecimal(row.HoldAmount),
		Version:           row.Version,
		LastTransactionID: row.LastTransactionID.String,
		UpdatedAt:         row.UpdatedAt.Time,
	}
}
