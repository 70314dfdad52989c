package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createBalance = `-- name: CreateBalance :one
INSERT INTO balances (account_id, amount, hold_amount, version, last_transaction_id, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING account_id, amount, hold_amount, version, last_transaction_id, updated_at
`

type CreateBalanceParams struct {
	AccountID         string             `json:"account_id"`
	Amount            pgtype.Numeric     `json:"amount"`
	HoldAmount        pgtype.Numeric     `json:"hold_amount"`
	Version           int64              `json:"version"`
	LastTransactionID pgtype.Text        `json:"last_transaction_id"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateBalance(ctx context.Context, arg CreateBalanceParams) (Balance, error) {
	row := q.db.QueryRow(ctx, createBalance,
		arg.AccountID,
		arg.Amount,
		arg.HoldAmount,
		arg.Version,
		arg.LastTransactionID,
		arg.UpdatedAt,
	)
	var i Balance
	err := row.Scan(
		&i.AccountID,
		&i.Amount,
		&i.HoldAmount,
		&i.Version,
		&i.LastTransactionID,
		&i.UpdatedAt,
	)
	return i, err
}

const getBalanceByAccountID = `-- name: GetBalanceByAccountID :one
SELECT account_id, amount, hold_amount, version, last_transaction_id, updated_at FROM balances WHERE account_id = $1
`

func (q *Queries) GetBalanceByAccountID(ctx context.Context, accountID string) (Balance, error) {
	row := q.db.QueryRow(ctx, getBalanceByAccountID, accountID)
	var i Balance
	err := row.Scan(
		&i.AccountID,
		&i.Amount,
		&i.HoldAmount,
		&i.Version,
		&i.LastTransactionID,
		&i.UpdatedAt,
	)
	return i, err
}

const getBalancesByAccountIDs = `-- name: GetBalancesByAccountIDs :many
SELECT account_id, amount, hold_amount, version, last_transaction_id, updated_at FROM balances WHERE account_id = ANY($1::text[]) ORDER BY account_id
`

func (q *Queries) GetBalancesByAccountIDs(ctx context.Context, dollar_1 []string) ([]Balance, error) {
	rows, err := q.db.Query(ctx, getBalancesByAccountIDs, dollar_1)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Balance{}
	for rows.Next() {
		var i Balance
		if err := rows.Scan(
			&i.AccountID,
			&i.Amount,
			&i.HoldAmount,
			&i.Version,
			&i.LastTransactionID,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateBalanceVersioned = `-- name: UpdateBalanceVersioned :execrows
UPDATE balances
SET amount = $2, hold_amount = $3, version = version + 1, last_transaction_id = $4, updated_at = $5
WHERE account_id = $1 AND version = $6
`

type UpdateBalanceVersionedParams struct {
	AccountID         string             `json:"account_id"`
	Amount            pgtype.Numeric     `json:"amount"`
	HoldAmount        pgtype.Numeric     `json:"hold_amount"`
	LastTransactionID pgtype.Text        `json:"last_transaction_id"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
	Version           int64              `json:"version"`
}

func (q *Queries) UpdateBalanceVersioned(ctx context.Context, arg UpdateBalanceVersionedParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateBalanceVersioned,
		arg.AccountID,
		arg.Amount,
		arg.HoldAmount,
		arg.LastTransactionID,
		arg.UpdatedAt,
		arg.Version,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
