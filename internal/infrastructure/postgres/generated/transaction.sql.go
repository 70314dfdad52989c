package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createTransaction = `-- name: CreateTransaction :one
INSERT INTO transactions (id, transaction_type, description, business_ref_id, status, reversal_of_transaction_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, transaction_type, description, business_ref_id, status, reversal_of_transaction_id, created_at
`

type CreateTransactionParams struct {
	ID                      string             `json:"id"`
	TransactionType         string             `json:"transaction_type"`
	Description             pgtype.Text        `json:"description"`
	BusinessRefID           string             `json:"business_ref_id"`
	Status                  string             `json:"status"`
	ReversalOfTransactionID pgtype.Text        `json:"reversal_of_transaction_id"`
	CreatedAt               pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error) {
	row := q.db.QueryRow(ctx, createTransaction,
		arg.ID,
		arg.TransactionType,
		arg.Description,
		arg.BusinessRefID,
		arg.Status,
		arg.ReversalOfTransactionID,
		arg.CreatedAt,
	)
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.TransactionType,
		&i.Description,
		&i.BusinessRefID,
		&i.Status,
		&i.ReversalOfTransactionID,
		&i.CreatedAt,
	)
	return i, err
}

const getTransactionByBusinessRefID = `-- name: GetTransactionByBusinessRefID :one
SELECT id, transaction_type, description, business_ref_id, status, reversal_of_transaction_id, created_at FROM transactions WHERE business_ref_id = $1
`

func (q *Queries) GetTransactionByBusinessRefID(ctx context.Context, businessRefID string) (Transaction, error) {
	row := q.db.QueryRow(ctx, getTransactionByBusinessRefID, businessRefID)
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.TransactionType,
		&i.Description,
		&i.BusinessRefID,
		&i.Status,
		&i.ReversalOfTransactionID,
		&i.CreatedAt,
	)
	return i, err
}

const getTransactionByID = `-- name: GetTransactionByID :one
SELECT id, transaction_type, description, business_ref_id, status, reversal_of_transaction_id, created_at FROM transactions WHERE id = $1
`

func (q *Queries) GetTransactionByID(ctx context.Context, id string) (Transaction, error) {
	row := q.db.QueryRow(ctx, getTransactionByID, id)
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.TransactionType,
		&i.Description,
		&i.BusinessRefID,
		&i.Status,
		&i.ReversalOfTransactionID,
		&i.CreatedAt,
	)
	return i, err
}

const updateTransactionStatus = `-- name: UpdateTransactionStatus :exec
UPDATE transactions SET status = $2 WHERE id = $1
`

type UpdateTransactionStatusParams struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (q *Queries) UpdateTransactionStatus(ctx context.Context, arg UpdateTransactionStatusParams) error {
	_, err := q.db.Exec(ctx, updateTransactionStatus, arg.ID, arg.Status)
	return err
}
