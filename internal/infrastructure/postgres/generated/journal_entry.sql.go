package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createJournalEntry = `-- name: CreateJournalEntry :one
INSERT INTO journal_entries (id, transaction_id, account_id, amount, entry_type, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, transaction_id, account_id, amount, entry_type, created_at
`

type CreateJournalEntryParams struct {
	ID            string             `json:"id"`
	TransactionID string             `json:"transaction_id"`
	AccountID     string             `json:"account_id"`
	Amount        pgtype.Numeric     `json:"amount"`
	EntryType     string             `json:"entry_type"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateJournalEntry(ctx context.Context, arg CreateJournalEntryParams) (JournalEntry, error) {
	row := q.db.QueryRow(ctx, createJournalEntry,
		arg.ID,
		arg.TransactionID,
		arg.AccountID,
		arg.Amount,
		arg.EntryType,
		arg.CreatedAt,
	)
	var i JournalEntry
	err := row.Scan(
		&i.ID,
		&i.TransactionID,
		&i.AccountID,
		&i.Amount,
		&i.EntryType,
		&i.CreatedAt,
	)
	return i, err
}

const getJournalEntriesByTransactionID = `-- name: GetJournalEntriesByTransactionID :many
SELECT id, transaction_id, account_id, amount, entry_type, created_at FROM journal_entries WHERE transaction_id = $1 ORDER BY created_at, id
`

func (q *Queries) GetJournalEntriesByTransactionID(ctx context.Context, transactionID string) ([]JournalEntry, error) {
	rows, err := q.db.Query(ctx, getJournalEntriesByTransactionID, transactionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []JournalEntry{}
	for rows.Next() {
		var i JournalEntry
		if err := rows.Scan(
			&i.ID,
			&i.TransactionID,
			&i.AccountID,
			&i.Amount,
			&i.EntryType,
			&i.CreatedAt,
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
