package generated

import (
	"context"
)

const getAccountByID = `-- name: GetAccountByID :one
SELECT id, user_id, account_number, currency, account_type, created_at FROM accounts WHERE id = $1
`

func (q *Queries) GetAccountByID(ctx context.Context, id string) (Account, error) {
	row := q.db.QueryRow(ctx, getAccountByID, id)
	var i Account
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.AccountNumber,
		&i.Currency,
		&i.AccountType,
		&i.CreatedAt,
	)
	return i, err
}
