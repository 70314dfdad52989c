package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Account struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	AccountNumber string             `json:"account_number"`
	Currency      string             `json:"currency"`
	AccountType   string             `json:"account_type"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

type Balance struct {
	AccountID         string             `json:"account_id"`
	Amount            pgtype.Numeric     `json:"amount"`
	HoldAmount        pgtype.Numeric     `json:"hold_amount"`
	Version           int64              `json:"version"`
	LastTransactionID pgtype.Text        `json:"last_transaction_id"`
	UpdatedAt         pgtype.Timestamptz `json:"updated_at"`
}

type JournalEntry struct {
	ID            string             `json:"id"`
	TransactionID string             `json:"transaction_id"`
	AccountID     string             `json:"account_id"`
	Amount        pgtype.Numeric     `json:"amount"`
	EntryType     string             `json:"entry_type"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
}

type OutboxEvent struct {
	ID            string             `json:"id"`
	AggregateType string             `json:"aggregate_type"`
	AggregateID   string             `json:"aggregate_id"`
	EventType     string             `json:"event_type"`
	Payload       []byte             `json:"payload"`
	Status        string             `json:"status"`
	RetryCount    int32              `json:"retry_count"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	ProcessedAt   pgtype.Timestamptz `json:"processed_at"`
}

type Transaction struct {
	ID                      string             `json:"id"`
	TransactionType         string             `json:"transaction_type"`
	Description             pgtype.Text        `json:"description"`
	BusinessRefID           string             `json:"business_ref_id"`
	Status                  string             `json:"status"`
	ReversalOfTransactionID pgtype.Text        `json:"reversal_of_transaction_id"`
	CreatedAt               pgtype.Timestamptz `json:"created_at"`
}
