package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgercore/internal/domain"
)

// TransactionResponse represents a ledger transaction in API responses.
type TransactionResponse struct {
	ID                      string    `json:"id"`
	Type                    string    `json:"type"`
	Description             string    `json:"description,omitempty"`
	BusinessRefID           string    `json:"business_ref_id"`
	Status                  string    `json:"status"`
	ReversalOfTransactionID string    `json:"reversal_of_transaction_id,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:                      t.ID,
		Type:                    string(t.Type),
		Description:             t.Description,
		BusinessRefID:           t.BusinessRefID,
		Status:                  string(t.Status),
		ReversalOfTransactionID: t.ReversalOfTransactionID,
		CreatedAt:               t.CreatedAt,
	}
}

// BalanceResponse represents an account balance in API responses.
type BalanceResponse struct {
	AccountID         string          `json:"account_id"`
	Amount            decimal.Decimal `json:"amount"`
	HoldAmount        decimal.Decimal `json:"hold_amount"`
	AvailableAmount   decimal.Decimal `json:"available_amount"`
	Version           int64           `json:"version"`
	LastTransactionID string          `json:"last_transaction_id,omitempty"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// BalanceFromDomain converts a domain balance to a response.
func BalanceFromDomain(b *domain.Balance) *BalanceResponse {
	return &BalanceResponse{
		AccountID:         b.AccountID,
		Amount:            b.Amount,
		HoldAmount:        b.HoldAmount,
		AvailableAmount:   b.AvailableAmount(),
		Version:           b.Version,
		LastTransactionID: b.LastTransactionID,
		UpdatedAt:         b.UpdatedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
