package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/ledgercore/internal/usecase"
)

// DepositRequest represents a request to post a deposit.
type DepositRequest struct {
	AccountID     string          `json:"account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	BusinessRefID string          `json:"business_ref_id"`
}

// ToUseCaseInput converts to use case input.
func (r *DepositRequest) ToUseCaseInput() usecase.DepositInput {
	return usecase.DepositInput{
		AccountID:     r.AccountID,
		Amount:        r.Amount,
		Description:   r.Description,
		BusinessRefID: r.BusinessRefID,
	}
}

// WithdrawRequest represents a request to post a withdrawal.
type WithdrawRequest struct {
	AccountID     string          `json:"account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	BusinessRefID string          `json:"business_ref_id"`
}

// ToUseCaseInput converts to use case input.
func (r *WithdrawRequest) ToUseCaseInput() usecase.WithdrawInput {
	return usecase.WithdrawInput{
		AccountID:     r.AccountID,
		Amount:        r.Amount,
		Description:   r.Description,
		BusinessRefID: r.BusinessRefID,
	}
}

// ConfirmTransactionRequest represents a request to confirm a PENDING
// transaction. The transaction ID comes from the URL.
type ConfirmTransactionRequest struct {
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// ToUseCaseInput converts to use case input.
func (r *ConfirmTransactionRequest) ToUseCaseInput(transactionID string) usecase.ConfirmInput {
	return usecase.ConfirmInput{
		TransactionID: transactionID,
		AccountID:     r.AccountID,
		Amount:        r.Amount,
	}
}

// ReverseTransactionRequest represents a request to reverse a POSTED
// transaction. The transaction ID comes from the URL.
type ReverseTransactionRequest struct {
	Reason string `json:"reason"`
}

// ToUseCaseInput converts to use case input.
func (r *ReverseTransactionRequest) ToUseCaseInput(transactionID string) usecase.ReverseInput {
	return usecase.ReverseInput{
		OriginalTransactionID: transactionID,
		Reason:                r.Reason,
	}
}
