package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// Not-found errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrBalanceNotFound     = errors.New("balance not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// Validation errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrBusinessRefRequired = errors.New("business reference id is required")

	// ErrConcurrencyConflict is reported by the persistence layer when a
	// versioned balance write finds the stored version has advanced.
	ErrConcurrencyConflict = errors.New("balance version conflict")

	// ErrDuplicateBusinessRef is reported when a transaction insert hits the
	// unique index on business_ref_id.
	ErrDuplicateBusinessRef = errors.New("duplicate business reference id")
)

// InsufficientBalanceError is returned when a withdrawal exceeds the
// available amount (amount minus holds) of a balance.
type InsufficientBalanceError struct {
	AccountID string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance on account %s: requested %s, available %s",
		e.AccountID, e.Requested, e.Available)
}

// InvalidTransactionStateError is returned on an illegal lifecycle transition.
type InvalidTransactionStateError struct {
	Reason string
}

func (e *InvalidTransactionStateError) Error() string {
	return e.Reason
}

// DataIntegrityError marks a corrupted-ledger condition, distinct from bad
// input. A POSTED transaction without journal entries is the canonical case.
type DataIntegrityError struct {
	Detail string
}

func (e *DataIntegrityError) Error() string {
	return "ledger integrity violation: " + e.Detail
}
