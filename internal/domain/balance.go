package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Balance is the current position of an account. It is an immutable value:
// Deposit and Withdraw return a new Balance and never mutate the receiver.
// Version is the optimistic-concurrency counter; the persistence layer bumps
// it on every committed write and rejects writes against a stale version.
type Balance struct {
	AccountID         string
	Amount            decimal.Decimal
	HoldAmount        decimal.Decimal
	Version           int64
	LastTransactionID string
	UpdatedAt         time.Time
}

// AvailableAmount is the spendable figure: amount minus funds on hold.
func (b *Balance) AvailableAmount() decimal.Decimal {
	return b.Amount.Sub(b.HoldAmount)
}

// Deposit returns a new Balance with the amount credited.
func (b *Balance) Deposit(amount decimal.Decimal, transactionID string, now time.Time) (*Balance, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	return &Balance{
		AccountID:         b.AccountID,
		Amount:            b.Amount.Add(amount),
		HoldAmount:        b.HoldAmount,
		Version:           b.Version,
		LastTransactionID: transactionID,
		UpdatedAt:         now,
	}, nil
}

// Withdraw returns a new Balance with the amount debited. It fails when the
// amount exceeds the available amount, before any state is touched.
func (b *Balance) Withdraw(amount decimal.Decimal, transactionID string, now time.Time) (*Balance, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	available := b.AvailableAmount()
	if amount.GreaterThan(available) {
		return nil, &InsufficientBalanceError{
			AccountID: b.AccountID,
			Requested: amount,
			Available: available,
		}
	}

	return &Balance{
		AccountID:         b.AccountID,
		Amount:            b.Amount.Sub(amount),
		HoldAmount:        b.HoldAmount,
		Version:           b.Version,
		LastTransactionID: transactionID,
		UpdatedAt:         now,
	}, nil
}
