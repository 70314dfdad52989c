package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the side of a journal entry.
type EntryType string

const (
	EntryTypeDebit  EntryType = "DEBIT"
	EntryTypeCredit EntryType = "CREDIT"
)

// JournalEntry is one leg of a transaction against one account. Amounts are
// always positive; the side is carried by EntryType. A transaction's entries
// must balance: sum of debits equals sum of credits across accounts.
type JournalEntry struct {
	ID            string
	TransactionID string
	AccountID     string
	Amount        decimal.Decimal
	EntryType     EntryType
	CreatedAt     time.Time
}

// NewCreditEntry creates a CREDIT journal entry.
func NewCreditEntry(id, transactionID, accountID string, amount decimal.Decimal, now time.Time) (*JournalEntry, error) {
	return newEntry(id, transactionID, accountID, amount, EntryTypeCredit, now)
}

// NewDebitEntry creates a DEBIT journal entry.
func NewDebitEntry(id, transactionID, accountID string, amount decimal.Decimal, now time.Time) (*JournalEntry, error) {
	return newEntry(id, transactionID, accountID, amount, EntryTypeDebit, now)
}

func newEntry(id, transactionID, accountID string, amount decimal.Decimal, entryType EntryType, now time.Time) (*JournalEntry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	return &JournalEntry{
		ID:            id,
		TransactionID: transactionID,
		AccountID:     accountID,
		Amount:        amount,
		EntryType:     entryType,
		CreatedAt:     now,
	}, nil
}

// Opposite creates the balancing entry of the other side against the same
// account and amount, under the reversal transaction.
func (e *JournalEntry) Opposite(id, reversalTransactionID string, now time.Time) (*JournalEntry, error) {
	switch e.EntryType {
	case EntryTypeCredit:
		return NewDebitEntry(id, reversalTransactionID, e.AccountID, e.Amount, now)
	default:
		return NewCreditEntry(id, reversalTransactionID, e.AccountID, e.Amount, now)
	}
}

// ApplyReverseTo undoes this entry's effect on a balance: an original CREDIT
// is undone by a withdraw, an original DEBIT by a deposit.
func (e *JournalEntry) ApplyReverseTo(balance *Balance, transactionID string, now time.Time) (*Balance, error) {
	switch e.EntryType {
	case EntryTypeCredit:
		return balance.Withdraw(e.Amount, transactionID, now)
	default:
		return balance.Deposit(e.Amount, transactionID, now)
	}
}
