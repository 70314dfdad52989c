package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReversalBusinessRefPrefix prefixes the synthesized business reference of a
// reversal transaction.
const ReversalBusinessRefPrefix = "reversal-"

// TransactionType classifies the economic event behind a transaction.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypeReversal   TransactionType = "REVERSAL"

	// Reserved for order settlement flows handled by other services.
	TransactionTypeOrderBlocked  TransactionType = "ORDER_BLOCKED"
	TransactionTypeOrderReleased TransactionType = "ORDER_RELEASED"
	TransactionTypeTrade         TransactionType = "TRADE"
	TransactionTypeFee           TransactionType = "FEE"
	TransactionTypeInterest      TransactionType = "INTEREST"
	TransactionTypeCorrection    TransactionType = "CORRECTION"
)

// ApplyTo applies the type-appropriate balance mutation: DEPOSIT credits,
// WITHDRAWAL debits. Other types settle through their own flows.
func (t TransactionType) ApplyTo(balance *Balance, amount decimal.Decimal, transactionID string, now time.Time) (*Balance, error) {
	switch t {
	case TransactionTypeDeposit:
		return balance.Deposit(amount, transactionID, now)
	case TransactionTypeWithdrawal:
		return balance.Withdraw(amount, transactionID, now)
	default:
		return nil, fmt.Errorf("transaction type %s cannot apply to balance via this flow", t)
	}
}

// TransactionStatus is the lifecycle state of a transaction.
//
// PENDING  - created but not yet confirmed
// POSTED   - confirmed and reflected in balances
// UNKNOWN  - a downstream acknowledgment was lost; outcome ambiguous
// REVERSED - voided by a compensating transaction; terminal
type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusPosted   TransactionStatus = "POSTED"
	TransactionStatusUnknown  TransactionStatus = "UNKNOWN"
	TransactionStatusReversed TransactionStatus = "REVERSED"
)

// CanTransitionTo reports whether the transition is legal.
// PENDING→POSTED, PENDING→UNKNOWN, UNKNOWN→POSTED, POSTED→REVERSED.
func (s TransactionStatus) CanTransitionTo(target TransactionStatus) bool {
	switch s {
	case TransactionStatusPending:
		return target == TransactionStatusPosted || target == TransactionStatusUnknown
	case TransactionStatusUnknown:
		return target == TransactionStatusPosted
	case TransactionStatusPosted:
		return target == TransactionStatusReversed
	default:
		return false
	}
}

// IsConfirmed reports whether the transaction is reflected in balances.
func (s TransactionStatus) IsConfirmed() bool {
	return s == TransactionStatusPosted
}

// Transaction records one economic event. It is an immutable value: every
// transition method returns a new Transaction.
type Transaction struct {
	ID                      string
	Type                    TransactionType
	Description             string
	BusinessRefID           string
	Status                  TransactionStatus
	ReversalOfTransactionID string
	CreatedAt               time.Time
}

// NewDeposit creates a POSTED deposit transaction.
func NewDeposit(id, description, businessRefID string, now time.Time) *Transaction {
	return &Transaction{
		ID:            id,
		Type:          TransactionTypeDeposit,
		Description:   description,
		BusinessRefID: businessRefID,
		Status:        TransactionStatusPosted,
		CreatedAt:     now,
	}
}

// NewWithdrawal creates a POSTED withdrawal transaction.
func NewWithdrawal(id, description, businessRefID string, now time.Time) *Transaction {
	return &Transaction{
		ID:            id,
		Type:          TransactionTypeWithdrawal,
		Description:   description,
		BusinessRefID: businessRefID,
		Status:        TransactionStatusPosted,
		CreatedAt:     now,
	}
}

// NewReversal creates the compensating transaction for originalID. Its
// business reference is synthesized so a reversal is itself idempotent.
func NewReversal(id, originalID, reason string, now time.Time) *Transaction {
	return &Transaction{
		ID:                      id,
		Type:                    TransactionTypeReversal,
		Description:             reason,
		BusinessRefID:           ReversalBusinessRefPrefix + originalID,
		Status:                  TransactionStatusPosted,
		ReversalOfTransactionID: originalID,
		CreatedAt:               now,
	}
}

// Validate checks structural invariants, used when restoring rows.
func (t *Transaction) Validate() error {
	if t.Type == "" || t.Status == "" {
		return &InvalidTransactionStateError{Reason: "transaction type and status are required"}
	}
	if t.Status == TransactionStatusReversed && t.ReversalOfTransactionID != "" {
		return &InvalidTransactionStateError{
			Reason: "a REVERSED transaction cannot be a reversal of another transaction",
		}
	}
	if t.ReversalOfTransactionID != "" && t.Status != TransactionStatusPosted {
		return &InvalidTransactionStateError{Reason: "reversal transaction must be in POSTED state"}
	}
	return nil
}

// Confirm transitions PENDING to POSTED.
func (t *Transaction) Confirm() (*Transaction, error) {
	if t.Status != TransactionStatusPending {
		return nil, &InvalidTransactionStateError{
			Reason: fmt.Sprintf("Only PENDING transactions can be confirmed. Current status: %s", t.Status),
		}
	}
	return t.withStatus(TransactionStatusPosted), nil
}

// MarkAsUnknown transitions PENDING to UNKNOWN, used when a downstream
// acknowledgment is lost or ambiguous.
func (t *Transaction) MarkAsUnknown() (*Transaction, error) {
	if t.Status != TransactionStatusPending {
		return nil, &InvalidTransactionStateError{
			Reason: fmt.Sprintf("Only PENDING transactions can be marked as UNKNOWN. Current status: %s", t.Status),
		}
	}
	return t.withStatus(TransactionStatusUnknown), nil
}

// ResolveUnknown transitions UNKNOWN to the target status. UNKNOWN→REVERSED
// is illegal: the financial effect of an UNKNOWN transaction is unconfirmed,
// so it must be resolved to POSTED before it can be reversed.
func (t *Transaction) ResolveUnknown(target TransactionStatus) (*Transaction, error) {
	if t.Status != TransactionStatusUnknown {
		return nil, &InvalidTransactionStateError{
			Reason: fmt.Sprintf("Only UNKNOWN transactions can be resolved. Current status: %s", t.Status),
		}
	}
	if !t.Status.CanTransitionTo(target) {
		return nil, &InvalidTransactionStateError{
			Reason: fmt.Sprintf("Cannot transition from UNKNOWN to %s", target),
		}
	}
	return t.withStatus(target), nil
}

// ToReversed transitions POSTED to REVERSED.
func (t *Transaction) ToReversed() (*Transaction, error) {
	if err := t.ValidateCanBeReversed(); err != nil {
		return nil, err
	}
	return t.withStatus(TransactionStatusReversed), nil
}

// ValidateCanBeReversed rejects reversal of anything but a POSTED
// transaction, with a distinct reason per state.
func (t *Transaction) ValidateCanBeReversed() error {
	switch t.Status {
	case TransactionStatusReversed:
		return &InvalidTransactionStateError{
			Reason: fmt.Sprintf("Transaction is already reversed: %s", t.ID),
		}
	case TransactionStatusPending:
		return &InvalidTransactionStateError{
			Reason: fmt.Sprintf("Cannot reverse a PENDING transaction: %s", t.ID),
		}
	case TransactionStatusUnknown:
		return &InvalidTransactionStateError{
			Reason: fmt.Sprintf("Cannot reverse an UNKNOWN transaction. Resolve it first: %s", t.ID),
		}
	}
	return nil
}

// JournalEntryFor creates the single journal entry leg for this transaction:
// CREDIT for a deposit, DEBIT for a withdrawal.
func (t *Transaction) JournalEntryFor(entryID, accountID string, amount decimal.Decimal, now time.Time) (*JournalEntry, error) {
	switch t.Type {
	case TransactionTypeDeposit:
		return NewCreditEntry(entryID, t.ID, accountID, amount, now)
	case TransactionTypeWithdrawal:
		return NewDebitEntry(entryID, t.ID, accountID, amount, now)
	default:
		return nil, fmt.Errorf("transaction type %s cannot create journal entry via this flow", t.Type)
	}
}

func (t *Transaction) withStatus(status TransactionStatus) *Transaction {
	return &Transaction{
		ID:                      t.ID,
		Type:                    t.Type,
		Description:             t.Description,
		BusinessRefID:           t.BusinessRefID,
		Status:                  status,
		ReversalOfTransactionID: t.ReversalOfTransactionID,
		CreatedAt:               t.CreatedAt,
	}
}
