package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewEntry_RejectsNonPositiveAmount(t *testing.T) {
	now := time.Now().UTC()

	if _, err := NewCreditEntry("e-1", "tx-1", "acc-1", decimal.Zero, now); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := NewDebitEntry("e-1", "tx-1", "acc-1", decimal.NewFromInt(-1), now); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestJournalEntry_Opposite(t *testing.T) {
	now := time.Now().UTC()
	amount := decimal.NewFromInt(250)

	credit, err := NewCreditEntry("e-1", "tx-1", "acc-1", amount, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opposite, err := credit.Opposite("e-2", "tx-rev", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if opposite.EntryType != EntryTypeDebit {
		t.Errorf("opposite of CREDIT: expected DEBIT, got %s", opposite.EntryType)
	}
	if opposite.TransactionID != "tx-rev" {
		t.Errorf("expected reversal transaction id tx-rev, got %s", opposite.TransactionID)
	}
	if opposite.AccountID != credit.AccountID || !opposite.Amount.Equal(credit.Amount) {
		t.Error("opposite entry must keep account and amount")
	}

	back, err := opposite.Opposite("e-3", "tx-rev2", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back.EntryType != EntryTypeCredit {
		t.Errorf("opposite of DEBIT: expected CREDIT, got %s", back.EntryType)
	}
}

func TestJournalEntry_ApplyReverseTo(t *testing.T) {
	now := time.Now().UTC()
	balance := &Balance{AccountID: "acc-1", Amount: decimal.NewFromInt(1000), HoldAmount: decimal.Zero}

	credit, _ := NewCreditEntry("e-1", "tx-1", "acc-1", decimal.NewFromInt(300), now)
	undone, err := credit.ApplyReverseTo(balance, "tx-rev", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !undone.Amount.Equal(decimal.NewFromInt(700)) {
		t.Errorf("reversing a credit should withdraw: expected 700, got %s", undone.Amount)
	}

	debit, _ := NewDebitEntry("e-2", "tx-2", "acc-1", decimal.NewFromInt(300), now)
	undone, err = debit.ApplyReverseTo(balance, "tx-rev", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !undone.Amount.Equal(decimal.NewFromInt(1300)) {
		t.Errorf("reversing a debit should deposit: expected 1300, got %s", undone.Amount)
	}
}
