package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgercore/internal/domain"
	"github.com/iho/ledgercore/internal/usecase"
)

func seedPending(f *ledgerFixture, id string, txType domain.TransactionType) {
	f.transactions.Put(&domain.Transaction{
		ID:            id,
		Type:          txType,
		BusinessRefID: "ref-" + id,
		Status:        domain.TransactionStatusPending,
	})
}

func TestLedgerUseCase_ConfirmTransaction(t *testing.T) {
	f := newLedgerFixture()
	f.seedAccount("acc-1", 0)
	seedPending(f, "tx-pend", domain.TransactionTypeDeposit)

	confirmed, err := f.uc.ConfirmTransaction(context.Background(), usecase.ConfirmInput{
		TransactionID: "tx-pend",
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(250),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmed.Status != domain.TransactionStatusPosted {
		t.Errorf("expected POSTED, got %s", confirmed.Status)
	}

	balance, err := f.uc.GetBalance(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Amount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected balance 250, got %s", balance.Amount)
	}

	entries, err := f.journal.GetByTransactionID(context.Background(), "tx-pend")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].EntryType != domain.EntryTypeCredit {
		t.Errorf("expected a single CREDIT entry, got %+v", entries)
	}

	// Confirmation carries no outbox event.
	if events := f.outbox.Events(); len(events) != 0 {
		t.Errorf("expected no outbox events, got %d", len(events))
	}
}

func TestLedgerUseCase_ConfirmTransaction_WithdrawalDebits(t *testing.T) {
	f := newLedgerFixture()
	f.seedAccount("acc-1", 400)
	seedPending(f, "tx-pend-wd", domain.TransactionTypeWithdrawal)

	_, err := f.uc.ConfirmTransaction(context.Background(), usecase.ConfirmInput{
		TransactionID: "tx-pend-wd",
		AccountID:     "acc-1",
		Amount:        decimal.NewFromInt(150),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	balance, err := f.uc.GetBalance(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !balance.Amount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected balance 250, got %s", balance.Amount)
	}
}

func TestLedgerUseCase_ConfirmTransaction_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		status domain.TransactionStatus
	}{
		{name: "already posted", status: domain.TransactionStatusPosted},
		{name: "reversed", status: domain.TransactionStatusReversed},
		{name: "unknown", status: domain.TransactionStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newLedgerFixture()
			f.seedAccount("acc-1", 0)
			f.transactions.Put(&domain.Transaction{
				ID:            "tx-1",
				Type:          domain.TransactionTypeDeposit,
				BusinessRefID: "ref-1",
				Status:        tt.status,
			})

			_, err := f.uc.ConfirmTransaction(context.Background(), usecase.ConfirmInput{
				TransactionID: "tx-1",
				AccountID:     "acc-1",
				Amount:        decimal.NewFromInt(100),
			})

			var stateErr *domain.InvalidTransactionStateError
			if !errors.As(err, &stateErr) {
				t.Fatalf("expected InvalidTransactionStateError, got %v", err)
			}
		})
	}
}

func TestLedgerUseCase_ConfirmTransaction_InvalidAmount(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.uc.ConfirmTransaction(context.Background(), usecase.ConfirmInput{
		TransactionID: "tx-1",
		AccountID:     "acc-1",
		Amount:        decimal.Zero,
	})
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestLedgerUseCase_MarkUnknown(t *testing.T) {
	f := newLedgerFixture()
	seedPending(f, "tx-pend", domain.TransactionTypeDeposit)

	unknown, err := f.uc.MarkUnknown(context.Background(), "tx-pend")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unknown.Status != domain.TransactionStatusUnknown {
		t.Errorf("expected UNKNOWN, got %s", unknown.Status)
	}

	reloaded, err := f.uc.GetTransaction(context.Background(), "tx-pend")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded.Status != domain.TransactionStatusUnknown {
		t.Errorf("expected stored status UNKNOWN, got %s", reloaded.Status)
	}
}

func TestLedgerUseCase_ResolveUnknown(t *testing.T) {
	f := newLedgerFixture()
	f.transactions.Put(&domain.Transaction{
		ID:            "tx-unk",
		Type:          domain.TransactionTypeDeposit,
		BusinessRefID: "ref-unk",
		Status:        domain.TransactionStatusUnknown,
	})

	resolved, err := f.uc.ResolveUnknown(context.Background(), "tx-unk", domain.TransactionStatusPosted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Status != domain.TransactionStatusPosted {
		t.Errorf("expected POSTED, got %s", resolved.Status)
	}
}

func TestLedgerUseCase_ResolveUnknown_RejectsReversed(t *testing.T) {
	f := newLedgerFixture()
	f.transactions.Put(&domain.Transaction{
		ID:            "tx-unk",
		Type:          domain.TransactionTypeDeposit,
		BusinessRefID: "ref-unk",
		Status:        domain.TransactionStatusUnknown,
	})

	_, err := f.uc.ResolveUnknown(context.Background(), "tx-unk", domain.TransactionStatusReversed)

	var stateErr *domain.InvalidTransactionStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected InvalidTransactionStateError, got %v", err)
	}
}
