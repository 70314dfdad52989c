package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgercore/internal/domain"
)

// ConfirmInput represents input for confirming a PENDING transaction.
type ConfirmInput struct {
	TransactionID string
	AccountID     string
	Amount        decimal.Decimal
}

// ConfirmTransaction confirms a transaction created in PENDING state by an
// external flow, posting its journal entry and balance effect.
//
// There is deliberately no idempotency check and no outbox record here:
// confirmation is invoked at most once per transaction by the caller's own
// protocol.
func (uc *LedgerUseCase) ConfirmTransaction(ctx context.Context, input ConfirmInput) (*domain.Transaction, error) {
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	var result *domain.Transaction

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.confirm(ctx, input)
		result = tx
		return err
	})

	return result, err
}

func (uc *LedgerUseCase) confirm(ctx context.Context, input ConfirmInput) (*domain.Transaction, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	confirmed, err := transaction.Confirm()
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	entry, err := confirmed.JournalEntryFor(uc.idGen.Generate(), input.AccountID, input.Amount, now)
	if err != nil {
		return nil, err
	}

	balance, err := uc.balanceRepo.GetByAccountID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	newBalance, err := confirmed.Type.ApplyTo(balance, input.Amount, confirmed.ID, now)
	if err != nil {
		return nil, err
	}

	dbTx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx)

	if err := uc.transactionRepo.UpdateStatus(ctx, dbTx, confirmed); err != nil {
		return nil, err
	}

	if err := uc.journalRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, err
	}

	if err := uc.balanceRepo.Update(ctx, dbTx, newBalance); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, err
	}

	return confirmed, nil
}

// MarkUnknown flags a PENDING transaction whose downstream acknowledgment was
// lost. The transaction must later be resolved before it can move on.
func (uc *LedgerUseCase) MarkUnknown(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	unknown, err := transaction.MarkAsUnknown()
	if err != nil {
		return nil, err
	}

	return uc.updateStatus(ctx, unknown)
}

// ResolveUnknown resolves an UNKNOWN transaction. Only UNKNOWN→POSTED is
// legal; an UNKNOWN transaction cannot be reversed before it is confirmed.
func (uc *LedgerUseCase) ResolveUnknown(ctx context.Context, transactionID string, target domain.TransactionStatus) (*domain.Transaction, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	resolved, err := transaction.ResolveUnknown(target)
	if err != nil {
		return nil, err
	}

	return uc.updateStatus(ctx, resolved)
}

func (uc *LedgerUseCase) updateStatus(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	dbTx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx)

	if err := uc.transactionRepo.UpdateStatus(ctx, dbTx, transaction); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, err
	}

	return transaction, nil
}
