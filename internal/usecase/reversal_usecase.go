package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iho/ledgercore/internal/domain"
)

// ReverseInput represents input for reversing a POSTED transaction.
type ReverseInput struct {
	OriginalTransactionID string
	Reason                string
}

// Reverse voids a POSTED transaction by posting a compensating REVERSAL
// transaction with the opposite journal entries, restoring every touched
// balance. History is never deleted.
func (uc *LedgerUseCase) Reverse(ctx context.Context, input ReverseInput) (*domain.Transaction, error) {
	if strings.TrimSpace(input.Reason) == "" {
		return nil, fmt.Errorf("reversal reason is required")
	}

	var result *domain.Transaction

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.reverse(ctx, input)
		result = tx
		return err
	})

	return result, err
}

func (uc *LedgerUseCase) reverse(ctx context.Context, input ReverseInput) (*domain.Transaction, error) {
	original, err := uc.transactionRepo.GetByID(ctx, input.OriginalTransactionID)
	if err != nil {
		return nil, err
	}

	if err := original.ValidateCanBeReversed(); err != nil {
		return nil, err
	}

	originalEntries, err := uc.journalRepo.GetByTransactionID(ctx, original.ID)
	if err != nil {
		return nil, err
	}

	// A POSTED transaction without entries is corruption, not bad input.
	if len(originalEntries) == 0 {
		return nil, &domain.DataIntegrityError{
			Detail: fmt.Sprintf("no journal entries found for transaction %s", original.ID),
		}
	}

	// Batch-load every touched balance in one query.
	accountIDs := distinctAccountIDs(originalEntries)

	balanceMap, err := uc.balanceRepo.GetByAccountIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	reversedOriginal, err := original.ToReversed()
	if err != nil {
		return nil, err
	}

	reversal := domain.NewReversal(uc.idGen.Generate(), original.ID, input.Reason, now)

	oppositeEntries := make([]*domain.JournalEntry, 0, len(originalEntries))
	for _, entry := range originalEntries {
		opposite, err := entry.Opposite(uc.idGen.Generate(), reversal.ID, now)
		if err != nil {
			return nil, err
		}
		oppositeEntries = append(oppositeEntries, opposite)
	}

	// Thread updated balances forward so multiple entries against the same
	// account accumulate before the single write per account.
	for _, entry := range originalEntries {
		balance, ok := balanceMap[entry.AccountID]
		if !ok {
			return nil, domain.ErrBalanceNotFound
		}

		restored, err := entry.ApplyReverseTo(balance, reversal.ID, now)
		if err != nil {
			return nil, err
		}

		balanceMap[entry.AccountID] = restored
	}

	restoredBalances := make([]*domain.Balance, 0, len(accountIDs))
	for _, accountID := range accountIDs {
		restoredBalances = append(restoredBalances, balanceMap[accountID])
	}

	dbTx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx)

	if err := uc.transactionRepo.UpdateStatus(ctx, dbTx, reversedOriginal); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Create(ctx, dbTx, reversal); err != nil {
		if errors.Is(err, domain.ErrDuplicateBusinessRef) {
			// A concurrent reversal of the same transaction won the race.
			return uc.lookupWinner(ctx, reversal.BusinessRefID)
		}
		return nil, err
	}

	if err := uc.journalRepo.CreateAll(ctx, dbTx, oppositeEntries); err != nil {
		return nil, err
	}

	if err := uc.balanceRepo.UpdateAll(ctx, dbTx, restoredBalances); err != nil {
		return nil, err
	}

	err = uc.outbox.Record(ctx, dbTx, domain.LedgerReversedEvent{
		ReversalTransactionID: reversal.ID,
		OriginalTransactionID: original.ID,
		Reason:                input.Reason,
		OccurredAt:            now,
	})
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, err
	}

	return reversal, nil
}

func distinctAccountIDs(entries []*domain.JournalEntry) []string {
	seen := make(map[string]bool)

	var ids []string
	for _, e := range entries {
		if !seen[e.AccountID] {
			seen[e.AccountID] = true
			ids = append(ids, e.AccountID)
		}
	}

	return ids
}
