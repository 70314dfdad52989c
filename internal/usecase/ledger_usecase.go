package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/ledgercore/internal/domain"
)

// LedgerUseCase orchestrates the transaction lifecycle: deposit, withdraw,
// confirm-pending and reversal. Every mutating use case is one atomic unit of
// work over Transaction + JournalEntry + Balance + OutboxEvent, wrapped by a
// bounded optimistic-lock retry loop.
type LedgerUseCase struct {
	txManager       TransactionManager
	accountRepo     AccountRepository
	balanceRepo     BalanceRepository
	transactionRepo TransactionRepository
	journalRepo     JournalEntryRepository
	outbox          *OutboxRecorder
	idGen           IDGenerator
	clock           Clock
	logger          zerolog.Logger

	retryMaxAttempts     int
	retryInitialInterval time.Duration
	retryMaxInterval     time.Duration
	retryMultiplier      float64
}

// Option configures a LedgerUseCase.
type Option func(*LedgerUseCase)

// WithRetryPolicy overrides the default optimistic-lock retry bounds.
func WithRetryPolicy(maxAttempts int, initialInterval, maxInterval time.Duration, multiplier float64) Option {
	return func(uc *LedgerUseCase) {
		uc.retryMaxAttempts = maxAttempts
		uc.retryInitialInterval = initialInterval
		uc.retryMaxInterval = maxInterval
		uc.retryMultiplier = multiplier
	}
}

// NewLedgerUseCase creates a new LedgerUseCase with the default retry bounds.
func NewLedgerUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	balanceRepo BalanceRepository,
	transactionRepo TransactionRepository,
	journalRepo JournalEntryRepository,
	outbox *OutboxRecorder,
	idGen IDGenerator,
	clock Clock,
	logger zerolog.Logger,
	opts ...Option,
) *LedgerUseCase {
	uc := &LedgerUseCase{
		txManager:            txManager,
		accountRepo:          accountRepo,
		balanceRepo:          balanceRepo,
		transactionRepo:      transactionRepo,
		journalRepo:          journalRepo,
		outbox:               outbox,
		idGen:                idGen,
		clock:                clock,
		logger:               logger,
		retryMaxAttempts:     DefaultRetryMaxAttempts,
		retryInitialInterval: DefaultRetryInitialInterval,
		retryMaxInterval:     DefaultRetryMaxInterval,
		retryMultiplier:      DefaultRetryMultiplier,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// DepositInput represents input for a deposit posting.
type DepositInput struct {
	AccountID     string
	Amount        decimal.Decimal
	Description   string
	BusinessRefID string
}

// WithdrawInput represents input for a withdrawal posting.
type WithdrawInput struct {
	AccountID     string
	Amount        decimal.Decimal
	Description   string
	BusinessRefID string
}

// Deposit posts a credit to an account. Retried callers are safe: a known
// business reference returns the already-posted transaction with no side
// effects.
func (uc *LedgerUseCase) Deposit(ctx context.Context, input DepositInput) (*domain.Transaction, error) {
	if err := validatePosting(input.Amount, input.BusinessRefID); err != nil {
		return nil, err
	}

	var result *domain.Transaction

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.deposit(ctx, input)
		result = tx
		return err
	})

	return result, err
}

func (uc *LedgerUseCase) deposit(ctx context.Context, input DepositInput) (*domain.Transaction, error) {
	if existing, err := uc.findDuplicate(ctx, input.BusinessRefID); err != nil {
		return nil, err
	} else if existing != nil {
		uc.logger.Warn().
			Str("business_ref_id", input.BusinessRefID).
			Msg("duplicate transaction detected")
		return existing, nil
	}

	account, err := uc.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	balance, err := uc.balanceRepo.GetByAccountID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	transaction := domain.NewDeposit(uc.idGen.Generate(), input.Description, input.BusinessRefID, now)

	entry, err := transaction.JournalEntryFor(uc.idGen.Generate(), account.ID, input.Amount, now)
	if err != nil {
		return nil, err
	}

	newBalance, err := balance.Deposit(input.Amount, transaction.ID, now)
	if err != nil {
		return nil, err
	}

	return uc.post(ctx, transaction, entry, newBalance, domain.LedgerPostedEvent{
		TransactionID:   transaction.ID,
		AccountID:       account.ID,
		Amount:          input.Amount,
		TransactionType: domain.TransactionTypeDeposit,
		OccurredAt:      now,
	})
}

// Withdraw posts a debit to an account after an available-funds check that
// runs before any write.
func (uc *LedgerUseCase) Withdraw(ctx context.Context, input WithdrawInput) (*domain.Transaction, error) {
	if err := validatePosting(input.Amount, input.BusinessRefID); err != nil {
		return nil, err
	}

	var result *domain.Transaction

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.withdraw(ctx, input)
		result = tx
		return err
	})

	return result, err
}

func (uc *LedgerUseCase) withdraw(ctx context.Context, input WithdrawInput) (*domain.Transaction, error) {
	if existing, err := uc.findDuplicate(ctx, input.BusinessRefID); err != nil {
		return nil, err
	} else if existing != nil {
		uc.logger.Warn().
			Str("business_ref_id", input.BusinessRefID).
			Msg("duplicate transaction detected")
		return existing, nil
	}

	account, err := uc.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	balance, err := uc.balanceRepo.GetByAccountID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if input.Amount.GreaterThan(balance.AvailableAmount()) {
		return nil, &domain.InsufficientBalanceError{
			AccountID: account.ID,
			Requested: input.Amount,
			Available: balance.AvailableAmount(),
		}
	}

	now := uc.clock.Now()

	transaction := domain.NewWithdrawal(uc.idGen.Generate(), input.Description, input.BusinessRefID, now)

	entry, err := transaction.JournalEntryFor(uc.idGen.Generate(), account.ID, input.Amount, now)
	if err != nil {
		return nil, err
	}

	newBalance, err := balance.Withdraw(input.Amount, transaction.ID, now)
	if err != nil {
		return nil, err
	}

	return uc.post(ctx, transaction, entry, newBalance, domain.LedgerPostedEvent{
		TransactionID:   transaction.ID,
		AccountID:       account.ID,
		Amount:          input.Amount,
		TransactionType: domain.TransactionTypeWithdrawal,
		OccurredAt:      now,
	})
}

// post commits the transaction, its journal entry, the new balance and the
// posted event in one unit of work.
func (uc *LedgerUseCase) post(
	ctx context.Context,
	transaction *domain.Transaction,
	entry *domain.JournalEntry,
	newBalance *domain.Balance,
	event domain.LedgerPostedEvent,
) (*domain.Transaction, error) {
	dbTx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer dbTx.Rollback(ctx)

	if err := uc.transactionRepo.Create(ctx, dbTx, transaction); err != nil {
		if errors.Is(err, domain.ErrDuplicateBusinessRef) {
			// A concurrent identical request won the insert race.
			return uc.lookupWinner(ctx, transaction.BusinessRefID)
		}
		return nil, err
	}

	if err := uc.journalRepo.Create(ctx, dbTx, entry); err != nil {
		return nil, err
	}

	if err := uc.balanceRepo.Update(ctx, dbTx, newBalance); err != nil {
		return nil, err
	}

	if err := uc.outbox.Record(ctx, dbTx, event); err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, err
	}

	return transaction, nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *LedgerUseCase) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return uc.transactionRepo.GetByID(ctx, id)
}

// GetBalance retrieves the balance of an account.
func (uc *LedgerUseCase) GetBalance(ctx context.Context, accountID string) (*domain.Balance, error) {
	return uc.balanceRepo.GetByAccountID(ctx, accountID)
}

// findDuplicate is the idempotency guard: a hit means the request was already
// fully processed and the use case returns without further reads or writes.
func (uc *LedgerUseCase) findDuplicate(ctx context.Context, businessRefID string) (*domain.Transaction, error) {
	existing, err := uc.transactionRepo.GetByBusinessRefID(ctx, businessRefID)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return existing, nil
}

func (uc *LedgerUseCase) lookupWinner(ctx context.Context, businessRefID string) (*domain.Transaction, error) {
	winner, err := uc.transactionRepo.GetByBusinessRefID(ctx, businessRefID)
	if err != nil {
		return nil, err
	}

	uc.logger.Warn().
		Str("business_ref_id", businessRefID).
		Msg("concurrent duplicate request, returning first writer's transaction")

	return winner, nil
}

func validatePosting(amount decimal.Decimal, businessRefID string) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if strings.TrimSpace(businessRefID) == "" {
		return domain.ErrBusinessRefRequired
	}
	return nil
}
