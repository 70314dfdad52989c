package usecase

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"

	"github.com/iho/ledgercore/internal/domain"
)

// withRetry runs op, retrying it from the beginning on
// domain.ErrConcurrencyConflict with exponential backoff. Any other error is
// permanent, and the conflict itself is surfaced once attempts are exhausted.
func (uc *LedgerUseCase) withRetry(ctx context.Context, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = uc.retryInitialInterval
	b.MaxInterval = uc.retryMaxInterval
	b.Multiplier = uc.retryMultiplier
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0

	attempts := 0

	return backoff.Retry(func() error {
		attempts++

		err := op()
		if err == nil {
			return nil
		}

		if !errors.Is(err, domain.ErrConcurrencyConflict) {
			return backoff.Permanent(err)
		}

		if attempts >= uc.retryMaxAttempts {
			return backoff.Permanent(err)
		}

		uc.logger.Warn().
			Int("attempt", attempts).
			Msg("balance version conflict, retrying use case")

		return err
	}, backoff.WithContext(b, ctx))
}
