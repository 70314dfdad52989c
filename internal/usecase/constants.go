package usecase

import "time"

const (
	// Optimistic-lock retry bounds: 3 attempts total with delays of
	// 100ms, 200ms, 400ms between them, capped at 1s.
	DefaultRetryMaxAttempts     = 3
	DefaultRetryInitialInterval = 100 * time.Millisecond
	DefaultRetryMaxInterval     = 1 * time.Second
	DefaultRetryMultiplier      = 2.0
)
