package usecase

import "time"

// SystemClock is the production Clock backed by the wall clock.
type SystemClock struct{}

// Now returns the current UTC instant.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
