package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError marks an error as transient. The UniProt API
// occasionally answers 5xx or times out under load; the client wraps
// those failures so [Retry] backs off and tries again, while 4xx
// responses (bad accession, not found) surface immediately.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry executes fn up to attempts times with exponential backoff,
// starting at delay and doubling after each failed attempt. Only errors
// wrapped in [RetryableError] are retried; anything else is returned
// immediately. Returns the last error if all attempts fail, or ctx.Err()
// when cancelled mid-backoff.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// RetryWithBackoff runs fn with the defaults used for sequence and
// variation fetches: 3 attempts, 1 second initial delay.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
