package retry

import (
	"context"
	"time"

	mcpdemo "github.com/terrychangit/mcp-demo"
)

// Do executes fn with retry logic. Non-transient errors fail immediately;
// transient errors are retried up to cfg.MaxAttempts with exponential
// backoff. A server-suggested retry delay (for example from a Retry-After
// header) takes precedence over the computed backoff. Context cancellation
// is respected during backoff waits.
func Do[T any](ctx context.Context, cfg Config, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !IsTransient(err) {
			return zero, err
		}

		// No sleep after the last attempt
		if attempt < cfg.MaxAttempts-1 {
			delay := cfg.Delay(attempt)
			if suggested := mcpdemo.RetryAfterOf(err); suggested > 0 {
				delay = suggested
			}

			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return zero, lastErr
}
