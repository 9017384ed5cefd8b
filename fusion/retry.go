package fusion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// RetryPolicy controls how transient generation failures are retried.
type RetryPolicy struct {
	Attempts int           // Total tries, including the first
	Initial  time.Duration // Wait before the second try; doubles after each failure
	Max      time.Duration // Upper bound for a single wait
}

// DefaultRetryPolicy retries twice with waits of 2s and 4s.
var DefaultRetryPolicy = RetryPolicy{Attempts: 3, Initial: 2 * time.Second, Max: 30 * time.Second}

func generateWithRetry(ctx context.Context, gen Generator, prompt string, policy RetryPolicy, logger *zap.Logger) (string, error) {
	attempts := policy.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		text, err := gen.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !errors.Is(err, ErrTransient) || attempt == attempts-1 {
			break
		}

		wait := expBackoff(attempt, policy.Initial, policy.Max)
		logger.Warn("transient generation failure, retrying",
			zap.Int("attempt", attempt+1),
			zap.Duration("wait", wait),
			zap.Error(err))
		if !sleepWithContext(ctx, wait) {
			return "", ctx.Err()
		}
	}

	if errors.Is(lastErr, ErrTransient) && attempts > 1 {
		return "", fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
	}
	return "", lastErr
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func expBackoff(attempt int, initial, max time.Duration) time.Duration {
	if attempt <= 0 {
		return initial
	}
	d := initial << attempt
	if d <= 0 {
		return max
	}
	if max > 0 && d > max {
		return max
	}
	return d
}
