package fusion

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Generator produces text from a prompt. Failures worth retrying, such as
// network errors, timeouts, rate limits and server errors, satisfy
// errors.Is(err, ErrTransient).
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

var (
	// ErrTransient marks a generation failure that may succeed on retry.
	ErrTransient = errors.New("transient generation failure")

	// ErrEmptyGeneration is returned when the service answers with no text.
	ErrEmptyGeneration = errors.New("generation returned no text")
)

// StaticGenerator always returns Text, or PlaceholderPoem when Text is empty.
type StaticGenerator struct {
	Text string
}

// Generate returns the canned poem.
func (g StaticGenerator) Generate(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if g.Text == "" {
		return PlaceholderPoem, nil
	}
	return g.Text, nil
}

// classifyError wraps err with ErrTransient when a provider error looks
// retryable. Cancellation by the caller is never transient.
func classifyError(provider string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", provider, err)
	}
	if isTransient(err) {
		return fmt.Errorf("%s: %w: %w", provider, ErrTransient, err)
	}
	return fmt.Errorf("%s: %w", provider, err)
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return isRateLimitError(err) || isServerError(err)
}

func isRateLimitError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "too many requests") ||
		strings.Contains(errStr, "resource_exhausted")
}

func isServerError(err error) bool {
	errStr := strings.ToLower(err.Error())
	for _, marker := range []string{"500", "502", "503", "504", "internal server error", "server_error", "unavailable", "timeout", "connection reset"} {
		if strings.Contains(errStr, marker) {
			return true
		}
	}
	return false
}
