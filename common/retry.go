package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agglayer/aggkit-prover/config/types"
)

var (
	ErrNonRetryable = errors.New("non-retryable error")
)

const (
	operationFailedTemplate = "operation failed after %d attempt(s): %w"
)

// RetryWithExponentialBackoff retries the given function up to maxRetries with exponential backoff.
// Use `context.Canceled` or `context.DeadlineExceeded` to cancel early.
// Wrap return with `fmt.Errorf("%w: your error", ErrNonRetryable)` to avoid retries.
func RetryWithExponentialBackoff(ctx context.Context, maxRetries uint,
	initialDelay time.Duration, callback func() error) error {
	if callback == nil {
		return errors.New("retry callback cannot be nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	delay := initialDelay
	var lastErr error

	for attempt := uint(0); attempt < maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("retry cancelled after %d attempt(s): %w", attempt, ctx.Err())
		default:
		}

		err := callback()
		if err == nil {
			return nil
		}
		lastErr = err

		if errors.Is(err, ErrNonRetryable) {
			return fmt.Errorf("non-retryable error after %d attempt(s): %w", attempt+1, err)
		}

		if attempt < maxRetries-1 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("retry cancelled after %d attempt(s): %w", attempt+1, ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2
		}
	}

	return fmt.Errorf(operationFailedTemplate, maxRetries, lastErr)
}

// RetryConfig configures the retries done by a client before giving up
type RetryConfig struct {
	// MaxRetries is the number of attempts, the first call included
	MaxRetries uint `mapstructure:"MaxRetries"`
	// InitialBackoff is the delay before the second attempt, doubled on every retry
	InitialBackoff types.Duration `mapstructure:"InitialBackoff"`
}

// Retry runs callback with the configured backoff.
func (c RetryConfig) Retry(ctx context.Context, callback func() error) error {
	maxRetries := c.MaxRetries
	if maxRetries == 0 {
		maxRetries = 1
	}
	return RetryWithExponentialBackoff(ctx, maxRetries, c.InitialBackoff.Duration, callback)
}
