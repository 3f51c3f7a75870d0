package database

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"

	"keybuddy/internal/shared/errors"
	appLogger "keybuddy/internal/shared/logger"
)

const (
	writeMaxRetries   = 4 // 5 attempts total
	writeInitialDelay = 100 * time.Millisecond
	writeJitter       = 50 * time.Millisecond
)

// WithWriteRetry runs fn, retrying with exponential backoff when the
// database reports a transient lock. Non-lock errors fail immediately.
func WithWriteRetry(ctx context.Context, fn func() error) error {
	backoff := retry.NewExponential(writeInitialDelay)
	backoff = retry.WithJitter(writeJitter, backoff)
	backoff = retry.WithMaxRetries(writeMaxRetries, backoff)

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn()
		if err == nil {
			return nil
		}
		if errors.IsBusyError(err) {
			attempt++
			appLogger.Warn("database busy, retrying write",
				"attempt", attempt,
				"error", err.Error())
			return retry.RetryableError(err)
		}
		return err
	})
}
