// internal/api/retry.go
package api

import (
	"context"
	"time"
)

// RetryPolicy bounds how often an operation may be re-attempted after a
// network-level failure. Delays grow linearly: the first retry waits
// BaseDelay, the second 2*BaseDelay, and so on.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// Delay returns the wait before retry number retry (zero-based).
func (p RetryPolicy) Delay(retry int) time.Duration {
	return time.Duration(retry+1) * p.BaseDelay
}

// Sleep waits for the retry's delay or until ctx is done.
func (p RetryPolicy) Sleep(ctx context.Context, retry int) error {
	timer := time.NewTimer(p.Delay(retry))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
