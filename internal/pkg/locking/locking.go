// Package locking provides exclusive, time-bounded locks keyed by string.
//
// Two implementations satisfy the same contract: a Redis-backed manager for
// multi-instance deployments and an in-process manager for single-instance
// runs and deterministic tests. Acquisition waits up to the caller's bound
// and fails with a retryable conflict error when it elapses.
package locking

import (
	"context"
	"time"
)

// Handle identifies an acquired lock; required for release
type Handle struct {
	Key   string
	Token string
}

// Manager is the lock service contract
type Manager interface {
	// Acquire obtains the lock for key, waiting at most wait.
	// Returns apperrors.ErrConcurrencyConflict (wrapped) on timeout.
	Acquire(ctx context.Context, key string, wait time.Duration) (Handle, error)

	// Release frees the lock. Releasing a handle whose lock already
	// expired or was taken over is a no-op.
	Release(ctx context.Context, h Handle) error
}
