package locking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/apperrors"
)

// LocalManager implements Manager with in-process mutexes.
// Suitable for single-instance deployments and tests.
type LocalManager struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

// NewLocalManager creates an in-process lock manager
func NewLocalManager() *LocalManager {
	return &LocalManager{locks: make(map[string]chan struct{})}
}

func (m *LocalManager) slot(key string) chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch, ok := m.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		m.locks[key] = ch
	}
	return ch
}

// Acquire obtains the lock for key, waiting at most wait
func (m *LocalManager) Acquire(ctx context.Context, key string, wait time.Duration) (Handle, error) {
	ch := m.slot(key)

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
		return Handle{Key: key, Token: uuid.New().String()}, nil
	case <-timer.C:
		return Handle{}, apperrors.Conflictf("could not acquire lock %s within %s", key, wait)
	case <-ctx.Done():
		return Handle{}, ctx.Err()
	}
}

// Release frees the lock
func (m *LocalManager) Release(_ context.Context, h Handle) error {
	ch := m.slot(h.Key)
	select {
	case <-ch:
	default:
	}
	return nil
}
