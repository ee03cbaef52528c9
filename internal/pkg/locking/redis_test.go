package locking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycab/ridepool/internal/pkg/apperrors"
	"github.com/skycab/ridepool/internal/pkg/database"
)

func setupRedisManager(t *testing.T) (*miniredis.Miniredis, *RedisManager) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return mr, NewRedisManager(client)
}

func TestRedisManager_AcquireRelease(t *testing.T) {
	_, m := setupRedisManager(t)
	ctx := context.Background()

	h, err := m.Acquire(ctx, "lock:pool:a", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "lock:pool:a", h.Key)
	assert.NotEmpty(t, h.Token)

	require.NoError(t, m.Release(ctx, h))

	// released lock is immediately acquirable again
	_, err = m.Acquire(ctx, "lock:pool:a", time.Second)
	assert.NoError(t, err)
}

func TestRedisManager_HeldLockTimesOut(t *testing.T) {
	_, m := setupRedisManager(t)
	ctx := context.Background()

	_, err := m.Acquire(ctx, "lock:pool:b", time.Second)
	require.NoError(t, err)

	_, err = m.Acquire(ctx, "lock:pool:b", 120*time.Millisecond)
	assert.ErrorIs(t, err, apperrors.ErrConcurrencyConflict)
	assert.True(t, apperrors.IsRetryable(err))
}

func TestRedisManager_StaleHolderCannotRelease(t *testing.T) {
	mr, m := setupRedisManager(t)
	ctx := context.Background()

	stale, err := m.Acquire(ctx, "lock:cab:c", time.Second)
	require.NoError(t, err)

	// the TTL expires and another holder takes over
	mr.FastForward(lockTTL + time.Second)
	fresh, err := m.Acquire(ctx, "lock:cab:c", time.Second)
	require.NoError(t, err)

	// the expired handle's release must not free the new holder's lock
	require.NoError(t, m.Release(ctx, stale))
	got, err := mr.Get("lock:cab:c")
	require.NoError(t, err)
	assert.Equal(t, fresh.Token, got)
}
