package locking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skycab/ridepool/internal/pkg/apperrors"
	"github.com/skycab/ridepool/internal/pkg/database"
)

// lockTTL bounds how long a crashed holder can keep a lock alive.
const lockTTL = 30 * time.Second

// pollInterval is the retry cadence while waiting for a held lock.
const pollInterval = 50 * time.Millisecond

// releaseScript deletes the key only when it still carries our token,
// so an expired-and-reacquired lock is never released by a stale holder.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
else
	return 0
end`

// RedisManager implements Manager on a shared Redis instance
type RedisManager struct {
	redisClient *database.RedisClient
}

// NewRedisManager creates a Redis-backed lock manager
func NewRedisManager(redisClient *database.RedisClient) *RedisManager {
	return &RedisManager{redisClient: redisClient}
}

// Acquire obtains the lock via SET NX, polling until the wait bound elapses
func (m *RedisManager) Acquire(ctx context.Context, key string, wait time.Duration) (Handle, error) {
	token := uuid.New().String()
	deadline := time.Now().Add(wait)

	for {
		ok, err := m.redisClient.SetNX(ctx, key, token, lockTTL)
		if err != nil {
			return Handle{}, err
		}
		if ok {
			return Handle{Key: key, Token: token}, nil
		}

		if time.Now().After(deadline) {
			return Handle{}, apperrors.Conflictf("could not acquire lock %s within %s", key, wait)
		}

		select {
		case <-ctx.Done():
			return Handle{}, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// Release frees the lock if it is still held by this handle
func (m *RedisManager) Release(ctx context.Context, h Handle) error {
	_, err := m.redisClient.Eval(ctx, releaseScript, []string{h.Key}, h.Token)
	return err
}
