package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lipagate/lipagate/internal/shared/id"
	"github.com/lipagate/lipagate/internal/shared/logger"
)

// sweepLockKeyPrefix namespaces sweep locks in Redis
const sweepLockKeyPrefix = "lock:"

// SweepLock is a Redis-based advisory lock that keeps overlapping sweep runs
// from processing the same subscriptions twice across instances.
type SweepLock struct {
	client *redis.Client
	logger logger.Interface
}

// NewSweepLock creates a new SweepLock instance
func NewSweepLock(client *redis.Client, logger logger.Interface) *SweepLock {
	return &SweepLock{client: client, logger: logger}
}

// TryLock atomically acquires the named lock using SetNX. When ok is false
// another holder owns the lock. The returned release func deletes the lock
// only if this caller still owns it, so a slow sweep that outlives its TTL
// cannot release a successor's lock.
func (l *SweepLock) TryLock(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	fullKey := sweepLockKeyPrefix + key
	token := id.MustGenerate(16)

	acquired, err := l.client.SetNX(ctx, fullKey, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to acquire lock %s: %w", key, err)
	}
	if !acquired {
		return nil, false, nil
	}

	release := func() {
		// Delete only when the stored token is still ours.
		const script = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`
		if err := l.client.Eval(context.Background(), script, []string{fullKey}, token).Err(); err != nil {
			l.logger.Warnw("failed to release sweep lock", "key", key, "error", err)
		}
	}
	return release, true, nil
}
