package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lipagate/lipagate/internal/shared/logger"
)

func newTestLock(t *testing.T) (*SweepLock, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSweepLock(client, logger.NewLogger()), mr
}

func TestSweepLock_AcquireAndRelease(t *testing.T) {
	lock, mr := newTestLock(t)
	ctx := context.Background()

	release, ok, err := lock.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists("lock:sweep"))

	release()
	assert.False(t, mr.Exists("lock:sweep"))
}

func TestSweepLock_HeldLockIsNotReacquired(t *testing.T) {
	lock, _ := newTestLock(t)
	ctx := context.Background()

	release, ok, err := lock.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	defer release()

	_, ok, err = lock.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSweepLock_ExpiredLockCanBeRetaken(t *testing.T) {
	lock, mr := newTestLock(t)
	ctx := context.Background()

	_, ok, err := lock.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)

	_, ok, err = lock.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSweepLock_StaleReleaseKeepsSuccessorLock(t *testing.T) {
	lock, mr := newTestLock(t)
	ctx := context.Background()

	staleRelease, ok, err := lock.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// First holder's TTL runs out, a second sweep takes the lock.
	mr.FastForward(2 * time.Minute)
	_, ok, err = lock.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// The stale release must not delete the successor's lock.
	staleRelease()
	assert.True(t, mr.Exists("lock:sweep"))
}

func TestSweepLock_DistinctKeysDoNotContend(t *testing.T) {
	lock, _ := newTestLock(t)
	ctx := context.Background()

	_, ok, err := lock.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = lock.TryLock(ctx, "trials", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}
