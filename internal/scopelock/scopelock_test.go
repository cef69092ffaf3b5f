package scopelock

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exercise runs workers that each do a non-atomic read-modify-write on a
// counter under the lock. Any overlap loses an update.
func exercise(t *testing.T, l Locker, scopeID string, workers int) {
	t.Helper()
	var (
		wg      sync.WaitGroup
		counter int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), scopeID)
			if !assert.NoError(t, err) {
				return
			}
			v := counter
			time.Sleep(time.Millisecond)
			counter = v + 1
			unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, workers, counter)
}

func TestKeyedMutex_Exclusive(t *testing.T) {
	k := NewKeyedMutex()
	exercise(t, k, "scope-1", 20)
	assert.Zero(t, k.size(), "entries should be dropped once released")
}

func TestKeyedMutex_ScopesAreIndependent(t *testing.T) {
	k := NewKeyedMutex()
	unlockA, err := k.Lock(context.Background(), "a")
	require.NoError(t, err)
	defer unlockA()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	unlockB, err := k.Lock(ctx, "b")
	require.NoError(t, err, "locking another scope must not wait")
	unlockB()
}

func TestKeyedMutex_ContextCancel(t *testing.T) {
	k := NewKeyedMutex()
	unlock, err := k.Lock(context.Background(), "a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = k.Lock(ctx, "a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock() // second call is a no-op
	assert.Zero(t, k.size())

	unlock, err = k.Lock(context.Background(), "a")
	require.NoError(t, err)
	unlock()
}

func TestRedisLocker(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := NewRedisClient(Config{Addr: addr})
	defer client.Close()
	require.NoError(t, client.Ping(context.Background()).Err())

	l := NewRedisLocker(client, 5*time.Second)
	exercise(t, l, "test-"+t.Name(), 10)

	unlock, err := l.Lock(context.Background(), "test-cancel")
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "test-cancel")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	unlock()
}

func TestRedisLocker_RenewsWhileHeld(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := NewRedisClient(Config{Addr: addr})
	defer client.Close()

	l := NewRedisLocker(client, 60*time.Millisecond)
	unlock, err := l.Lock(context.Background(), "test-renew")
	require.NoError(t, err)

	// Held well past one TTL, the lease must still be ours.
	time.Sleep(200 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "test-renew")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	unlock() // second call is a no-op

	again, err := l.Lock(context.Background(), "test-renew")
	require.NoError(t, err)
	again()
}

func TestRedisLocker_ForeignToken(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := NewRedisClient(Config{Addr: addr})
	defer client.Close()

	l := NewRedisLocker(client, time.Second)
	unlock, err := l.Lock(context.Background(), "test-foreign")
	require.NoError(t, err)
	defer unlock()

	key := keyPrefix + "test-foreign"
	assert.ErrorIs(t, l.renew(context.Background(), key, "stale-token"), ErrLockLost)
	assert.ErrorIs(t, l.release(context.Background(), key, "stale-token"), ErrLockLost)
}
