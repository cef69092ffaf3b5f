package scopelock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Config is the redis configuration.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient returns a client for cfg. The caller closes it.
func NewRedisClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// ErrLockLost means the lease expired before the holder released it.
var ErrLockLost = errors.New("scope lock expired before release")

const keyPrefix = "settleup:scope-lock:"

// Deletes the key only while it still holds our token, so an expired lease
// that someone else has since acquired is left alone.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Extends the lease only while the key still holds our token.
var renewScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
end
return 0
`)

// RedisLocker is a Locker shared by every server process that talks to the
// same redis. Each lock is a key set with NX and a TTL. The holder renews
// the lease every ttl/3 until it unlocks, so a slow append keeps the scope;
// holders that crash stop renewing and lose the lock when the TTL runs out.
type RedisLocker struct {
	client redis.Cmdable
	ttl    time.Duration
	retry  time.Duration
}

// NewRedisLocker creates a RedisLocker whose leases last ttl between renewals.
func NewRedisLocker(client redis.Cmdable, ttl time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		ttl:    ttl,
		retry:  25 * time.Millisecond,
	}
}

// Lock implements Locker.
func (r *RedisLocker) Lock(ctx context.Context, scopeID string) (func(), error) {
	key := keyPrefix + scopeID
	token := uuid.NewString()

	for {
		ok, err := r.client.SetNX(ctx, key, token, r.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock for scope %s: %w", scopeID, err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.retry):
		}
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.keepAlive(scopeID, key, token, stop)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done
			// The request context may already be done; release on our own deadline.
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := r.release(ctx, key, token); err != nil {
				slog.Warn("Failed to release scope lock", "scope_id", scopeID, "error", err)
			}
		})
	}, nil
}

// keepAlive extends the lease until stop is closed or the lease is gone.
func (r *RedisLocker) keepAlive(scopeID, key, token string, stop <-chan struct{}) {
	interval := max(r.ttl/3, time.Millisecond)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		err := r.renew(ctx, key, token)
		cancel()
		switch {
		case errors.Is(err, ErrLockLost):
			slog.Warn("Scope lock lease lost while held", "scope_id", scopeID)
			return
		case err != nil:
			// Transient; the next tick tries again before the TTL runs out.
			slog.Warn("Failed to renew scope lock", "scope_id", scopeID, "error", err)
		}
	}
}

func (r *RedisLocker) renew(ctx context.Context, key, token string) error {
	n, err := renewScript.Run(ctx, r.client, []string{key}, token, r.ttl.Milliseconds()).Int()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLockLost
	}
	return nil
}

func (r *RedisLocker) release(ctx context.Context, key, token string) error {
	n, err := releaseScript.Run(ctx, r.client, []string{key}, token).Int()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLockLost
	}
	return nil
}
