// Package scopelock serializes ledger appends per scope. Reads never lock;
// they work on immutable ledger snapshots.
package scopelock

import (
	"context"
	"sync"
)

// Locker hands out exclusive per-scope locks. Locks on different scopes never
// block each other.
type Locker interface {
	// Lock blocks until the scope is free or ctx is done. The returned
	// function releases the lock and must be called exactly once.
	Lock(ctx context.Context, scopeID string) (unlock func(), err error)
}

// KeyedMutex is an in-process Locker. Entries are reference counted and
// dropped once nobody holds or waits for them.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sem  chan struct{}
	refs int
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyLock)}
}

// Lock implements Locker.
func (k *KeyedMutex) Lock(ctx context.Context, scopeID string) (func(), error) {
	k.mu.Lock()
	l, ok := k.locks[scopeID]
	if !ok {
		l = &keyLock{sem: make(chan struct{}, 1)}
		k.locks[scopeID] = l
	}
	l.refs++
	k.mu.Unlock()

	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		k.release(scopeID, l)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.sem
			k.release(scopeID, l)
		})
	}, nil
}

func (k *KeyedMutex) release(scopeID string, l *keyLock) {
	k.mu.Lock()
	defer k.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(k.locks, scopeID)
	}
}

// size is the number of scopes currently tracked.
func (k *KeyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
