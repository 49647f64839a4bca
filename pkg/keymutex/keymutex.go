// Package keymutex provides per-key mutual exclusion. The ledger uses it to
// serialize every check-then-write against a single customer account.
package keymutex

import "sync"

type KeyMutex struct {
	mu sync.Mutex
	locks map[int64]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func New() *KeyMutex {
	return &KeyMutex{locks: make(map[int64]*entry)}
}

// Lock blocks until the mutex for key is held by the caller.
func (k *KeyMutex) Lock(key int64) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the mutex for key. The entry is dropped once no goroutine
// waits on it, so the map does not grow with the customer base.
func (k *KeyMutex) Unlock(key int64) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("keymutex: unlock of unheld key")
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
