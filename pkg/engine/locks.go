package engine

import (
	"sync"
)

// intentLocks serializes mutations to a single intent's record. Distinct
// intent ids may be mutated in parallel. Locks are never removed; intents
// are never deleted either.
type intentLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newIntentLocks() *intentLocks {
	return &intentLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// get returns the lock for an intent id, creating it on first use
func (l *intentLocks) get(id string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, exists := l.locks[id]
	if !exists {
		lock = &sync.Mutex{}
		l.locks[id] = lock
	}
	return lock
}
