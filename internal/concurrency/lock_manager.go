package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Mutexes are never released, so
// keys should come from a bounded set such as owner GUIDs.
type LockManager[K comparable] struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager[K comparable]() *LockManager[K] {
	return &LockManager[K]{}
}

// GetLock returns the mutex for key
func (lm *LockManager[K]) GetLock(key K) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Forget drops the mutex of key. Callers must not hold it.
func (lm *LockManager[K]) Forget(key K) {
	lm.locks.Delete(key)
}
