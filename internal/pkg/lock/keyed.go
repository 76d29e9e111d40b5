package lock

import (
	"sync"

	"github.com/google/uuid"
)

// KeyedMutex serializes critical sections per key. Holders of different keys
// never contend. Mutexes are created on first use and kept for the process
// lifetime; car cardinality is small enough that no eviction is needed.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (k *KeyedMutex) Lock(key uuid.UUID) {
	k.get(key).Lock()
}

func (k *KeyedMutex) Unlock(key uuid.UUID) {
	k.get(key).Unlock()
}

func (k *KeyedMutex) get(key uuid.UUID) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
