package notifier

import (
	"context"
	"sync"
)

// BusyStore tracks which controls have a notification in flight. Keys are
// per client and per control, so one button never blocks another.
type BusyStore interface {
	// Acquire marks key busy on behalf of token. It reports false when key
	// is already held.
	Acquire(ctx context.Context, key, token string) (bool, error)
	// Release frees key only while token still holds it, so a holder whose
	// slot expired cannot clear a newer one.
	Release(ctx context.Context, key, token string) error
	IsBusy(ctx context.Context, key string) (bool, error)
}

// BusyObserver is told about every busy/idle transition.
type BusyObserver interface {
	BusyChanged(clientID, control string, busy bool)
}

// BusyKey joins a client id and control id into a BusyStore key.
func BusyKey(clientID, control string) string {
	if clientID == "" {
		clientID = "anonymous"
	}
	return clientID + "|" + control
}

// MemoryBusyStore is a process-local BusyStore.
type MemoryBusyStore struct {
	mu      sync.Mutex
	holders map[string]string
}

func NewMemoryBusyStore() *MemoryBusyStore {
	return &MemoryBusyStore{holders: make(map[string]string)}
}

func (m *MemoryBusyStore) Acquire(_ context.Context, key, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, held := m.holders[key]; held {
		return false, nil
	}
	m.holders[key] = token
	return true, nil
}

func (m *MemoryBusyStore) Release(_ context.Context, key, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.holders[key] == token {
		delete(m.holders, key)
	}
	return nil
}

func (m *MemoryBusyStore) IsBusy(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, held := m.holders[key]
	return held, nil
}
