package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps snapshots in process memory. Used by tests and by the
// standalone run mode where no durable backend is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

func (m *MemoryStore) Read(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, found := m.values[key]
	return value, found, nil
}

func (m *MemoryStore) Write(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}
