package memory

import (
	"context"
	"sync"

	"github.com/baharkarakas/expense-tracker/internal/repository"
)

// KVStore keeps entries in process memory. Nothing survives a restart.
type KVStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewKVStore() *KVStore {
	return &KVStore{entries: make(map[string]string)}
}

func (m *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok, nil
}

func (m *KVStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *KVStore) SetMany(_ context.Context, entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range entries {
		m.entries[k] = v
	}
	return nil
}

func (m *KVStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]string)
	return nil
}

// Len is used by tests to check the store was wiped.
func (m *KVStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

var _ repository.KV = (*KVStore)(nil)
