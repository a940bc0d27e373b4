package settings

import (
	"context"
	"sync"
)

// Verify interface compliance at compile time
var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps settings for the lifetime of the process.
type MemoryStore struct {
	mu       sync.RWMutex
	settings Settings
}

// NewMemoryStore returns a store holding Defaults.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{settings: Defaults()}
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context) (Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings, nil
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
	return nil
}
