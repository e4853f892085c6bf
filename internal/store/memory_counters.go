package store

import (
	"context"
	"sync"

	"github.com/serroba/plugin-registry-go/internal/registry"
)

// MemoryCounterStore is an in-memory implementation of registry.CounterStore.
// A single mutex serializes all increments, matching the per-key
// serialization the Redis store gets for free.
type MemoryCounterStore struct {
	mu       sync.Mutex
	counters registry.Counters
}

// NewMemoryCounterStore creates a new in-memory counter store.
func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{}
}

func (m *MemoryCounterStore) Counts(_ context.Context) (registry.Counters, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.counters, nil
}

func (m *MemoryCounterStore) IncrementExport(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters.ExportCount++

	return nil
}

func (m *MemoryCounterStore) IncrementPlugins(_ context.Context, n int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters.PluginCount += n

	return nil
}

// Compile-time check.
var _ registry.CounterStore = (*MemoryCounterStore)(nil)
