package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/serroba/plugin-registry-go/internal/registry"
)

// MemoryStore is an in-memory implementation of registry.Repository.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]*registry.PluginRecord
}

// NewMemoryStore creates a new in-memory record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*registry.PluginRecord),
	}
}

func (m *MemoryStore) Create(_ context.Context, plugins registry.PluginMap) (string, error) {
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.records[id]; exists {
		return "", &registry.StorageError{Op: "create", Err: errors.New("id collision")}
	}

	m.records[id] = &registry.PluginRecord{
		ID:        id,
		Plugins:   plugins,
		CreatedAt: time.Now().UTC(),
	}

	return id, nil
}

func (m *MemoryStore) GetByID(_ context.Context, id string) (*registry.PluginRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[id]
	if !ok {
		return nil, registry.ErrNotFound
	}

	return record, nil
}

func (m *MemoryStore) FindOlderThan(_ context.Context, cutoff time.Time) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ids []string

	for id, record := range m.records {
		if !record.CreatedAt.After(cutoff) {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (m *MemoryStore) DeleteMany(_ context.Context, ids []string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64

	for _, id := range ids {
		if _, ok := m.records[id]; ok {
			delete(m.records, id)
			removed++
		}
	}

	return removed, nil
}

// SetCreatedAt backdates a record's timestamp. Test helper for exercising
// age-based expiry without waiting out the retention window.
func (m *MemoryStore) SetCreatedAt(id string, createdAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record, ok := m.records[id]; ok {
		record.CreatedAt = createdAt
	}
}

// Compile-time check.
var _ registry.Repository = (*MemoryStore)(nil)
