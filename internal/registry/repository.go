package registry

import (
	"context"
	"time"
)

// Repository defines the storage operations for plugin records.
type Repository interface {
	// Create persists a new record and returns its generated id. The id is
	// generated before the write so a retried write stays idempotent; an id
	// collision is an error, never a silent overwrite.
	Create(ctx context.Context, plugins PluginMap) (string, error)

	// GetByID returns the record with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*PluginRecord, error)

	// FindOlderThan returns the ids of all records with createdAt at or
	// before the cutoff. No ordering is guaranteed.
	FindOlderThan(ctx context.Context, cutoff time.Time) ([]string, error)

	// DeleteMany removes the given records and returns how many existed.
	// Deleting an already-deleted id is not an error.
	DeleteMany(ctx context.Context, ids []string) (int64, error)
}

// Counters holds the cumulative registry totals. They only ever grow;
// record expiry does not decrement them.
type Counters struct {
	ExportCount int64 `json:"exportCount"`
	PluginCount int64 `json:"pluginCount"`
}

// CounterStore maintains the cumulative counters. Increments must be atomic
// under concurrent callers; the implementations delegate to the storage
// layer's own atomicity rather than in-process locks where possible.
type CounterStore interface {
	// Counts reads both counters. A missing key reads as zero.
	Counts(ctx context.Context) (Counters, error)

	// IncrementExport atomically adds 1 to the export counter.
	IncrementExport(ctx context.Context) error

	// IncrementPlugins atomically adds n to the plugin counter.
	IncrementPlugins(ctx context.Context, n int64) error
}
