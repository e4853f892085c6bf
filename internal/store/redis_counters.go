package store

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/plugin-registry-go/internal/registry"
)

// RedisCounterStore keeps the cumulative counters as plain Redis integers.
// INCR/INCRBY give the per-key atomicity the counter contract requires, so
// no read-modify-write happens on this side of the connection.
type RedisCounterStore struct {
	client    *redis.Client
	exportKey string
	pluginKey string
}

// NewRedisCounterStore creates a new Redis-backed counter store.
func NewRedisCounterStore(client *redis.Client) *RedisCounterStore {
	return &RedisCounterStore{
		client:    client,
		exportKey: "counters:export",
		pluginKey: "counters:plugins",
	}
}

func (r *RedisCounterStore) Counts(ctx context.Context) (registry.Counters, error) {
	values, err := r.client.MGet(ctx, r.exportKey, r.pluginKey).Result()
	if err != nil {
		return registry.Counters{}, &registry.StorageError{Op: "counts", Err: err}
	}

	return registry.Counters{
		ExportCount: parseCounter(values[0]),
		PluginCount: parseCounter(values[1]),
	}, nil
}

func (r *RedisCounterStore) IncrementExport(ctx context.Context) error {
	if err := r.client.Incr(ctx, r.exportKey).Err(); err != nil {
		return &registry.StorageError{Op: "increment export", Err: err}
	}

	return nil
}

func (r *RedisCounterStore) IncrementPlugins(ctx context.Context, n int64) error {
	if err := r.client.IncrBy(ctx, r.pluginKey, n).Err(); err != nil {
		return &registry.StorageError{Op: "increment plugins", Err: err}
	}

	return nil
}

// parseCounter treats a missing or unparsable value as zero; the counters
// are lazily initialized on first increment.
func parseCounter(value any) int64 {
	s, ok := value.(string)
	if !ok {
		return 0
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// Compile-time check.
var _ registry.CounterStore = (*RedisCounterStore)(nil)
