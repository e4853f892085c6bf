// Package expiry removes records that have aged past the retention window.
// The task is scheduler-agnostic: Run performs a single pass and can be
// driven by the built-in ticker loop, a cron daemon, or a test harness.
package expiry

import (
	"context"
	"time"

	"github.com/serroba/plugin-registry-go/internal/events"
	"github.com/serroba/plugin-registry-go/internal/messaging"
	"github.com/serroba/plugin-registry-go/internal/registry"
	"go.uber.org/zap"
)

// Result reports what a single expiry pass did.
type Result string

const (
	// ResultSuccess means at least one record was removed.
	ResultSuccess Result = "Success"
	// ResultNoData means nothing had aged past the retention window.
	ResultNoData Result = "No data to remove"
)

const (
	// DefaultRetention is how long records are kept before eviction.
	DefaultRetention = 7 * 24 * time.Hour
	// DefaultInterval is how often the ticker loop runs a pass.
	DefaultInterval = 5 * time.Minute
	// DefaultRunTimeout bounds a single pass so a stuck store cannot wedge
	// the loop.
	DefaultRunTimeout = time.Minute
)

// Task is the recurring purge job over the record store.
type Task struct {
	records        registry.Repository
	retention      time.Duration
	runTimeout     time.Duration
	publishExpired messaging.Publish[events.RecordsExpiredEvent]
	logger         *zap.Logger
}

// Option configures a Task.
type Option func(*Task)

// WithRetention overrides the retention window.
func WithRetention(d time.Duration) Option {
	return func(t *Task) { t.retention = d }
}

// WithRunTimeout overrides the per-run soft deadline.
func WithRunTimeout(d time.Duration) Option {
	return func(t *Task) { t.runTimeout = d }
}

// NewTask creates a new expiry task.
func NewTask(
	records registry.Repository,
	publishExpired messaging.Publish[events.RecordsExpiredEvent],
	logger *zap.Logger,
	opts ...Option,
) *Task {
	t := &Task{
		records:        records,
		retention:      DefaultRetention,
		runTimeout:     DefaultRunTimeout,
		publishExpired: publishExpired,
		logger:         logger,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Run performs one expiry pass. Records with createdAt at or before
// now-retention are removed in bulk. Running twice with no intervening
// writes is a no-op the second time.
func (t *Task) Run(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, t.runTimeout)
	defer cancel()

	cutoff := time.Now().UTC().Add(-t.retention)

	ids, err := t.records.FindOlderThan(ctx, cutoff)
	if err != nil {
		return "", err
	}

	if len(ids) == 0 {
		t.logger.Info("no data to remove")

		return ResultNoData, nil
	}

	removed, err := t.records.DeleteMany(ctx, ids)
	if err != nil {
		return "", err
	}

	t.logger.Info("removed old data",
		zap.Int64("removed", removed),
		zap.Time("cutoff", cutoff),
	)

	event := &events.RecordsExpiredEvent{
		Removed: removed,
		Cutoff:  cutoff,
		RanAt:   time.Now().UTC(),
	}

	if err := t.publishExpired(event); err != nil {
		t.logger.Error("failed to publish records expired event", zap.Error(err))
	}

	return ResultSuccess, nil
}

// Start runs the task on a fixed interval until the context is canceled.
// A failed pass is logged and the loop keeps going; it never takes the host
// process down with it.
func (t *Task) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	t.logger.Info("expiry task started",
		zap.Duration("interval", interval),
		zap.Duration("retention", t.retention),
	)

	for {
		select {
		case <-ticker.C:
			if _, err := t.Run(ctx); err != nil {
				t.logger.Error("expiry run failed", zap.Error(err))
			}
		case <-ctx.Done():
			t.logger.Info("expiry task stopped")

			return
		}
	}
}
