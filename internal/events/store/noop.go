package store

import (
	"context"

	"github.com/serroba/plugin-registry-go/internal/events"
	"go.uber.org/zap"
)

// Noop is a no-op implementation of events.Store that logs events.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a new no-op event store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveRecordCreated(_ context.Context, event *events.RecordCreatedEvent) error {
	n.logger.Info("record created event received",
		zap.String("recordId", event.RecordID),
		zap.Int("pluginCount", event.PluginCount),
		zap.Time("createdAt", event.CreatedAt),
	)

	return nil
}

func (n *Noop) SaveRecordsExpired(_ context.Context, event *events.RecordsExpiredEvent) error {
	n.logger.Info("records expired event received",
		zap.Int64("removed", event.Removed),
		zap.Time("cutoff", event.Cutoff),
		zap.Time("ranAt", event.RanAt),
	)

	return nil
}
