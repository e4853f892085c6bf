package events

import "context"

// Store defines the interface for persisting telemetry events.
type Store interface {
	SaveRecordCreated(ctx context.Context, event *RecordCreatedEvent) error
	SaveRecordsExpired(ctx context.Context, event *RecordsExpiredEvent) error
}
