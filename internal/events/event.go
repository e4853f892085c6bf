// Package events defines the telemetry events the registry emits and the
// store they are persisted to. Events ride on the messaging package; losing
// one never fails the request that produced it.
package events

import "time"

const (
	// TopicRecordCreated carries one event per successful upload.
	TopicRecordCreated = "record.created"
	// TopicRecordsExpired carries one event per expiry run that removed data.
	TopicRecordsExpired = "records.expired"
)

// RecordCreatedEvent is emitted after a submission has been persisted and
// the counters incremented.
type RecordCreatedEvent struct {
	RecordID    string    `json:"recordId"`
	PluginCount int       `json:"pluginCount"`
	CreatedAt   time.Time `json:"createdAt"`
	ClientIP    string    `json:"clientIp"`
	UserAgent   string    `json:"userAgent"`
}

// RecordsExpiredEvent is emitted after an expiry run removed records.
type RecordsExpiredEvent struct {
	Removed int64     `json:"removed"`
	Cutoff  time.Time `json:"cutoff"`
	RanAt   time.Time `json:"ranAt"`
}
