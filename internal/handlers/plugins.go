package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/serroba/plugin-registry-go/internal/events"
	"github.com/serroba/plugin-registry-go/internal/messaging"
	"github.com/serroba/plugin-registry-go/internal/registry"
	"go.uber.org/zap"
)

// PluginHandler handles plugin registry operations.
type PluginHandler struct {
	records              registry.Repository
	counters             registry.CounterStore
	publishRecordCreated messaging.Publish[events.RecordCreatedEvent]
	logger               *zap.Logger
}

// NewPluginHandler creates a new plugin handler.
func NewPluginHandler(
	records registry.Repository,
	counters registry.CounterStore,
	publishRecordCreated messaging.Publish[events.RecordCreatedEvent],
	logger *zap.Logger,
) *PluginHandler {
	return &PluginHandler{
		records:              records,
		counters:             counters,
		publishRecordCreated: publishRecordCreated,
		logger:               logger,
	}
}

// UploadPlugins validates a submission, persists it, and bumps the counters.
// Persistence happens before the increments; the two are sequential, not
// transactional, so a crash in between leaves the counters behind by one.
func (h *PluginHandler) UploadPlugins(ctx context.Context, req *UploadPluginsRequest) (*UploadPluginsResponse, error) {
	plugins, err := registry.ValidateSubmission(req.RawBody)
	if err != nil {
		var vErr *registry.ValidationError
		if errors.As(err, &vErr) {
			return nil, huma.Error400BadRequest(vErr.Error())
		}

		return nil, huma.Error400BadRequest("invalid submission")
	}

	id, err := h.records.Create(ctx, plugins)
	if err != nil {
		h.logger.Error("failed to persist submission", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to store submission")
	}

	// Increment failures are logged, not surfaced: the record is already
	// durable and the counters are cumulative totals, so drift here is the
	// documented inconsistency window.
	if err := h.counters.IncrementExport(ctx); err != nil {
		h.logger.Error("failed to increment export count",
			zap.String("id", id), zap.Error(err))
	}

	if err := h.counters.IncrementPlugins(ctx, int64(len(plugins))); err != nil {
		h.logger.Error("failed to increment plugin count",
			zap.String("id", id), zap.Error(err))
	}

	meta := RequestMetaFromContext(ctx)
	event := &events.RecordCreatedEvent{
		RecordID:    id,
		PluginCount: len(plugins),
		CreatedAt:   time.Now().UTC(),
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
	}

	if err := h.publishRecordCreated(event); err != nil {
		h.logger.Error("failed to publish record created event",
			zap.String("id", id),
			zap.Error(err),
		)
	}

	resp := &UploadPluginsResponse{}
	resp.Body.ID = id

	return resp, nil
}

// GetPlugin returns a stored record by id.
func (h *PluginHandler) GetPlugin(ctx context.Context, req *GetPluginRequest) (*GetPluginResponse, error) {
	if _, err := uuid.Parse(req.ID); err != nil {
		return nil, huma.Error400BadRequest("id must be a valid UUID")
	}

	record, err := h.records.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, huma.Error404NotFound("plugin data not found")
		}

		h.logger.Error("failed to read record",
			zap.String("id", req.ID), zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to read record")
	}

	resp := &GetPluginResponse{}
	resp.Body.ID = record.ID
	resp.Body.Plugins = record.Plugins
	resp.Body.CreatedAt = record.CreatedAt

	return resp, nil
}

// GetCounts returns the cumulative registry totals.
func (h *PluginHandler) GetCounts(ctx context.Context, _ *struct{}) (*GetCountsResponse, error) {
	counts, err := h.counters.Counts(ctx)
	if err != nil {
		h.logger.Error("failed to read counters", zap.Error(err))

		return nil, huma.Error500InternalServerError("failed to read counters")
	}

	resp := &GetCountsResponse{}
	resp.Body.Counts = counts

	return resp, nil
}
