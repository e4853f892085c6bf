package handlers

import (
	"time"

	"github.com/serroba/plugin-registry-go/internal/registry"
)

// UploadPluginsRequest is the request for submitting a plugin dependency graph.
// The body is validated by the registry validator rather than the schema
// layer so malformed shapes get a precise validation error.
type UploadPluginsRequest struct {
	RawBody []byte `contentType:"application/json"`
}

// UploadPluginsResponse is the response for a successfully stored submission.
type UploadPluginsResponse struct {
	Body struct {
		ID string `doc:"The id assigned to the stored record" example:"6e7e1e08-96ca-4cb7-a1b4-4f7b4e93e67c" json:"id"`
	}
}

// GetPluginRequest is the request for reading a single record.
type GetPluginRequest struct {
	ID string `doc:"The record id" example:"6e7e1e08-96ca-4cb7-a1b4-4f7b4e93e67c" path:"id"`
}

// GetPluginResponse is the response carrying one stored record.
type GetPluginResponse struct {
	Body struct {
		ID        string             `json:"id"`
		Plugins   registry.PluginMap `json:"plugins"`
		CreatedAt time.Time          `json:"createdAt"`
	}
}

// GetCountsResponse is the response for the cumulative counters.
type GetCountsResponse struct {
	Body struct {
		Counts registry.Counters `json:"counts"`
	}
}
