package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/plugin-registry-go/internal/ratelimit"
)

// RegisterRoutes registers the registry routes with per-endpoint rate limit
// configuration. Routes without rate limit metadata are unthrottled.
func RegisterRoutes(api huma.API, plugins *PluginHandler, health *HealthHandler) {
	// POST /v1/plugins/upload - Submit a plugin dependency graph
	// Writes are throttled hard: one submission per client per 30 seconds.
	huma.Register(api, huma.Operation{
		OperationID:   "upload-plugins",
		Method:        http.MethodPost,
		Path:          "/v1/plugins/upload",
		Summary:       "Upload plugin dependency data",
		Description:   "Stores a plugin dependency graph as an immutable record and returns its id.",
		Tags:          []string{"Plugins"},
		DefaultStatus: http.StatusCreated,
		Metadata: map[string]any{
			ratelimit.MetadataKey: ratelimit.EndpointConfig{
				Limits: []ratelimit.LimitConfig{
					{Window: 30 * time.Second, Max: 1},
				},
			},
		},
	}, plugins.UploadPlugins)

	// GET /v1/plugins/{id} - Read one stored record
	huma.Register(api, huma.Operation{
		OperationID: "get-plugin",
		Method:      http.MethodGet,
		Path:        "/v1/plugins/{id}",
		Summary:     "Get plugin dependency data",
		Description: "Returns the stored record for the given id.",
		Tags:        []string{"Plugins"},
	}, plugins.GetPlugin)

	// GET /v1/counts - Cumulative totals
	huma.Register(api, huma.Operation{
		OperationID: "get-counts",
		Method:      http.MethodGet,
		Path:        "/v1/counts",
		Summary:     "Get registry counters",
		Description: "Returns the cumulative export and plugin counts.",
		Tags:        []string{"Counts"},
	}, plugins.GetCounts)

	// GET /health - Service and dependency health
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, health.Check)
}
