package ratelimit

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// MetadataKey is the key used to store rate limit config in operation metadata.
const MetadataKey = "rateLimit"

// LimitConfig is a single admission quota: at most Max requests per Window.
type LimitConfig struct {
	Max    int64
	Window time.Duration
}

// EndpointConfig declares the rate limits for a single route. Routes that
// carry no config in their operation metadata are unthrottled.
type EndpointConfig struct {
	// Limits applied to the route, all of which must hold for a request
	// to be admitted.
	Limits []LimitConfig

	// Disabled skips rate limiting entirely for this endpoint.
	Disabled bool
}

// GetEndpointConfig extracts the EndpointConfig from operation metadata, if present.
func GetEndpointConfig(ctx huma.Context) *EndpointConfig {
	op := ctx.Operation()
	if op == nil || op.Metadata == nil {
		return nil
	}

	cfg, ok := op.Metadata[MetadataKey].(EndpointConfig)
	if !ok {
		return nil
	}

	return &cfg
}
