package ratelimit

import (
	"context"
	"fmt"
)

// RouteLimiter is a fixed-window admission gate keyed by client and route.
// Each (client, route, window) combination is tracked independently in the
// store; the first request after a window runs out opens a fresh one.
type RouteLimiter struct {
	store Store
}

// NewRouteLimiter creates a new route-scoped rate limiter.
func NewRouteLimiter(store Store) *RouteLimiter {
	return &RouteLimiter{store: store}
}

// Admit records a request for the client on the route and reports whether it
// fits within the given quota. Denied requests still count against the
// window.
func (l *RouteLimiter) Admit(ctx context.Context, clientKey, route string, cfg LimitConfig) (bool, error) {
	key := l.buildKey(clientKey, route, cfg)

	count, err := l.store.Hit(ctx, key, cfg.Window)
	if err != nil {
		return false, err
	}

	return count <= cfg.Max, nil
}

// Store returns the underlying rate limit store.
func (l *RouteLimiter) Store() Store {
	return l.store
}

// buildKey creates a unique rate limit key for the client, route, and window
// combination. The route is the operation's template, so all requests
// matching the same route share a window per client.
func (l *RouteLimiter) buildKey(clientKey, route string, cfg LimitConfig) string {
	return fmt.Sprintf("%s:%s:%d", clientKey, route, cfg.Window.Milliseconds())
}
