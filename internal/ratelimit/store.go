package ratelimit

import (
	"context"
	"time"
)

// Store defines the interface for rate limit data storage.
type Store interface {
	// Hit records a request against the key and returns the request count
	// within the current fixed window. A new window starts when the
	// previous one has run out.
	Hit(ctx context.Context, key string, window time.Duration) (count int64, err error)
}
