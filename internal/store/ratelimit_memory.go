package store

import (
	"context"
	"sync"
	"time"
)

type fixedWindow struct {
	start time.Time
	count int64
}

// RateLimitMemoryStore is an in-memory implementation of ratelimit.Store
// using fixed windows. State is ephemeral; losing it on restart just resets
// every client to an empty window.
type RateLimitMemoryStore struct {
	mu      sync.Mutex
	windows map[string]*fixedWindow
}

// NewRateLimitMemoryStore creates a new in-memory rate limit store.
func NewRateLimitMemoryStore() *RateLimitMemoryStore {
	return &RateLimitMemoryStore{
		windows: make(map[string]*fixedWindow),
	}
}

func (s *RateLimitMemoryStore) Hit(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	w, ok := s.windows[key]
	if !ok || now.Sub(w.start) >= window {
		s.windows[key] = &fixedWindow{start: now, count: 1}

		return 1, nil
	}

	w.count++

	return w.count, nil
}
