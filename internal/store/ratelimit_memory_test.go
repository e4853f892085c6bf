package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/serroba/plugin-registry-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMemoryStore_Hit(t *testing.T) {
	t.Run("counts hits within a window", func(t *testing.T) {
		s := store.NewRateLimitMemoryStore()

		for want := int64(1); want <= 3; want++ {
			count, err := s.Hit(context.Background(), "client1", time.Minute)

			require.NoError(t, err)
			assert.Equal(t, want, count)
		}
	})

	t.Run("tracks keys independently", func(t *testing.T) {
		s := store.NewRateLimitMemoryStore()

		_, _ = s.Hit(context.Background(), "client1", time.Minute)
		_, _ = s.Hit(context.Background(), "client1", time.Minute)

		count, err := s.Hit(context.Background(), "client2", time.Minute)

		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("starts a fresh window after expiry", func(t *testing.T) {
		s := store.NewRateLimitMemoryStore()

		count, err := s.Hit(context.Background(), "client1", 30*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		count, err = s.Hit(context.Background(), "client1", 30*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		time.Sleep(40 * time.Millisecond)

		count, err = s.Hit(context.Background(), "client1", 30*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count, "window should reset after the interval")
	})
}
