package store_test

import (
	"context"
	"sync"
	"testing"

	"github.com/serroba/plugin-registry-go/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCounterStore(t *testing.T) {
	t.Run("starts at zero", func(t *testing.T) {
		s := store.NewMemoryCounterStore()

		counts, err := s.Counts(context.Background())

		require.NoError(t, err)
		assert.Zero(t, counts.ExportCount)
		assert.Zero(t, counts.PluginCount)
	})

	t.Run("increments export by one", func(t *testing.T) {
		s := store.NewMemoryCounterStore()

		require.NoError(t, s.IncrementExport(context.Background()))
		require.NoError(t, s.IncrementExport(context.Background()))

		counts, err := s.Counts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(2), counts.ExportCount)
	})

	t.Run("increments plugins by arbitrary amounts", func(t *testing.T) {
		s := store.NewMemoryCounterStore()

		require.NoError(t, s.IncrementPlugins(context.Background(), 3))
		require.NoError(t, s.IncrementPlugins(context.Background(), 0))
		require.NoError(t, s.IncrementPlugins(context.Background(), 2))

		counts, err := s.Counts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(5), counts.PluginCount)
	})

	t.Run("loses no updates under concurrent increments", func(t *testing.T) {
		s := store.NewMemoryCounterStore()

		const writers = 50

		var wg sync.WaitGroup

		for i := range writers {
			wg.Add(1)

			go func(n int64) {
				defer wg.Done()

				_ = s.IncrementExport(context.Background())
				_ = s.IncrementPlugins(context.Background(), n%3+1)
			}(int64(i))
		}

		wg.Wait()

		counts, err := s.Counts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(writers), counts.ExportCount)

		var expected int64
		for i := range writers {
			expected += int64(i)%3 + 1
		}

		assert.Equal(t, expected, counts.PluginCount)
	})
}
