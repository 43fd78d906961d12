package in_mem

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountStore_CreateIfAbsentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewCountStore()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.CreateIfAbsent(ctx, 7))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, s.Len())
	c, ok, err := s.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, c.ViewCount)
}

func TestCountStore_CreateIfAbsentKeepsExisting(t *testing.T) {
	ctx := context.Background()
	s := NewCountStore()

	require.NoError(t, s.IncrementView(ctx, 3))
	require.NoError(t, s.IncrementView(ctx, 3))
	require.NoError(t, s.CreateIfAbsent(ctx, 3))

	c, _, err := s.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.ViewCount)
}

func TestCountStore_MaxViewCount(t *testing.T) {
	ctx := context.Background()
	s := NewCountStore()

	highest, err := s.MaxViewCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, highest)

	require.NoError(t, s.IncrementView(ctx, 1))
	for i := 0; i < 4; i++ {
		require.NoError(t, s.IncrementView(ctx, 2))
	}
	require.NoError(t, s.IncrementLike(ctx, 1))

	highest, err = s.MaxViewCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), highest)

	counts, err := s.ListByIDs(ctx, []int64{1, 2, 99})
	require.NoError(t, err)
	assert.Len(t, counts, 2)
	assert.Equal(t, int64(1), counts[1].LikeCount)
}
