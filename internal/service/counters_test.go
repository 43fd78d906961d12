package service

import (
	"context"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters_ResolveMaterializesMissing(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewCountStore()
	store.Save(domain.Count{EntityID: 1, ViewCount: 9})
	spy := &spyCounts{CountStore: store}
	c := counters{store: spy, kind: domain.ArticleCounts}

	got, err := c.resolve(ctx, []int64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, int64(9), got[1].ViewCount)
	assert.Equal(t, domain.Count{EntityID: 2}, got[2])
	assert.Equal(t, domain.Count{EntityID: 3}, got[3])
	assert.Equal(t, int32(2), spy.creates.Load())
	assert.Equal(t, 3, store.Len())

	_, err = c.resolve(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, int32(2), spy.creates.Load())
}

func TestCounters_ConcurrentFirstReadsLeaveOneRecord(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewCountStore()
	c := counters{store: store, kind: domain.SectionCounts}

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			count, err := c.get(ctx, 42)
			assert.NoError(t, err)
			assert.Equal(t, int64(0), count.ViewCount)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.Len())
	stored, ok, err := store.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.Count{EntityID: 42}, stored)
}

func TestCounters_GetKeepsExistingValues(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewCountStore()
	store.Save(domain.Count{EntityID: 5, ViewCount: 3, LikeCount: 1})
	spy := &spyCounts{CountStore: store}

	count, err := counters{store: spy, kind: domain.ArticleCounts}.get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count.ViewCount)
	assert.Zero(t, spy.creates.Load())
}
