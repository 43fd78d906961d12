package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelService_ListChannels(t *testing.T) {
	b := seededBackend(t)

	channels, err := NewChannelService(b.Stores()).ListChannels(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.Channel{
		{ID: 1, Name: "latest"},
		{ID: 2, Name: "technology"},
		{ID: 3, Name: "finance"},
	}, channels)
}

func TestKeywordService_ListHot(t *testing.T) {
	ctx := context.Background()
	b := seededBackend(t)
	for i := range 60 {
		kw := fmt.Sprintf("kw%02d", i)
		for range i + 1 {
			require.NoError(t, b.Keywords.Bump(ctx, kw))
		}
	}
	svc := NewKeywordService(b.Stores())

	tests := []struct {
		name    string
		limit   int
		wantLen int
	}{
		{name: "default", limit: 0, wantLen: 10},
		{name: "explicit", limit: 3, wantLen: 3},
		{name: "capped", limit: 500, wantLen: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hot, err := svc.ListHot(ctx, tt.limit)
			require.NoError(t, err)
			assert.Len(t, hot, tt.wantLen)
			assert.Equal(t, "kw59", hot[0])
		})
	}
}
