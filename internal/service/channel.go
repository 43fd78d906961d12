package service

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
)

const (
	defaultHotKeywords = 10
	maxHotKeywords     = 50
)

type ChannelService struct {
	channels storage.ChannelStore
}

func NewChannelService(stores *storage.Stores) *ChannelService {
	return &ChannelService{channels: stores.Channels}
}

func (s *ChannelService) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	channels, err := s.channels.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	if channels == nil {
		channels = []domain.Channel{}
	}
	return channels, nil
}

type KeywordService struct {
	keywords storage.KeywordStore
}

func NewKeywordService(stores *storage.Stores) *KeywordService {
	return &KeywordService{keywords: stores.Keywords}
}

// ListHot returns the most searched keywords. limit falls back to 10 when
// unset and is capped at 50.
func (s *KeywordService) ListHot(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = defaultHotKeywords
	}
	limit = min(limit, maxHotKeywords)

	hot, err := s.keywords.ListHot(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list hot keywords: %w", err)
	}
	out := make([]string, 0, len(hot))
	for _, k := range hot {
		out = append(out, k.Keyword)
	}
	return out, nil
}
