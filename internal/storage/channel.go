package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
)

type ChannelStore interface {
	ListAll(ctx context.Context) ([]domain.Channel, error)
	// ListMembers pages over the article ids of a channel; the total is the
	// size of the membership set
	ListMembers(ctx context.Context, channelID int64, page pagination.OffsetRequest) ([]int64, int64, error)
}

type KeywordStore interface {
	// Bump increments the popularity of keyword, creating it at 1
	Bump(ctx context.Context, keyword string) error
	ListHot(ctx context.Context, limit int) ([]domain.Keyword, error)
}
