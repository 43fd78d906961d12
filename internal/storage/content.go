package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
)

type ArticleStore interface {
	// GetByID returns ErrNotFound when the article does not exist
	GetByID(ctx context.Context, id int64) (domain.Article, error)
	// ListByIDs resolves a batch of ids; missing ids are absent from the map
	ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.Article, error)
	// ListLatest pages over all articles, newest first
	ListLatest(ctx context.Context, page pagination.OffsetRequest) ([]domain.Article, int64, error)
}

// ArticleSearcher runs keyword search over article title and body.
type ArticleSearcher interface {
	SearchArticles(ctx context.Context, keyword string, page pagination.OffsetRequest) ([]domain.Article, int64, error)
}

type SectionStore interface {
	GetByID(ctx context.Context, id int64) (domain.Section, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.Section, error)
	ListAll(ctx context.Context, page pagination.OffsetRequest) ([]domain.Section, int64, error)
	// GetItem returns ErrNotFound when the section has no extension item
	GetItem(ctx context.Context, sectionID int64) (domain.SectionItem, error)
	// ListIDsByPrefix pages over the alias index for sections whose
	// phonetic name starts with prefix
	ListIDsByPrefix(ctx context.Context, prefix string, page pagination.OffsetRequest) ([]int64, int64, error)
}

// SectionSearcher runs keyword search over section names.
type SectionSearcher interface {
	SearchSections(ctx context.Context, keyword string, page pagination.OffsetRequest) ([]domain.Section, int64, error)
}
