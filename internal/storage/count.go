package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
)

// CountStore owns the counters of one entity family (articles or sections).
type CountStore interface {
	// GetByID reports whether a counter record exists for id
	GetByID(ctx context.Context, id int64) (domain.Count, bool, error)
	ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.Count, error)
	// CreateIfAbsent materializes an all-zero counter. It is idempotent and
	// safe to race: at most one record exists per id afterwards.
	CreateIfAbsent(ctx context.Context, id int64) error
	IncrementView(ctx context.Context, id int64) error
	IncrementLike(ctx context.Context, id int64) error
	IncrementDislike(ctx context.Context, id int64) error
	// MaxViewCount returns the largest view count of the family, 0 when empty
	MaxViewCount(ctx context.Context) (int64, error)
}
