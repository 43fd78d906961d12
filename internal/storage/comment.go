package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
)

type CommentStore interface {
	ListByArticle(ctx context.Context, articleID int64, page pagination.OffsetRequest) ([]domain.Comment, int64, error)
	ListByUser(ctx context.Context, userID int64, page pagination.OffsetRequest) ([]domain.Comment, int64, error)
	Add(ctx context.Context, comment domain.Comment) (domain.Comment, error)
	// IncrementLike returns ErrNotFound when the comment does not exist
	IncrementLike(ctx context.Context, id int64) error
	IncrementDislike(ctx context.Context, id int64) error
}

type UserStore interface {
	ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.User, error)
}
