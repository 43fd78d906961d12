// Package service aggregates content, counters and relation edges into the
// views served by the portal.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/DjordjeVuckovic/news-portal/internal/apperr"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
)

// TaskDispatcher hands off side effects that must not block or fail a request.
type TaskDispatcher interface {
	ArticleViewed(ctx context.Context, articleID int64)
	KeywordSearched(ctx context.Context, keyword string)
}

type clock func() time.Time

// notFound converts a store miss into the user-visible NotFound error.
func notFound(resource string, id int64, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFoundWrap(resource, id, err)
	}
	return err
}
