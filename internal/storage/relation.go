package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
)

type RelationStore interface {
	// ListBySourceAndType returns at most limit edges, closest first
	ListBySourceAndType(ctx context.Context, sourceID int64, relationType domain.RelationType, limit int) ([]domain.RelationEdge, error)
}
