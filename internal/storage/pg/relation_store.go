package pg

import (
	"context"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RelationStore struct {
	db *pgxpool.Pool
}

func NewRelationStore(pool *ConnectionPool) *RelationStore {
	return &RelationStore{db: pool.conn}
}

func (s *RelationStore) ListBySourceAndType(ctx context.Context, sourceID int64, relationType domain.RelationType, limit int) ([]domain.RelationEdge, error) {
	b := psql.Select("section_id", "relation_id", "relation_type", "relation_degree").
		From("atlas").
		Where(sq.Eq{"section_id": sourceID, "relation_type": string(relationType)}).
		OrderBy("relation_degree", "relation_id").
		Limit(uint64(limit))

	return queryAll(ctx, s.db, b, func(row pgx.CollectableRow) (domain.RelationEdge, error) {
		var e domain.RelationEdge
		var t string
		err := row.Scan(&e.SourceSectionID, &e.TargetID, &t, &e.Degree)
		e.TargetType = domain.RelationType(t)
		return e, err
	})
}
