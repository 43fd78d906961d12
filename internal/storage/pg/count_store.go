package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type countTable struct {
	name string
	key  string
}

var countTables = map[domain.CountKind]countTable{
	domain.ArticleCounts: {name: "article_counts", key: "article_id"},
	domain.SectionCounts: {name: "section_counts", key: "section_id"},
}

// CountStore keeps one counter row per entity. Materialization and
// increments are single-statement upserts so concurrent first reads never
// produce duplicate rows.
type CountStore struct {
	db    *pgxpool.Pool
	table countTable
}

func NewCountStore(pool *ConnectionPool, kind domain.CountKind) (*CountStore, error) {
	table, ok := countTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown count kind: %s", kind)
	}
	return &CountStore{db: pool.conn, table: table}, nil
}

func (s *CountStore) columns() []string {
	return []string{s.table.key, "view_count", "like_count", "dislike_count", "share_count", "collect_count"}
}

func (s *CountStore) GetByID(ctx context.Context, id int64) (domain.Count, bool, error) {
	b := psql.Select(s.columns()...).From(s.table.name).Where(sq.Eq{s.table.key: id})
	c, err := queryOne(ctx, s.db, b, scanCount)
	if errors.Is(err, storage.ErrNotFound) {
		return domain.Count{}, false, nil
	}
	if err != nil {
		return domain.Count{}, false, err
	}
	return c, true, nil
}

func (s *CountStore) ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.Count, error) {
	result := make(map[int64]domain.Count, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	b := psql.Select(s.columns()...).From(s.table.name).Where(sq.Eq{s.table.key: ids})
	counts, err := queryAll(ctx, s.db, b, scanCount)
	if err != nil {
		return nil, err
	}
	for _, c := range counts {
		result[c.EntityID] = c
	}
	return result, nil
}

func (s *CountStore) CreateIfAbsent(ctx context.Context, id int64) error {
	b := psql.Insert(s.table.name).
		Columns(s.table.key).
		Values(id).
		Suffix("ON CONFLICT (" + s.table.key + ") DO NOTHING")

	if _, err := exec(ctx, s.db, b); err != nil {
		return fmt.Errorf("failed to init %s for %d: %w", s.table.name, id, err)
	}
	return nil
}

func (s *CountStore) IncrementView(ctx context.Context, id int64) error {
	return s.increment(ctx, id, "view_count")
}

func (s *CountStore) IncrementLike(ctx context.Context, id int64) error {
	return s.increment(ctx, id, "like_count")
}

func (s *CountStore) IncrementDislike(ctx context.Context, id int64) error {
	return s.increment(ctx, id, "dislike_count")
}

func (s *CountStore) MaxViewCount(ctx context.Context) (int64, error) {
	query, args, err := psql.Select("COALESCE(MAX(view_count), 0)").From(s.table.name).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build max query: %w", err)
	}

	var highest int64
	if err := s.db.QueryRow(ctx, query, args...).Scan(&highest); err != nil {
		return 0, fmt.Errorf("failed to query max view count: %w", err)
	}
	return highest, nil
}

// increment bumps column by one, creating the row when it is missing.
func (s *CountStore) increment(ctx context.Context, id int64, column string) error {
	b := psql.Insert(s.table.name).
		Columns(s.table.key, column).
		Values(id, 1).
		Suffix(fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s = %s.%s + 1", s.table.key, column, s.table.name, column))

	if _, err := exec(ctx, s.db, b); err != nil {
		return fmt.Errorf("failed to increment %s.%s for %d: %w", s.table.name, column, id, err)
	}
	return nil
}

func scanCount(row pgx.CollectableRow) (domain.Count, error) {
	var c domain.Count
	err := row.Scan(&c.EntityID, &c.ViewCount, &c.LikeCount, &c.DislikeCount, &c.ShareCount, &c.CollectCount)
	return c, err
}
