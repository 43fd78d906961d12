package pg

import (
	"context"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ChannelStore struct {
	db *pgxpool.Pool
}

func NewChannelStore(pool *ConnectionPool) *ChannelStore {
	return &ChannelStore{db: pool.conn}
}

func (s *ChannelStore) ListAll(ctx context.Context) ([]domain.Channel, error) {
	b := psql.Select("id", "name").From("channels").OrderBy("id")
	return queryAll(ctx, s.db, b, func(row pgx.CollectableRow) (domain.Channel, error) {
		var c domain.Channel
		err := row.Scan(&c.ID, &c.Name)
		return c, err
	})
}

func (s *ChannelStore) ListMembers(ctx context.Context, channelID int64, page pagination.OffsetRequest) ([]int64, int64, error) {
	where := sq.Eq{"channel_id": channelID}

	total, err := countOf(ctx, s.db, "article_channels", where)
	if err != nil || total == 0 {
		return nil, total, err
	}

	b := paged(psql.Select("article_id").From("article_channels").Where(where).OrderBy("article_id DESC"), page)
	ids, err := queryAll(ctx, s.db, b, pgx.RowTo[int64])
	return ids, total, err
}

type KeywordStore struct {
	db *pgxpool.Pool
}

func NewKeywordStore(pool *ConnectionPool) *KeywordStore {
	return &KeywordStore{db: pool.conn}
}

func (s *KeywordStore) Bump(ctx context.Context, keyword string) error {
	b := psql.Insert("keywords").
		Columns("keyword", "degree").
		Values(strings.TrimSpace(keyword), 1).
		Suffix("ON CONFLICT (keyword) DO UPDATE SET degree = keywords.degree + 1, modified_at = now()")

	if _, err := exec(ctx, s.db, b); err != nil {
		return fmt.Errorf("failed to bump keyword %q: %w", keyword, err)
	}
	return nil
}

func (s *KeywordStore) ListHot(ctx context.Context, limit int) ([]domain.Keyword, error) {
	b := psql.Select("keyword", "degree").From("keywords").OrderBy("degree DESC", "keyword").Limit(uint64(limit))
	return queryAll(ctx, s.db, b, func(row pgx.CollectableRow) (domain.Keyword, error) {
		var k domain.Keyword
		err := row.Scan(&k.Keyword, &k.Degree)
		return k, err
	})
}
