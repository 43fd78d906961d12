package pg

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
	"github.com/DjordjeVuckovic/news-portal/pkg/stringsutil"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var articleColumns = []string{"id", "title", "source", "COALESCE(content, '')", "keywords", "thumbnail", "created_at"}

type ArticleStore struct {
	db *pgxpool.Pool
}

func NewArticleStore(pool *ConnectionPool) *ArticleStore {
	return &ArticleStore{db: pool.conn}
}

func (s *ArticleStore) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	b := psql.Select(articleColumns...).From("articles").Where(sq.Eq{"id": id})
	return queryOne(ctx, s.db, b, scanArticle)
}

func (s *ArticleStore) ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.Article, error) {
	result := make(map[int64]domain.Article, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	b := psql.Select(articleColumns...).From("articles").Where(sq.Eq{"id": ids})
	articles, err := queryAll(ctx, s.db, b, scanArticle)
	if err != nil {
		return nil, err
	}
	for _, a := range articles {
		result[a.ID] = a
	}
	return result, nil
}

func (s *ArticleStore) ListLatest(ctx context.Context, page pagination.OffsetRequest) ([]domain.Article, int64, error) {
	total, err := countOf(ctx, s.db, "articles", nil)
	if err != nil || total == 0 {
		return nil, total, err
	}

	b := paged(psql.Select(articleColumns...).From("articles").OrderBy("created_at DESC", "id DESC"), page)
	articles, err := queryAll(ctx, s.db, b, scanArticle)
	return articles, total, err
}

// SearchArticles matches the keyword as a substring of title or content.
func (s *ArticleStore) SearchArticles(ctx context.Context, keyword string, page pagination.OffsetRequest) ([]domain.Article, int64, error) {
	slog.Info("Executing pg article keyword search", "keyword", keyword, "page", page.Page, "size", page.Size)

	pattern := stringsutil.ContainsPattern(keyword)
	where := sq.Or{sq.ILike{"title": pattern}, sq.ILike{"content": pattern}}

	total, err := countOf(ctx, s.db, "articles", where)
	if err != nil || total == 0 {
		return nil, total, err
	}

	b := paged(psql.Select(articleColumns...).From("articles").Where(where).OrderBy("created_at DESC", "id DESC"), page)
	articles, err := queryAll(ctx, s.db, b, scanArticle)
	return articles, total, err
}

func scanArticle(row pgx.CollectableRow) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Title, &a.Source, &a.Content, &a.Keywords, &a.Thumbnail, &a.CreatedAt)
	return a, err
}
