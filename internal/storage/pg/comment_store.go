package pg

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var commentColumns = []string{"id", "article_id", "user_id", "content", "like_count", "dislike_count", "created_at"}

type CommentStore struct {
	db *pgxpool.Pool
}

func NewCommentStore(pool *ConnectionPool) *CommentStore {
	return &CommentStore{db: pool.conn}
}

func (s *CommentStore) ListByArticle(ctx context.Context, articleID int64, page pagination.OffsetRequest) ([]domain.Comment, int64, error) {
	return s.list(ctx, sq.Eq{"article_id": articleID}, page)
}

func (s *CommentStore) ListByUser(ctx context.Context, userID int64, page pagination.OffsetRequest) ([]domain.Comment, int64, error) {
	return s.list(ctx, sq.Eq{"user_id": userID}, page)
}

func (s *CommentStore) list(ctx context.Context, where sq.Eq, page pagination.OffsetRequest) ([]domain.Comment, int64, error) {
	total, err := countOf(ctx, s.db, "comments", where)
	if err != nil || total == 0 {
		return nil, total, err
	}

	b := paged(psql.Select(commentColumns...).From("comments").Where(where).OrderBy("created_at DESC", "id DESC"), page)
	comments, err := queryAll(ctx, s.db, b, scanComment)
	return comments, total, err
}

func (s *CommentStore) Add(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	query, args, err := psql.Insert("comments").
		Columns("article_id", "user_id", "content", "created_at").
		Values(comment.ArticleID, comment.UserID, comment.Content, comment.CreatedAt).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return domain.Comment{}, fmt.Errorf("failed to build insert: %w", err)
	}

	if err := s.db.QueryRow(ctx, query, args...).Scan(&comment.ID, &comment.CreatedAt); err != nil {
		return domain.Comment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	comment.LikeCount, comment.DislikeCount = 0, 0
	return comment, nil
}

func (s *CommentStore) IncrementLike(ctx context.Context, id int64) error {
	return s.increment(ctx, id, "like_count")
}

func (s *CommentStore) IncrementDislike(ctx context.Context, id int64) error {
	return s.increment(ctx, id, "dislike_count")
}

func (s *CommentStore) increment(ctx context.Context, id int64, column string) error {
	b := psql.Update("comments").
		Set(column, sq.Expr(column+" + 1")).
		Where(sq.Eq{"id": id})

	tag, err := exec(ctx, s.db, b)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanComment(row pgx.CollectableRow) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.ArticleID, &c.UserID, &c.Content, &c.LikeCount, &c.DislikeCount, &c.CreatedAt)
	return c, err
}

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(pool *ConnectionPool) *UserStore {
	return &UserStore{db: pool.conn}
}

func (s *UserStore) ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.User, error) {
	result := make(map[int64]domain.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	b := psql.Select("id", "nickname", "avatar").From("users").Where(sq.Eq{"id": ids})
	users, err := queryAll(ctx, s.db, b, func(row pgx.CollectableRow) (domain.User, error) {
		var u domain.User
		err := row.Scan(&u.ID, &u.Nickname, &u.Avatar)
		return u, err
	})
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		result[u.ID] = u
	}
	return result, nil
}
