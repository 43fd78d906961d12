package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/news-portal/internal/apperr"
	"github.com/DjordjeVuckovic/news-portal/internal/cache"
	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/dto"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	"github.com/DjordjeVuckovic/news-portal/pkg/datefmt"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
	"github.com/DjordjeVuckovic/news-portal/pkg/stringsutil"
	"golang.org/x/sync/errgroup"
)

const (
	previewLength    = 30
	maxCommentLength = 500
)

type ArticleService struct {
	articles storage.ArticleStore
	search   storage.ArticleSearcher
	counts   counters
	channels storage.ChannelStore
	comments storage.CommentStore
	users    storage.UserStore
	tasks    TaskDispatcher
	loader   *cache.Loader
	now      clock
}

func NewArticleService(stores *storage.Stores, tasks TaskDispatcher, loader *cache.Loader) *ArticleService {
	return &ArticleService{
		articles: stores.Articles,
		search:   stores.ArticleSearch,
		counts:   counters{store: stores.ArticleCounts, kind: domain.ArticleCounts},
		channels: stores.Channels,
		comments: stores.Comments,
		users:    stores.Users,
		tasks:    tasks,
		loader:   loader,
		now:      time.Now,
	}
}

func articleKey(id int64) string {
	return fmt.Sprintf("articleById:%d", id)
}

// ListByChannel pages over a channel's members. The latest channel pages over
// all articles by recency instead.
func (s *ArticleService) ListByChannel(ctx context.Context, channelID int64, page pagination.OffsetRequest) (*pagination.OffsetResult[dto.ArticleView], error) {
	if channelID == domain.LatestChannelID {
		return s.listLatest(ctx, page)
	}

	ids, total, err := s.channels.ListMembers(ctx, channelID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel %d members: %w", channelID, err)
	}
	if len(ids) == 0 {
		return pagination.NewOffsetResult[dto.ArticleView](nil, total, page.Page, page.Size), nil
	}

	var (
		articles map[int64]domain.Article
		counts   map[int64]domain.Count
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		articles, err = s.articles.ListByIDs(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		counts, err = s.counts.resolve(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]dto.ArticleView, 0, len(ids))
	for _, id := range ids {
		article, ok := articles[id]
		if !ok {
			return nil, apperr.NewIntegrity(fmt.Sprintf("channel %d references missing article %d", channelID, id))
		}
		views = append(views, articleView(article, counts[id], now))
	}
	return pagination.NewOffsetResult(views, total, page.Page, page.Size), nil
}

func (s *ArticleService) listLatest(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[dto.ArticleView], error) {
	articles, total, err := s.articles.ListLatest(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest articles: %w", err)
	}
	if len(articles) == 0 {
		return pagination.NewOffsetResult[dto.ArticleView](nil, total, page.Page, page.Size), nil
	}

	ids := make([]int64, 0, len(articles))
	for _, a := range articles {
		ids = append(ids, a.ID)
	}
	counts, err := s.counts.resolve(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]dto.ArticleView, 0, len(articles))
	for _, a := range articles {
		views = append(views, articleView(a, counts[a.ID], now))
	}
	return pagination.NewOffsetResult(views, total, page.Page, page.Size), nil
}

// ListByKeyword searches titles and bodies. A non-empty result bumps the
// keyword's popularity in the background.
func (s *ArticleService) ListByKeyword(ctx context.Context, keyword string, page pagination.OffsetRequest) (*pagination.OffsetResult[dto.SearchArticleView], error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperr.NewValidation("keyword must not be empty")
	}

	articles, total, err := s.search.SearchArticles(ctx, keyword, page)
	if err != nil {
		return nil, fmt.Errorf("failed to search articles: %w", err)
	}
	if len(articles) == 0 {
		return pagination.NewOffsetResult[dto.SearchArticleView](nil, total, page.Page, page.Size), nil
	}
	s.tasks.KeywordSearched(ctx, keyword)

	views := make([]dto.SearchArticleView, 0, len(articles))
	for _, a := range articles {
		views = append(views, dto.SearchArticleView{
			ID:      a.ID,
			Title:   a.Title,
			Source:  a.Source,
			Content: stringsutil.Truncate(a.Content, previewLength),
		})
	}
	return pagination.NewOffsetResult(views, total, page.Page, page.Size), nil
}

// GetDetails returns the article detail view. The view is cached by id; the
// view counter is bumped asynchronously on every call.
func (s *ArticleService) GetDetails(ctx context.Context, id int64) (*dto.ArticleDetailView, error) {
	view, err := cache.ReadThrough(ctx, s.loader, articleKey(id), func(ctx context.Context) (dto.ArticleDetailView, error) {
		a, err := s.articles.GetByID(ctx, id)
		if err != nil {
			return dto.ArticleDetailView{}, notFound("article", id, err)
		}
		return dto.ArticleDetailView{
			ID:        a.ID,
			Title:     a.Title,
			Source:    a.Source,
			Content:   a.Content,
			Keywords:  a.Keywords,
			Thumbnail: a.Thumbnail,
			Date:      datefmt.Detail(a.CreatedAt),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	s.tasks.ArticleViewed(ctx, id)
	return &view, nil
}

// ListComments joins each comment with its author's display identity.
func (s *ArticleService) ListComments(ctx context.Context, articleID int64, page pagination.OffsetRequest) (*pagination.OffsetResult[dto.CommentView], error) {
	comments, total, err := s.comments.ListByArticle(ctx, articleID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments of article %d: %w", articleID, err)
	}
	if len(comments) == 0 {
		return pagination.NewOffsetResult[dto.CommentView](nil, total, page.Page, page.Size), nil
	}

	userIDs := make([]int64, 0, len(comments))
	seen := make(map[int64]struct{}, len(comments))
	for _, c := range comments {
		if _, ok := seen[c.UserID]; !ok {
			seen[c.UserID] = struct{}{}
			userIDs = append(userIDs, c.UserID)
		}
	}
	users, err := s.users.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve comment authors: %w", err)
	}

	now := s.now()
	views := make([]dto.CommentView, 0, len(comments))
	for _, c := range comments {
		user, ok := users[c.UserID]
		if !ok {
			return nil, apperr.NewIntegrity(fmt.Sprintf("comment %d references missing user %d", c.ID, c.UserID))
		}
		views = append(views, commentView(c, user, now))
	}
	return pagination.NewOffsetResult(views, total, page.Page, page.Size), nil
}

// ListUserComments lists the comments written by one user, newest first.
func (s *ArticleService) ListUserComments(ctx context.Context, userID int64, page pagination.OffsetRequest) (*pagination.OffsetResult[dto.CommentView], error) {
	users, err := s.users.ListByIDs(ctx, []int64{userID})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %d: %w", userID, err)
	}
	user, ok := users[userID]
	if !ok {
		return nil, apperr.NewNotFound("user", userID)
	}

	comments, total, err := s.comments.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments of user %d: %w", userID, err)
	}

	now := s.now()
	views := make([]dto.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, commentView(c, user, now))
	}
	return pagination.NewOffsetResult(views, total, page.Page, page.Size), nil
}

func (s *ArticleService) AddComment(ctx context.Context, articleID int64, req dto.AddCommentRequest) (*dto.CommentView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperr.NewValidation("comment content must not be empty")
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, apperr.NewValidation(fmt.Sprintf("comment content must be at most %d characters", maxCommentLength))
	}
	if req.UserID <= 0 {
		return nil, apperr.NewValidation("userId is required")
	}

	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		return nil, notFound("article", articleID, err)
	}
	users, err := s.users.ListByIDs(ctx, []int64{req.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %d: %w", req.UserID, err)
	}
	user, ok := users[req.UserID]
	if !ok {
		return nil, apperr.NewNotFound("user", req.UserID)
	}

	comment, err := s.comments.Add(ctx, domain.Comment{
		ArticleID: articleID,
		UserID:    req.UserID,
		Content:   content,
		CreatedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	slog.InfoContext(ctx, "Comment added", "article_id", articleID, "comment_id", comment.ID)
	view := commentView(comment, user, s.now())
	return &view, nil
}

func (s *ArticleService) Like(ctx context.Context, id int64) error {
	return s.react(ctx, id, s.counts.store.IncrementLike)
}

func (s *ArticleService) Dislike(ctx context.Context, id int64) error {
	return s.react(ctx, id, s.counts.store.IncrementDislike)
}

func (s *ArticleService) react(ctx context.Context, id int64, increment func(context.Context, int64) error) error {
	if _, err := s.articles.GetByID(ctx, id); err != nil {
		return notFound("article", id, err)
	}
	return increment(ctx, id)
}

func (s *ArticleService) LikeComment(ctx context.Context, id int64) error {
	return commentNotFound(id, s.comments.IncrementLike(ctx, id))
}

func (s *ArticleService) DislikeComment(ctx context.Context, id int64) error {
	return commentNotFound(id, s.comments.IncrementDislike(ctx, id))
}

func commentNotFound(id int64, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFoundWrap("comment", id, err)
	}
	return fmt.Errorf("failed to react to comment %d: %w", id, err)
}

func articleView(a domain.Article, c domain.Count, now time.Time) dto.ArticleView {
	return dto.ArticleView{
		ID:        a.ID,
		Title:     a.Title,
		Source:    a.Source,
		Date:      datefmt.Custom(a.CreatedAt, now),
		Keywords:  a.Keywords,
		ViewCount: c.ViewCount,
		Thumbnail: a.Thumbnail,
	}
}

func commentView(c domain.Comment, u domain.User, now time.Time) dto.CommentView {
	return dto.CommentView{
		ID:           c.ID,
		ArticleID:    c.ArticleID,
		UserID:       c.UserID,
		Content:      c.Content,
		LikeCount:    c.LikeCount,
		DislikeCount: c.DislikeCount,
		CreatedAt:    c.CreatedAt,
		Date:         datefmt.Custom(c.CreatedAt, now),
		NickName:     u.Nickname,
		Avatar:       u.Avatar,
	}
}
