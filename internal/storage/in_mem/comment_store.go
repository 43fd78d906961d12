package in_mem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
)

type CommentStore struct {
	mu       sync.RWMutex
	nextID   int64
	comments map[int64]domain.Comment
}

func NewCommentStore() *CommentStore {
	return &CommentStore{comments: make(map[int64]domain.Comment)}
}

func (s *CommentStore) ListByArticle(_ context.Context, articleID int64, page pagination.OffsetRequest) ([]domain.Comment, int64, error) {
	items, total := s.newestFirst(func(c domain.Comment) bool { return c.ArticleID == articleID }, page)
	return items, total, nil
}

func (s *CommentStore) ListByUser(_ context.Context, userID int64, page pagination.OffsetRequest) ([]domain.Comment, int64, error) {
	items, total := s.newestFirst(func(c domain.Comment) bool { return c.UserID == userID }, page)
	return items, total, nil
}

func (s *CommentStore) newestFirst(match func(domain.Comment) bool, page pagination.OffsetRequest) ([]domain.Comment, int64) {
	s.mu.RLock()
	var all []domain.Comment
	for _, c := range s.comments {
		if match(c) {
			all = append(all, c)
		}
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return pageOf(all, page)
}

func (s *CommentStore) Add(_ context.Context, comment domain.Comment) (domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if comment.ID == 0 {
		s.nextID++
		comment.ID = s.nextID
	} else if comment.ID > s.nextID {
		s.nextID = comment.ID
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	s.comments[comment.ID] = comment
	return comment, nil
}

func (s *CommentStore) IncrementLike(_ context.Context, id int64) error {
	return s.update(id, func(c *domain.Comment) { c.LikeCount++ })
}

func (s *CommentStore) IncrementDislike(_ context.Context, id int64) error {
	return s.update(id, func(c *domain.Comment) { c.DislikeCount++ })
}

func (s *CommentStore) update(id int64, fn func(*domain.Comment)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	if !ok {
		return storage.ErrNotFound
	}
	fn(&c)
	s.comments[id] = c
	return nil
}

type UserStore struct {
	mu    sync.RWMutex
	users map[int64]domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]domain.User)}
}

func (s *UserStore) Save(users ...domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.ID] = u
	}
}

func (s *UserStore) ListByIDs(_ context.Context, ids []int64) (map[int64]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int64]domain.User, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			result[id] = u
		}
	}
	return result, nil
}
