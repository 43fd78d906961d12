package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
)

type ArticleStore struct {
	storageLock sync.RWMutex
	storage     map[int64]domain.Article
}

func NewArticleStore() *ArticleStore {
	return &ArticleStore{
		storage: make(map[int64]domain.Article),
	}
}

func (s *ArticleStore) SaveBulk(_ context.Context, articles []domain.Article) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	for _, article := range articles {
		s.storage[article.ID] = article
		slog.Debug("Saving article to in-memory storage", "title", article.Title, "id", article.ID)
	}
	return nil
}

func (s *ArticleStore) GetByID(_ context.Context, id int64) (domain.Article, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	article, ok := s.storage[id]
	if !ok {
		return domain.Article{}, storage.ErrNotFound
	}
	return article, nil
}

func (s *ArticleStore) ListByIDs(_ context.Context, ids []int64) (map[int64]domain.Article, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	result := make(map[int64]domain.Article, len(ids))
	for _, id := range ids {
		if article, ok := s.storage[id]; ok {
			result[id] = article
		}
	}
	return result, nil
}

func (s *ArticleStore) ListLatest(_ context.Context, page pagination.OffsetRequest) ([]domain.Article, int64, error) {
	all := s.sorted(func(domain.Article) bool { return true })
	items, total := pageOf(all, page)
	return items, total, nil
}

// SearchArticles matches keyword case-insensitively against title and content.
func (s *ArticleStore) SearchArticles(_ context.Context, keyword string, page pagination.OffsetRequest) ([]domain.Article, int64, error) {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	all := s.sorted(func(a domain.Article) bool {
		return strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Content), needle)
	})
	items, total := pageOf(all, page)
	return items, total, nil
}

func (s *ArticleStore) sorted(keep func(domain.Article) bool) []domain.Article {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	all := make([]domain.Article, 0, len(s.storage))
	for _, a := range s.storage {
		if keep(a) {
			all = append(all, a)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID > all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all
}
