package in_mem

import (
	"context"
	"sync"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
)

type CountStore struct {
	mu     sync.RWMutex
	counts map[int64]domain.Count
}

func NewCountStore() *CountStore {
	return &CountStore{counts: make(map[int64]domain.Count)}
}

func (s *CountStore) Save(count domain.Count) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[count.EntityID] = count
}

func (s *CountStore) GetByID(_ context.Context, id int64) (domain.Count, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.counts[id]
	return c, ok, nil
}

func (s *CountStore) ListByIDs(_ context.Context, ids []int64) (map[int64]domain.Count, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int64]domain.Count, len(ids))
	for _, id := range ids {
		if c, ok := s.counts[id]; ok {
			result[id] = c
		}
	}
	return result, nil
}

func (s *CountStore) CreateIfAbsent(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.counts[id]; !ok {
		s.counts[id] = domain.Count{EntityID: id}
	}
	return nil
}

func (s *CountStore) IncrementView(_ context.Context, id int64) error {
	s.update(id, func(c *domain.Count) { c.ViewCount++ })
	return nil
}

func (s *CountStore) IncrementLike(_ context.Context, id int64) error {
	s.update(id, func(c *domain.Count) { c.LikeCount++ })
	return nil
}

func (s *CountStore) IncrementDislike(_ context.Context, id int64) error {
	s.update(id, func(c *domain.Count) { c.DislikeCount++ })
	return nil
}

func (s *CountStore) MaxViewCount(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var highest int64
	for _, c := range s.counts {
		if c.ViewCount > highest {
			highest = c.ViewCount
		}
	}
	return highest, nil
}

// Len reports how many counter records exist.
func (s *CountStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.counts)
}

func (s *CountStore) update(id int64, fn func(*domain.Count)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.counts[id]
	if !ok {
		c = domain.Count{EntityID: id}
	}
	fn(&c)
	s.counts[id] = c
}
