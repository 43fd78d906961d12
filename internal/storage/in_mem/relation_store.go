package in_mem

import (
	"context"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
)

type RelationStore struct {
	mu    sync.RWMutex
	edges []domain.RelationEdge
}

func NewRelationStore() *RelationStore {
	return &RelationStore{}
}

func (s *RelationStore) Save(edges ...domain.RelationEdge) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edges = append(s.edges, edges...)
}

func (s *RelationStore) ListBySourceAndType(_ context.Context, sourceID int64, relationType domain.RelationType, limit int) ([]domain.RelationEdge, error) {
	s.mu.RLock()
	var out []domain.RelationEdge
	for _, e := range s.edges {
		if e.SourceSectionID == sourceID && e.TargetType == relationType {
			out = append(out, e)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].Degree < out[j].Degree })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
