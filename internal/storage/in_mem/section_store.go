package in_mem

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
)

type SectionStore struct {
	mu       sync.RWMutex
	sections map[int64]domain.Section
	items    map[int64]domain.SectionItem
	aliases  []domain.SectionAlias
}

func NewSectionStore() *SectionStore {
	return &SectionStore{
		sections: make(map[int64]domain.Section),
		items:    make(map[int64]domain.SectionItem),
	}
}

func (s *SectionStore) SaveSection(section domain.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections[section.ID] = section
}

func (s *SectionStore) SaveItem(item domain.SectionItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.SectionID] = item
}

func (s *SectionStore) SaveAlias(alias domain.SectionAlias) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aliases = append(s.aliases, alias)
}

func (s *SectionStore) GetByID(_ context.Context, id int64) (domain.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	section, ok := s.sections[id]
	if !ok {
		return domain.Section{}, storage.ErrNotFound
	}
	return section, nil
}

func (s *SectionStore) ListByIDs(_ context.Context, ids []int64) (map[int64]domain.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[int64]domain.Section, len(ids))
	for _, id := range ids {
		if section, ok := s.sections[id]; ok {
			result[id] = section
		}
	}
	return result, nil
}

func (s *SectionStore) ListAll(_ context.Context, page pagination.OffsetRequest) ([]domain.Section, int64, error) {
	items, total := pageOf(s.sorted(func(domain.Section) bool { return true }), page)
	return items, total, nil
}

func (s *SectionStore) GetItem(_ context.Context, sectionID int64) (domain.SectionItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[sectionID]
	if !ok {
		return domain.SectionItem{}, storage.ErrNotFound
	}
	return item, nil
}

func (s *SectionStore) ListIDsByPrefix(_ context.Context, prefix string, page pagination.OffsetRequest) ([]int64, int64, error) {
	s.mu.RLock()
	var ids []int64
	for _, alias := range s.aliases {
		if strings.EqualFold(alias.StartWith, prefix) {
			ids = append(ids, alias.SectionID)
		}
	}
	s.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	items, total := pageOf(ids, page)
	return items, total, nil
}

// SearchSections matches the keyword characters in order within the name,
// mirroring the fuzzy LIKE pattern used by the Postgres store.
func (s *SectionStore) SearchSections(_ context.Context, keyword string, page pagination.OffsetRequest) ([]domain.Section, int64, error) {
	needle := []rune(strings.ToLower(strings.TrimSpace(keyword)))
	all := s.sorted(func(sec domain.Section) bool {
		return subsequence(needle, []rune(strings.ToLower(sec.Name)))
	})
	items, total := pageOf(all, page)
	return items, total, nil
}

func (s *SectionStore) sorted(keep func(domain.Section) bool) []domain.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.Section, 0, len(s.sections))
	for _, sec := range s.sections {
		if keep(sec) {
			all = append(all, sec)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func subsequence(needle, haystack []rune) bool {
	i := 0
	for _, r := range haystack {
		if i < len(needle) && needle[i] == r {
			i++
		}
	}
	return i == len(needle)
}
