package in_mem

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionStore_SearchSectionsMatchesInOrder(t *testing.T) {
	s := NewSectionStore()
	s.SaveSection(domain.Section{ID: 1, Name: "Blockchain"})
	s.SaveSection(domain.Section{ID: 2, Name: "Banking"})
	s.SaveSection(domain.Section{ID: 3, Name: "Insurance"})

	items, total, err := s.SearchSections(context.Background(), "bkn", pagination.OffsetRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(2), items[1].ID)
}

func TestSectionStore_ListIDsByPrefix(t *testing.T) {
	s := NewSectionStore()
	s.SaveAlias(domain.SectionAlias{SectionID: 5, StartWith: "B"})
	s.SaveAlias(domain.SectionAlias{SectionID: 2, StartWith: "b"})
	s.SaveAlias(domain.SectionAlias{SectionID: 9, StartWith: "C"})

	ids, total, err := s.ListIDsByPrefix(context.Background(), "b", pagination.OffsetRequest{Page: 1, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []int64{2}, ids)
}
