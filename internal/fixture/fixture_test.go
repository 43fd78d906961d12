package fixture

import (
	"testing"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
articles:
  - id: 10
    title: Go 1.24 released
    source: golang.org
    created_at: 2024-02-11T10:00:00Z
sections:
  - id: 1
    name: Golang
    created_at: 2020-01-01T00:00:00Z
    modified_at: 2021-01-01T00:00:00Z
section_items:
  - section_id: 1
    item_info:
      founder: Rob Pike
      year: 2009
section_aliases:
  - section_id: 1
    start_with: G
atlas:
  - source_section_id: 1
    target_id: 10
    target_type: article
    relation_degree: 0.5
channels:
  - id: 1
    name: latest
channel_members:
  - channel_id: 1
    article_id: 10
users:
  - id: 3
    nickname: gopher
comments:
  - id: 1
    article_id: 10
    user_id: 3
    content: nice
`

func TestParse(t *testing.T) {
	set, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Len(t, set.Articles, 1)
	assert.Equal(t, "Go 1.24 released", set.Articles[0].Title)
	assert.Equal(t, 2024, set.Articles[0].CreatedAt.Year())
	assert.Equal(t, domain.RelationArticle, set.Relations[0].TargetType)
	assert.Equal(t, "G", set.Aliases[0].StartWith)

	item, err := set.Items[0].ToDomain()
	require.NoError(t, err)
	assert.JSONEq(t, `{"founder":"Rob Pike","year":2009}`, string(item.ItemInfo))
}

func TestParse_RejectsDanglingReferences(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"item without section", "section_items:\n  - section_id: 9\n"},
		{"alias without section", "section_aliases:\n  - section_id: 9\n    start_with: A\n"},
		{"member without article", "channel_members:\n  - channel_id: 2\n    article_id: 9\n"},
		{"comment without user", "articles:\n  - id: 1\ncomments:\n  - id: 1\n    article_id: 1\n    user_id: 4\n"},
		{"unknown relation type", "sections:\n  - id: 1\natlas:\n  - source_section_id: 1\n    target_id: 2\n    target_type: Section\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestItem_ToDomainDefaultsToEmptyObject(t *testing.T) {
	item, err := Item{SectionID: 1}.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "{}", string(item.ItemInfo))
}
