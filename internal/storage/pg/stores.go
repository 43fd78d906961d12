package pg

import (
	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
)

// NewStores wires every Postgres-backed store onto one pool. Keyword search
// defaults to the ILIKE implementations here and may be swapped by the caller.
func NewStores(pool *ConnectionPool) (*storage.Stores, error) {
	articleCounts, err := NewCountStore(pool, domain.ArticleCounts)
	if err != nil {
		return nil, err
	}
	sectionCounts, err := NewCountStore(pool, domain.SectionCounts)
	if err != nil {
		return nil, err
	}

	articles := NewArticleStore(pool)
	sections := NewSectionStore(pool)

	return &storage.Stores{
		Articles:      articles,
		ArticleSearch: articles,
		ArticleCounts: articleCounts,
		Sections:      sections,
		SectionSearch: sections,
		SectionCounts: sectionCounts,
		Relations:     NewRelationStore(pool),
		Comments:      NewCommentStore(pool),
		Users:         NewUserStore(pool),
		Channels:      NewChannelStore(pool),
		Keywords:      NewKeywordStore(pool),
	}, nil
}
