package in_mem

import "github.com/DjordjeVuckovic/news-portal/internal/storage"

// Backend keeps the concrete in-memory stores so callers can seed them.
type Backend struct {
	Articles      *ArticleStore
	ArticleCounts *CountStore
	Sections      *SectionStore
	SectionCounts *CountStore
	Relations     *RelationStore
	Comments      *CommentStore
	Users         *UserStore
	Channels      *ChannelStore
	Keywords      *KeywordStore
}

func NewBackend() *Backend {
	return &Backend{
		Articles:      NewArticleStore(),
		ArticleCounts: NewCountStore(),
		Sections:      NewSectionStore(),
		SectionCounts: NewCountStore(),
		Relations:     NewRelationStore(),
		Comments:      NewCommentStore(),
		Users:         NewUserStore(),
		Channels:      NewChannelStore(),
		Keywords:      NewKeywordStore(),
	}
}

func (b *Backend) Stores() *storage.Stores {
	return &storage.Stores{
		Articles:      b.Articles,
		ArticleSearch: b.Articles,
		ArticleCounts: b.ArticleCounts,
		Sections:      b.Sections,
		SectionSearch: b.Sections,
		SectionCounts: b.SectionCounts,
		Relations:     b.Relations,
		Comments:      b.Comments,
		Users:         b.Users,
		Channels:      b.Channels,
		Keywords:      b.Keywords,
	}
}
