package es

import (
	"strconv"
	"time"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

type ArticleDocument struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	Content   string    `json:"content"`
	Keywords  string    `json:"keywords"`
	Thumbnail string    `json:"thumbnail"`
	CreatedAt time.Time `json:"created_at"`
	IndexedAt time.Time `json:"indexed_at"`
}

type SectionDocument struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Logo       string    `json:"logo"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
	IndexedAt  time.Time `json:"indexed_at"`
}

func (d ArticleDocument) docID() string { return strconv.FormatInt(d.ID, 10) }
func (d SectionDocument) docID() string { return strconv.FormatInt(d.ID, 10) }

func (d ArticleDocument) toDomain() domain.Article {
	return domain.Article{
		ID:        d.ID,
		Title:     d.Title,
		Source:    d.Source,
		Content:   d.Content,
		Keywords:  d.Keywords,
		Thumbnail: d.Thumbnail,
		CreatedAt: d.CreatedAt,
	}
}

func (d SectionDocument) toDomain() domain.Section {
	return domain.Section{
		ID:         d.ID,
		Name:       d.Name,
		Logo:       d.Logo,
		CreatedAt:  d.CreatedAt,
		ModifiedAt: d.ModifiedAt,
	}
}

const contentAnalyzer = "content_analyzer"

type IndexBuilder struct {
	now func() time.Time
}

func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{now: time.Now}
}

func (b *IndexBuilder) articleDocument(a domain.Article) ArticleDocument {
	return ArticleDocument{
		ID:        a.ID,
		Title:     a.Title,
		Source:    a.Source,
		Content:   a.Content,
		Keywords:  a.Keywords,
		Thumbnail: a.Thumbnail,
		CreatedAt: a.CreatedAt,
		IndexedAt: b.now(),
	}
}

func (b *IndexBuilder) sectionDocument(s domain.Section) SectionDocument {
	return SectionDocument{
		ID:         s.ID,
		Name:       s.Name,
		Logo:       s.Logo,
		CreatedAt:  s.CreatedAt,
		ModifiedAt: s.ModifiedAt,
		IndexedAt:  b.now(),
	}
}

func (b *IndexBuilder) buildSettings() types.IndexSettings {
	return types.IndexSettings{
		Analysis: &types.IndexSettingsAnalysis{
			Analyzer: map[string]types.Analyzer{
				contentAnalyzer: types.StandardAnalyzer{
					Stopwords: []string{"_none_"},
				},
			},
		},
	}
}

func (b *IndexBuilder) articleMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewLongNumberProperty(),
			"title":      b.createTextPropertyWithKeyword(contentAnalyzer),
			"source":     types.NewKeywordProperty(),
			"content":    b.createTextProperty(contentAnalyzer),
			"keywords":   b.createTextProperty(""),
			"thumbnail":  types.NewKeywordProperty(),
			"created_at": types.NewDateProperty(),
			"indexed_at": types.NewDateProperty(),
		},
	}
}

// sectionMapping keeps the raw name as a keyword so ordered-character
// wildcard matching runs against the whole name.
func (b *IndexBuilder) sectionMapping() types.TypeMapping {
	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":          types.NewLongNumberProperty(),
			"name":        b.createTextPropertyWithKeyword(contentAnalyzer),
			"logo":        types.NewKeywordProperty(),
			"created_at":  types.NewDateProperty(),
			"modified_at": types.NewDateProperty(),
			"indexed_at":  types.NewDateProperty(),
		},
	}
}

func (b *IndexBuilder) createTextProperty(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	return textProp
}

func (b *IndexBuilder) createTextPropertyWithKeyword(analyzer string) types.Property {
	textProp := types.NewTextProperty()
	if analyzer != "" {
		textProp.Analyzer = &analyzer
	}
	textProp.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return textProp
}
