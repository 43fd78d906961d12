package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/core/search"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/operator"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/textquerytype"
)

// Searcher serves keyword lookups for articles and sections from
// Elasticsearch. Primary reads stay on the relational store.
type Searcher struct {
	client       *elasticsearch.TypedClient
	articleIndex string
	sectionIndex string
}

func NewSearcher(config ClientConfig) (*Searcher, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Searcher{
		client:       client,
		articleIndex: config.ArticleIndex,
		sectionIndex: config.SectionIndex,
	}, nil
}

func (r *Searcher) SearchArticles(ctx context.Context, keyword string, page pagination.OffsetRequest) ([]domain.Article, int64, error) {
	slog.Info("Executing es article keyword search", "keyword", keyword, "page", page.Page, "size", page.Size)

	and := operator.And
	phrasePrefix := textquerytype.Phraseprefix
	query := &types.Query{
		MultiMatch: &types.MultiMatchQuery{
			Query:    keyword,
			Fields:   []string{"title^2", "content"},
			Operator: &and,
			Type:     &phrasePrefix,
		},
	}

	hits, total, err := r.search(ctx, r.articleIndex, query, page)
	if err != nil {
		return nil, 0, err
	}
	return mapHits(hits, total, ArticleDocument.toDomain)
}

func (r *Searcher) SearchSections(ctx context.Context, keyword string, page pagination.OffsetRequest) ([]domain.Section, int64, error) {
	slog.Info("Executing es section keyword search", "keyword", keyword, "page", page.Page, "size", page.Size)

	pattern := orderedWildcard(keyword)
	caseInsensitive := true
	query := &types.Query{
		Wildcard: map[string]types.WildcardQuery{
			"name.keyword": {Value: &pattern, CaseInsensitive: &caseInsensitive},
		},
	}

	hits, total, err := r.search(ctx, r.sectionIndex, query, page)
	if err != nil {
		return nil, 0, err
	}
	return mapHits(hits, total, SectionDocument.toDomain)
}

func (r *Searcher) search(ctx context.Context, index string, query *types.Query, page pagination.OffsetRequest) ([]types.Hit, int64, error) {
	res, err := r.client.Search().
		Index(index).
		Request(searchRequest(query, page, index == r.articleIndex)).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch query failed", "error", err, "index", index)
		return nil, 0, fmt.Errorf("failed to execute search: %w", err)
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}

	slog.Info("Es search results fetched", "index", index, "total_matches", total, "returned_count", len(res.Hits.Hits))
	return res.Hits.Hits, total, nil
}

// maxResultWindow is the index.max_result_window default; from+size past it is rejected.
const maxResultWindow = 10000

// searchRequest builds one page of hits with exact totals. Articles are
// ordered newest first and sections by id, matching the relational store.
// Pages past the result window only count matches.
func searchRequest(query *types.Query, page pagination.OffsetRequest, articles bool) *search.Request {
	from := page.Offset()
	size := page.Size
	if from > maxResultWindow-size {
		from, size = 0, 0
	}

	req := search.NewRequest()
	req.Query = query
	req.From = &from
	req.Size = &size
	req.TrackTotalHits = true
	req.Sort = sortFor(articles)
	return req
}

func sortFor(articles bool) []types.SortCombinations {
	desc := sortorder.Desc
	asc := sortorder.Asc
	if articles {
		return []types.SortCombinations{
			types.SortOptions{SortOptions: map[string]types.FieldSort{"created_at": {Order: &desc}}},
			types.SortOptions{SortOptions: map[string]types.FieldSort{"id": {Order: &desc}}},
		}
	}
	return []types.SortCombinations{
		types.SortOptions{SortOptions: map[string]types.FieldSort{"id": {Order: &asc}}},
	}
}

func mapHits[D any, T any](hits []types.Hit, total int64, convert func(D) T) ([]T, int64, error) {
	out := make([]T, 0, len(hits))
	for _, hit := range hits {
		var doc D
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, 0, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		out = append(out, convert(doc))
	}
	return out, total, nil
}

var wildcardEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`)

// orderedWildcard turns "gln" into "*g*l*n*".
func orderedWildcard(keyword string) string {
	var b strings.Builder
	b.WriteByte('*')
	for _, r := range strings.TrimSpace(keyword) {
		b.WriteString(wildcardEscaper.Replace(string(r)))
		b.WriteByte('*')
	}
	return b.String()
}
