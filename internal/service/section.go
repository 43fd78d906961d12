package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/news-portal/internal/apperr"
	"github.com/DjordjeVuckovic/news-portal/internal/cache"
	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/dto"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	"github.com/DjordjeVuckovic/news-portal/pkg/datefmt"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

type SectionService struct {
	sections      storage.SectionStore
	search        storage.SectionSearcher
	counts        counters
	articles      storage.ArticleStore
	articleCounts counters
	relations     storage.RelationStore
	tasks         TaskDispatcher
	loader        *cache.Loader
	now           clock
}

func NewSectionService(stores *storage.Stores, tasks TaskDispatcher, loader *cache.Loader) *SectionService {
	return &SectionService{
		sections:      stores.Sections,
		search:        stores.SectionSearch,
		counts:        counters{store: stores.SectionCounts, kind: domain.SectionCounts},
		articles:      stores.Articles,
		articleCounts: counters{store: stores.ArticleCounts, kind: domain.ArticleCounts},
		relations:     stores.Relations,
		tasks:         tasks,
		loader:        loader,
		now:           time.Now,
	}
}

func sectionsKey(page pagination.OffsetRequest) string {
	return fmt.Sprintf("sections:%d-%d", page.Page, page.Size)
}

func sectionsByPrefixKey(prefix string, page pagination.OffsetRequest) string {
	return fmt.Sprintf("sectionsByStartWith:%s-%d-%d", prefix, page.Page, page.Size)
}

func (s *SectionService) ListSections(ctx context.Context, page pagination.OffsetRequest) (*pagination.OffsetResult[dto.SectionView], error) {
	return cache.ReadThrough(ctx, s.loader, sectionsKey(page), func(ctx context.Context) (*pagination.OffsetResult[dto.SectionView], error) {
		sections, total, err := s.sections.ListAll(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("failed to list sections: %w", err)
		}
		if len(sections) == 0 {
			return pagination.NewOffsetResult[dto.SectionView](nil, total, page.Page, page.Size), nil
		}

		counts, err := s.counts.resolve(ctx, sectionIDs(sections))
		if err != nil {
			return nil, err
		}

		views := make([]dto.SectionView, 0, len(sections))
		for _, sec := range sections {
			views = append(views, sectionView(sec, counts[sec.ID]))
		}
		return pagination.NewOffsetResult(views, total, page.Page, page.Size), nil
	})
}

// ListByKeyword matches the keyword's characters in order within section
// names. A non-empty result bumps the keyword's popularity in the background.
func (s *SectionService) ListByKeyword(ctx context.Context, keyword string, page pagination.OffsetRequest) (*pagination.OffsetResult[dto.SearchSectionView], error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperr.NewValidation("keyword must not be empty")
	}

	sections, total, err := s.search.SearchSections(ctx, keyword, page)
	if err != nil {
		return nil, fmt.Errorf("failed to search sections: %w", err)
	}
	if len(sections) == 0 {
		return pagination.NewOffsetResult[dto.SearchSectionView](nil, total, page.Page, page.Size), nil
	}
	s.tasks.KeywordSearched(ctx, keyword)

	counts, err := s.counts.resolve(ctx, sectionIDs(sections))
	if err != nil {
		return nil, err
	}

	views := make([]dto.SearchSectionView, 0, len(sections))
	for _, sec := range sections {
		views = append(views, dto.SearchSectionView{
			ID:        sec.ID,
			Name:      sec.Name,
			Logo:      sec.Logo,
			ViewCount: counts[sec.ID].ViewCount,
		})
	}
	return pagination.NewOffsetResult(views, total, page.Page, page.Size), nil
}

// ListByPrefix lists sections indexed under an alias initial, in alias order.
func (s *SectionService) ListByPrefix(ctx context.Context, prefix string, page pagination.OffsetRequest) (*pagination.OffsetResult[dto.SectionView], error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, apperr.NewValidation("prefix must not be empty")
	}

	return cache.ReadThrough(ctx, s.loader, sectionsByPrefixKey(prefix, page), func(ctx context.Context) (*pagination.OffsetResult[dto.SectionView], error) {
		ids, total, err := s.sections.ListIDsByPrefix(ctx, prefix, page)
		if err != nil {
			return nil, fmt.Errorf("failed to list sections by prefix %q: %w", prefix, err)
		}
		if len(ids) == 0 {
			return pagination.NewOffsetResult[dto.SectionView](nil, total, page.Page, page.Size), nil
		}

		var (
			sections map[int64]domain.Section
			counts   map[int64]domain.Count
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			sections, err = s.sections.ListByIDs(gctx, ids)
			return err
		})
		g.Go(func() (err error) {
			counts, err = s.counts.resolve(gctx, ids)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		views := make([]dto.SectionView, 0, len(ids))
		for _, id := range ids {
			sec, ok := sections[id]
			if !ok {
				return nil, apperr.NewIntegrity(fmt.Sprintf("alias %q references missing section %d", prefix, id))
			}
			views = append(views, sectionView(sec, counts[id]))
		}
		return pagination.NewOffsetResult(views, total, page.Page, page.Size), nil
	})
}

// GetSectionDetails returns the detail view and increments the view counter
// before returning. The returned counts are read before the increment.
func (s *SectionService) GetSectionDetails(ctx context.Context, id int64) (*dto.SectionDetailView, error) {
	sec, err := s.sections.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("section", id, err)
	}

	item, err := s.sections.GetItem(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		item = domain.SectionItem{SectionID: id}
	case err != nil:
		return nil, fmt.Errorf("failed to get item of section %d: %w", id, err)
	}

	info, err := parseItemInfo(item.ItemInfo)
	if err != nil {
		return nil, apperr.NewIntegrity(fmt.Sprintf("section %d has malformed item info: %v", id, err))
	}

	count, err := s.counts.get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	view := &dto.SectionDetailView{
		ID:           sec.ID,
		Name:         sec.Name,
		Logo:         sec.Logo,
		ViewCount:    count.ViewCount,
		ShareCount:   count.ShareCount,
		CollectCount: count.CollectCount,
		ItemInfo:     info,
		CreateTime:   datefmt.Custom(sec.CreatedAt, now),
		UpdateTime:   datefmt.Custom(domain.LastModified(sec, item), now),
	}

	if err := s.counts.store.IncrementView(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to increment section %d views: %w", id, err)
	}
	return view, nil
}

// GetRelationGraph returns the section with its closest related sections or
// articles, each weighted by popularity.
func (s *SectionService) GetRelationGraph(ctx context.Context, id int64, relationType string) (*dto.RelationGraph, error) {
	typ, err := domain.ParseRelationType(relationType)
	if err != nil {
		return nil, apperr.NewValidationWrap("invalid relation type", err)
	}

	sec, err := s.sections.GetByID(ctx, id)
	if err != nil {
		return nil, notFound("section", id, err)
	}

	edges, err := s.relations.ListBySourceAndType(ctx, id, typ, domain.MaxRelatedEdges)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s relations of section %d: %w", typ, id, err)
	}

	graph := &dto.RelationGraph{
		Center: dto.GraphCenter{ID: sec.ID, Logo: sec.Logo, Title: sec.Name},
		Edges:  make([]dto.RelationView, 0, len(edges)),
	}
	if len(edges) == 0 {
		return graph, nil
	}

	ids := make([]int64, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.TargetID)
	}

	var targets map[int64]relationTarget
	switch typ {
	case domain.RelationSection:
		targets, err = s.sectionTargets(ctx, ids)
	default:
		targets, err = s.articleTargets(ctx, ids)
	}
	if err != nil {
		return nil, err
	}

	for _, e := range edges {
		t, ok := targets[e.TargetID]
		if !ok {
			return nil, apperr.NewIntegrity(fmt.Sprintf("section %d relates to missing %s %d", id, typ, e.TargetID))
		}
		graph.Edges = append(graph.Edges, dto.RelationView{
			ID:       e.TargetID,
			Title:    t.title,
			Logo:     t.logo,
			Distance: e.Degree,
			Weight:   Weight(t.viewCount, t.maxViewCount),
		})
	}
	return graph, nil
}

type relationTarget struct {
	title        string
	logo         string
	viewCount    int64
	maxViewCount int64
}

func (s *SectionService) sectionTargets(ctx context.Context, ids []int64) (map[int64]relationTarget, error) {
	var (
		sections map[int64]domain.Section
		counts   map[int64]domain.Count
		highest  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sections, err = s.sections.ListByIDs(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		counts, err = s.counts.resolve(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		highest, err = s.counts.store.MaxViewCount(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	targets := make(map[int64]relationTarget, len(sections))
	for id, sec := range sections {
		targets[id] = relationTarget{title: sec.Name, logo: sec.Logo, viewCount: counts[id].ViewCount, maxViewCount: highest}
	}
	return targets, nil
}

func (s *SectionService) articleTargets(ctx context.Context, ids []int64) (map[int64]relationTarget, error) {
	var (
		articles map[int64]domain.Article
		counts   map[int64]domain.Count
		highest  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		articles, err = s.articles.ListByIDs(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		counts, err = s.articleCounts.resolve(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		highest, err = s.articleCounts.store.MaxViewCount(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	targets := make(map[int64]relationTarget, len(articles))
	for id, a := range articles {
		targets[id] = relationTarget{title: a.Title, viewCount: counts[id].ViewCount, maxViewCount: highest}
	}
	return targets, nil
}

func parseItemInfo(raw json.RawMessage) (map[string]any, error) {
	info := map[string]any{}
	if len(raw) == 0 || string(raw) == "null" {
		return info, nil
	}
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, err
	}
	return info, nil
}

func sectionIDs(sections []domain.Section) []int64 {
	ids := make([]int64, 0, len(sections))
	for _, sec := range sections {
		ids = append(ids, sec.ID)
	}
	return ids
}

func sectionView(sec domain.Section, c domain.Count) dto.SectionView {
	return dto.SectionView{
		ID:           sec.ID,
		Name:         sec.Name,
		Logo:         sec.Logo,
		ViewCount:    c.ViewCount,
		ShareCount:   c.ShareCount,
		CollectCount: c.CollectCount,
	}
}
