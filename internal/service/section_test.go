package service

import (
	"context"
	"testing"

	"github.com/DjordjeVuckovic/news-portal/internal/apperr"
	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/dto"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/in_mem"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sectionFixture struct {
	backend   *in_mem.Backend
	tasks     *spyTasks
	sections  *spySections
	relations *spyRelations
	svc       *SectionService
}

func newSectionFixture(t *testing.T) *sectionFixture {
	t.Helper()
	b := seededBackend(t)
	f := &sectionFixture{
		backend:   b,
		tasks:     &spyTasks{},
		sections:  &spySections{SectionStore: b.Sections},
		relations: &spyRelations{RelationStore: b.Relations},
	}

	stores := b.Stores()
	stores.Sections = f.sections
	stores.Relations = f.relations
	f.svc = NewSectionService(stores, f.tasks, lruLoader())
	f.svc.now = fixedClock
	return f
}

func TestSectionService_ListSections(t *testing.T) {
	ctx := context.Background()
	f := newSectionFixture(t)
	f.backend.SectionCounts.Save(domain.Count{EntityID: 2, ViewCount: 4, ShareCount: 2, CollectCount: 1})

	res, err := f.svc.ListSections(ctx, firstPage)
	require.NoError(t, err)

	want := []dto.SectionView{
		{ID: 1, Name: "Golang", Logo: "https://example.com/logo/go.png"},
		{ID: 2, Name: "PostgreSQL", Logo: "https://example.com/logo/pg.png", ViewCount: 4, ShareCount: 2, CollectCount: 1},
		{ID: 3, Name: "Google", Logo: "https://example.com/logo/google.png"},
	}
	if diff := cmp.Diff(want, res.Items); diff != "" {
		t.Errorf("ListSections mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(3), res.Total)
	assert.Equal(t, 3, f.backend.SectionCounts.Len())
}

func TestSectionService_ListByKeyword(t *testing.T) {
	ctx := context.Background()

	t.Run("characters match in order", func(t *testing.T) {
		f := newSectionFixture(t)

		res, err := f.svc.ListByKeyword(ctx, "gln", firstPage)
		require.NoError(t, err)

		want := []dto.SearchSectionView{{ID: 1, Name: "Golang", Logo: "https://example.com/logo/go.png"}}
		if diff := cmp.Diff(want, res.Items); diff != "" {
			t.Errorf("ListByKeyword mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []string{"gln"}, f.tasks.searched)
	})

	t.Run("no hits are not recorded", func(t *testing.T) {
		f := newSectionFixture(t)

		res, err := f.svc.ListByKeyword(ctx, "rust", firstPage)
		require.NoError(t, err)

		assert.Empty(t, res.Items)
		assert.Empty(t, f.tasks.searched)
	})

	t.Run("blank keyword is rejected", func(t *testing.T) {
		f := newSectionFixture(t)

		_, err := f.svc.ListByKeyword(ctx, "", firstPage)
		isValidation(t, err)
	})
}

func TestSectionService_ListByPrefix(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves aliases in order", func(t *testing.T) {
		f := newSectionFixture(t)

		res, err := f.svc.ListByPrefix(ctx, "g", firstPage)
		require.NoError(t, err)

		require.Len(t, res.Items, 2)
		assert.Equal(t, "Golang", res.Items[0].Name)
		assert.Equal(t, "Google", res.Items[1].Name)
		assert.Equal(t, int64(2), res.Total)
	})

	t.Run("alias without section is an integrity fault", func(t *testing.T) {
		f := newSectionFixture(t)
		f.backend.Sections.SaveAlias(domain.SectionAlias{SectionID: 99, StartWith: "Z"})

		_, err := f.svc.ListByPrefix(ctx, "Z", firstPage)

		var ie *apperr.IntegrityError
		assert.ErrorAs(t, err, &ie)
	})

	t.Run("unknown prefix is empty", func(t *testing.T) {
		f := newSectionFixture(t)

		res, err := f.svc.ListByPrefix(ctx, "Q", firstPage)
		require.NoError(t, err)
		assert.Empty(t, res.Items)
	})
}

func TestSectionService_GetSectionDetails(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		wantUpdate string
		wantInfo   map[string]any
	}{
		{
			name:       "item modified after section",
			id:         1,
			wantUpdate: "2025-01-01",
			wantInfo: map[string]any{
				"designers":     []any{"Robert Griesemer", "Rob Pike", "Ken Thompson"},
				"firstAppeared": float64(2009),
			},
		},
		{
			name:       "section modified after item",
			id:         2,
			wantUpdate: "2023-01-01",
			wantInfo:   map[string]any{"license": "PostgreSQL License"},
		},
		{
			name:       "section without item",
			id:         3,
			wantUpdate: "2022-01-01",
			wantInfo:   map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSectionFixture(t)

			view, err := f.svc.GetSectionDetails(ctx, tt.id)
			require.NoError(t, err)

			assert.Equal(t, tt.wantUpdate, view.UpdateTime)
			assert.Equal(t, "2020-01-01", view.CreateTime)
			if diff := cmp.Diff(tt.wantInfo, view.ItemInfo); diff != "" {
				t.Errorf("ItemInfo mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSectionService_GetSectionDetailsCountsViews(t *testing.T) {
	ctx := context.Background()
	f := newSectionFixture(t)

	first, err := f.svc.GetSectionDetails(ctx, 1)
	require.NoError(t, err)
	second, err := f.svc.GetSectionDetails(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(0), first.ViewCount)
	assert.Equal(t, int64(1), second.ViewCount)

	count, ok, err := f.backend.SectionCounts.GetByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), count.ViewCount)

	_, err = f.svc.GetSectionDetails(ctx, 99)
	isNotFound("section")(t, err)
}

func TestSectionService_GetRelationGraph(t *testing.T) {
	ctx := context.Background()

	t.Run("related sections weighted by views", func(t *testing.T) {
		f := newSectionFixture(t)
		f.backend.SectionCounts.Save(domain.Count{EntityID: 2, ViewCount: 100})
		f.backend.SectionCounts.Save(domain.Count{EntityID: 3, ViewCount: 10})

		graph, err := f.svc.GetRelationGraph(ctx, 1, "section")
		require.NoError(t, err)

		want := &dto.RelationGraph{
			Center: dto.GraphCenter{ID: 1, Logo: "https://example.com/logo/go.png", Title: "Golang"},
			Edges: []dto.RelationView{
				{ID: 3, Title: "Google", Logo: "https://example.com/logo/google.png", Distance: 0.2, Weight: 5},
				{ID: 2, Title: "PostgreSQL", Logo: "https://example.com/logo/pg.png", Distance: 0.7, Weight: 50},
			},
		}
		if diff := cmp.Diff(want, graph); diff != "" {
			t.Errorf("GetRelationGraph mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("related articles start at weight one", func(t *testing.T) {
		f := newSectionFixture(t)

		graph, err := f.svc.GetRelationGraph(ctx, 1, "article")
		require.NoError(t, err)

		want := []dto.RelationView{{ID: 101, Title: "Go 1.24 ships generic type aliases", Distance: 0.1, Weight: 1}}
		if diff := cmp.Diff(want, graph.Edges); diff != "" {
			t.Errorf("edges mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 1, f.backend.ArticleCounts.Len())
	})

	t.Run("at most five edges", func(t *testing.T) {
		f := newSectionFixture(t)
		for i := range 8 {
			id := int64(10 + i)
			f.backend.Sections.SaveSection(domain.Section{ID: id, Name: "extra"})
			f.backend.Relations.Save(domain.RelationEdge{SourceSectionID: 2, TargetID: id, TargetType: domain.RelationSection, Degree: float64(i)})
		}

		graph, err := f.svc.GetRelationGraph(ctx, 2, "section")
		require.NoError(t, err)
		assert.Len(t, graph.Edges, domain.MaxRelatedEdges)
	})

	t.Run("no edges yields an empty list", func(t *testing.T) {
		f := newSectionFixture(t)

		graph, err := f.svc.GetRelationGraph(ctx, 3, "section")
		require.NoError(t, err)
		assert.NotNil(t, graph.Edges)
		assert.Empty(t, graph.Edges)
		assert.Equal(t, "Google", graph.Center.Title)
	})

	t.Run("invalid type is rejected before any lookup", func(t *testing.T) {
		f := newSectionFixture(t)

		for _, typ := range []string{"", "Section", "articles", "tag"} {
			_, err := f.svc.GetRelationGraph(ctx, 1, typ)
			isValidation(t, err)
		}
		assert.Zero(t, f.sections.gets.Load())
		assert.Zero(t, f.relations.calls.Load())
	})

	t.Run("unknown section", func(t *testing.T) {
		f := newSectionFixture(t)

		_, err := f.svc.GetRelationGraph(ctx, 99, "article")
		isNotFound("section")(t, err)
		assert.Zero(t, f.relations.calls.Load())
	})

	t.Run("edge to a missing target is an integrity fault", func(t *testing.T) {
		f := newSectionFixture(t)
		f.backend.Relations.Save(domain.RelationEdge{SourceSectionID: 1, TargetID: 555, TargetType: domain.RelationSection, Degree: 0.05})

		_, err := f.svc.GetRelationGraph(ctx, 1, "section")

		var ie *apperr.IntegrityError
		assert.ErrorAs(t, err, &ie)
	})
}
