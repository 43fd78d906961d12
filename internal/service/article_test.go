package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-portal/internal/apperr"
	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/dto"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type articleFixture struct {
	backend  *in_mem.Backend
	tasks    *spyTasks
	articles *spyArticles
	channels *spyChannels
	svc      *ArticleService
}

func newArticleFixture(t *testing.T) *articleFixture {
	t.Helper()
	b := seededBackend(t)
	f := &articleFixture{
		backend:  b,
		tasks:    &spyTasks{},
		articles: &spyArticles{ArticleStore: b.Articles},
		channels: &spyChannels{ChannelStore: b.Channels},
	}

	stores := b.Stores()
	stores.Articles = f.articles
	stores.Channels = f.channels
	f.svc = NewArticleService(stores, f.tasks, lruLoader())
	f.svc.now = fixedClock
	return f
}

func TestArticleService_ListByChannel(t *testing.T) {
	ctx := context.Background()

	t.Run("latest lists every article newest first", func(t *testing.T) {
		f := newArticleFixture(t)

		res, err := f.svc.ListByChannel(ctx, domain.LatestChannelID, firstPage)
		require.NoError(t, err)

		want := []dto.ArticleView{
			{ID: 103, Title: "Central banks hold rates", Source: "reuters", Date: "30 minutes ago", Keywords: "finance,rates"},
			{ID: 101, Title: "Go 1.24 ships generic type aliases", Source: "go.dev", Date: "2025-02-11", Keywords: "go,release", Thumbnail: "https://example.com/img/go124.png"},
			{ID: 102, Title: "Postgres 17 improves vacuum", Source: "postgresql.org", Date: "2024-09-26", Keywords: "postgres,database", Thumbnail: "https://example.com/img/pg17.png"},
		}
		if diff := cmp.Diff(want, res.Items); diff != "" {
			t.Errorf("ListByChannel(latest) mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, int64(3), res.Total)
		assert.Equal(t, 3, f.backend.ArticleCounts.Len())
	})

	t.Run("latest ignores membership rows", func(t *testing.T) {
		f := newArticleFixture(t)
		f.backend.Channels.AddMember(domain.LatestChannelID, 102)

		res, err := f.svc.ListByChannel(ctx, domain.LatestChannelID, firstPage)
		require.NoError(t, err)

		assert.Len(t, res.Items, 3)
		assert.Zero(t, f.channels.members.Load())
	})

	t.Run("channel members by id descending", func(t *testing.T) {
		f := newArticleFixture(t)
		f.backend.ArticleCounts.Save(domain.Count{EntityID: 101, ViewCount: 12})

		res, err := f.svc.ListByChannel(ctx, 2, firstPage)
		require.NoError(t, err)

		require.Len(t, res.Items, 2)
		assert.Equal(t, int64(102), res.Items[0].ID)
		assert.Equal(t, int64(101), res.Items[1].ID)
		assert.Equal(t, int64(12), res.Items[1].ViewCount)
		assert.Equal(t, int64(2), res.Total)
	})

	t.Run("empty membership skips lookups", func(t *testing.T) {
		f := newArticleFixture(t)

		res, err := f.svc.ListByChannel(ctx, 99, firstPage)
		require.NoError(t, err)

		assert.Empty(t, res.Items)
		assert.NotNil(t, res.Items)
		assert.Equal(t, int64(0), res.Total)
		assert.Zero(t, f.articles.batches.Load())
		assert.Zero(t, f.backend.ArticleCounts.Len())
	})

	t.Run("member without article is an integrity fault", func(t *testing.T) {
		f := newArticleFixture(t)
		f.backend.Channels.AddMember(2, 999)

		_, err := f.svc.ListByChannel(ctx, 2, firstPage)

		var ie *apperr.IntegrityError
		assert.ErrorAs(t, err, &ie)
	})
}

func TestArticleService_ListByKeyword(t *testing.T) {
	ctx := context.Background()

	t.Run("previews are cut to thirty characters", func(t *testing.T) {
		f := newArticleFixture(t)

		res, err := f.svc.ListByKeyword(ctx, "postgres", firstPage)
		require.NoError(t, err)

		want := []dto.SearchArticleView{
			{ID: 102, Title: "Postgres 17 improves vacuum", Source: "postgresql.org", Content: "PostgreSQL 17 introduces a new"},
		}
		if diff := cmp.Diff(want, res.Items); diff != "" {
			t.Errorf("ListByKeyword mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []string{"postgres"}, f.tasks.searched)
	})

	t.Run("empty and multibyte content", func(t *testing.T) {
		f := newArticleFixture(t)
		require.NoError(t, f.backend.Articles.SaveBulk(ctx, []domain.Article{
			{ID: 201, Title: "Blank body", CreatedAt: testNow},
			{ID: 202, Title: "Blank unicode", Content: strings.Repeat("ж", 40), CreatedAt: testNow.Add(-time.Minute)},
		}))

		res, err := f.svc.ListByKeyword(ctx, "blank", firstPage)
		require.NoError(t, err)

		require.Len(t, res.Items, 2)
		assert.Equal(t, "", res.Items[0].Content)
		assert.Equal(t, strings.Repeat("ж", 30), res.Items[1].Content)
	})

	t.Run("no hits are not recorded", func(t *testing.T) {
		f := newArticleFixture(t)

		res, err := f.svc.ListByKeyword(ctx, "kubernetes", firstPage)
		require.NoError(t, err)

		assert.Empty(t, res.Items)
		assert.Empty(t, f.tasks.searched)
	})

	t.Run("blank keyword is rejected", func(t *testing.T) {
		f := newArticleFixture(t)

		_, err := f.svc.ListByKeyword(ctx, "   ", firstPage)

		var ve *apperr.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestArticleService_GetDetails(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)

	first, err := f.svc.GetDetails(ctx, 101)
	require.NoError(t, err)
	second, err := f.svc.GetDetails(ctx, 101)
	require.NoError(t, err)

	want := &dto.ArticleDetailView{
		ID:        101,
		Title:     "Go 1.24 ships generic type aliases",
		Source:    "go.dev",
		Content:   "The Go team released Go 1.24 with full support for generic type aliases and a faster map implementation.",
		Keywords:  "go,release",
		Thumbnail: "https://example.com/img/go124.png",
		Date:      "2025-02-11 10:00:00",
	}
	if diff := cmp.Diff(want, first); diff != "" {
		t.Errorf("GetDetails mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), f.articles.gets.Load())
	assert.Equal(t, []int64{101, 101}, f.tasks.viewed)

	_, err = f.svc.GetDetails(ctx, 999)
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "article", nf.Resource)
	assert.Equal(t, []int64{101, 101}, f.tasks.viewed)
}

func TestArticleService_ListComments(t *testing.T) {
	ctx := context.Background()

	t.Run("joins author identity", func(t *testing.T) {
		f := newArticleFixture(t)

		res, err := f.svc.ListComments(ctx, 101, firstPage)
		require.NoError(t, err)

		require.Len(t, res.Items, 1)
		got := res.Items[0]
		assert.Equal(t, "gopher", got.NickName)
		assert.Equal(t, "https://example.com/avatar/gopher.png", got.Avatar)
		assert.Equal(t, "2025-02-11", got.Date)
		assert.Equal(t, "Finally!", got.Content)
	})

	t.Run("missing author is an integrity fault", func(t *testing.T) {
		f := newArticleFixture(t)
		_, err := f.backend.Comments.Add(ctx, domain.Comment{ArticleID: 101, UserID: 42, Content: "ghost", CreatedAt: testNow})
		require.NoError(t, err)

		_, err = f.svc.ListComments(ctx, 101, firstPage)

		var ie *apperr.IntegrityError
		assert.ErrorAs(t, err, &ie)
	})
}

func TestArticleService_ListUserComments(t *testing.T) {
	ctx := context.Background()

	t.Run("newest first with the author identity", func(t *testing.T) {
		f := newArticleFixture(t)
		_, err := f.svc.AddComment(ctx, 101, dto.AddCommentRequest{UserID: 2, Content: "me too"})
		require.NoError(t, err)

		res, err := f.svc.ListUserComments(ctx, 2, firstPage)
		require.NoError(t, err)

		assert.Equal(t, int64(2), res.Total)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "me too", res.Items[0].Content)
		assert.Equal(t, "just now", res.Items[0].Date)
		assert.Equal(t, int64(101), res.Items[0].ArticleID)
		assert.Equal(t, "Vacuum all the things.", res.Items[1].Content)
		for _, c := range res.Items {
			assert.Equal(t, "elephant", c.NickName)
			assert.Equal(t, int64(2), c.UserID)
		}
	})

	t.Run("page past the last comment", func(t *testing.T) {
		f := newArticleFixture(t)

		res, err := f.svc.ListUserComments(ctx, 2, pagination.OffsetRequest{Page: 2, Size: 10})
		require.NoError(t, err)
		assert.NotNil(t, res.Items)
		assert.Empty(t, res.Items)
		assert.Equal(t, int64(1), res.Total)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newArticleFixture(t)

		_, err := f.svc.ListUserComments(ctx, 42, firstPage)

		var nf *apperr.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "user", nf.Resource)
	})
}

func TestArticleService_AddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and renders the comment", func(t *testing.T) {
		f := newArticleFixture(t)

		view, err := f.svc.AddComment(ctx, 102, dto.AddCommentRequest{UserID: 1, Content: "  nice  "})
		require.NoError(t, err)

		assert.Equal(t, int64(3), view.ID)
		assert.Equal(t, "nice", view.Content)
		assert.Equal(t, "just now", view.Date)
		assert.Equal(t, "gopher", view.NickName)

		res, err := f.svc.ListComments(ctx, 102, firstPage)
		require.NoError(t, err)
		assert.Equal(t, int64(2), res.Total)
		assert.Equal(t, view.ID, res.Items[0].ID)
	})

	tests := []struct {
		name      string
		articleID int64
		req       dto.AddCommentRequest
		check     func(t *testing.T, err error)
	}{
		{
			name:      "empty content",
			articleID: 101,
			req:       dto.AddCommentRequest{UserID: 1, Content: " \t"},
			check:     isValidation,
		},
		{
			name:      "too long",
			articleID: 101,
			req:       dto.AddCommentRequest{UserID: 1, Content: strings.Repeat("a", 501)},
			check:     isValidation,
		},
		{
			name:      "missing user id",
			articleID: 101,
			req:       dto.AddCommentRequest{Content: "hi"},
			check:     isValidation,
		},
		{
			name:      "unknown article",
			articleID: 999,
			req:       dto.AddCommentRequest{UserID: 1, Content: "hi"},
			check:     isNotFound("article"),
		},
		{
			name:      "unknown user",
			articleID: 101,
			req:       dto.AddCommentRequest{UserID: 77, Content: "hi"},
			check:     isNotFound("user"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newArticleFixture(t)

			view, err := f.svc.AddComment(ctx, tt.articleID, tt.req)

			assert.Nil(t, view)
			tt.check(t, err)
		})
	}
}

func TestArticleService_Reactions(t *testing.T) {
	ctx := context.Background()
	f := newArticleFixture(t)

	require.NoError(t, f.svc.Like(ctx, 101))
	require.NoError(t, f.svc.Like(ctx, 101))
	require.NoError(t, f.svc.Dislike(ctx, 101))

	count, ok, err := f.backend.ArticleCounts.GetByID(ctx, 101)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(2), count.LikeCount)
	assert.Equal(t, int64(1), count.DislikeCount)

	isNotFound("article")(t, f.svc.Like(ctx, 999))
	assert.Equal(t, 1, f.backend.ArticleCounts.Len())

	require.NoError(t, f.svc.LikeComment(ctx, 1))
	require.NoError(t, f.svc.DislikeComment(ctx, 1))
	isNotFound("comment")(t, f.svc.LikeComment(ctx, 999))
}

func isValidation(t *testing.T, err error) {
	t.Helper()
	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve), "want validation error, got %v", err)
}

func isNotFound(resource string) func(t *testing.T, err error) {
	return func(t *testing.T, err error) {
		t.Helper()
		var nf *apperr.NotFoundError
		if assert.True(t, errors.As(err, &nf), "want not found, got %v", err) {
			assert.Equal(t, resource, nf.Resource)
		}
	}
}
