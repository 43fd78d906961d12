package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-portal/internal/cache"
	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/fixture"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
	"github.com/stretchr/testify/require"
)

const fixturePath = "../../db/fixtures/portal.yaml"

var (
	testNow   = time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	firstPage = pagination.OffsetRequest{Page: 1, Size: 10}
)

func fixedClock() time.Time { return testNow }

func seededBackend(t *testing.T) *in_mem.Backend {
	t.Helper()
	set, err := fixture.Load(fixturePath)
	require.NoError(t, err)

	b := in_mem.NewBackend()
	require.NoError(t, b.Seed(context.Background(), set))
	return b
}

func lruLoader() *cache.Loader {
	return cache.NewLoader(cache.NewLRUCache(64, time.Minute))
}

type spyTasks struct {
	mu       sync.Mutex
	viewed   []int64
	searched []string
}

func (s *spyTasks) ArticleViewed(_ context.Context, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewed = append(s.viewed, id)
}

func (s *spyTasks) KeywordSearched(_ context.Context, keyword string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searched = append(s.searched, keyword)
}

// spyArticles counts article lookups.
type spyArticles struct {
	storage.ArticleStore
	gets    atomic.Int32
	batches atomic.Int32
}

func (s *spyArticles) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	s.gets.Add(1)
	return s.ArticleStore.GetByID(ctx, id)
}

func (s *spyArticles) ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.Article, error) {
	s.batches.Add(1)
	return s.ArticleStore.ListByIDs(ctx, ids)
}

type spyChannels struct {
	storage.ChannelStore
	members atomic.Int32
}

func (s *spyChannels) ListMembers(ctx context.Context, channelID int64, page pagination.OffsetRequest) ([]int64, int64, error) {
	s.members.Add(1)
	return s.ChannelStore.ListMembers(ctx, channelID, page)
}

type spySections struct {
	storage.SectionStore
	gets atomic.Int32
}

func (s *spySections) GetByID(ctx context.Context, id int64) (domain.Section, error) {
	s.gets.Add(1)
	return s.SectionStore.GetByID(ctx, id)
}

type spyRelations struct {
	storage.RelationStore
	calls atomic.Int32
}

func (s *spyRelations) ListBySourceAndType(ctx context.Context, sourceID int64, typ domain.RelationType, limit int) ([]domain.RelationEdge, error) {
	s.calls.Add(1)
	return s.RelationStore.ListBySourceAndType(ctx, sourceID, typ, limit)
}

type spyCounts struct {
	storage.CountStore
	creates atomic.Int32
}

func (s *spyCounts) CreateIfAbsent(ctx context.Context, id int64) error {
	s.creates.Add(1)
	return s.CountStore.CreateIfAbsent(ctx, id)
}
