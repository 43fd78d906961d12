package in_mem

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
)

type ChannelStore struct {
	mu       sync.RWMutex
	channels map[int64]domain.Channel
	members  map[int64][]int64
}

func NewChannelStore() *ChannelStore {
	return &ChannelStore{
		channels: make(map[int64]domain.Channel),
		members:  make(map[int64][]int64),
	}
}

func (s *ChannelStore) SaveChannel(channel domain.Channel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels[channel.ID] = channel
}

func (s *ChannelStore) AddMember(channelID, articleID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members[channelID] = append(s.members[channelID], articleID)
}

func (s *ChannelStore) ListAll(_ context.Context) ([]domain.Channel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Channel, 0, len(s.channels))
	for _, c := range s.channels {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *ChannelStore) ListMembers(_ context.Context, channelID int64, page pagination.OffsetRequest) ([]int64, int64, error) {
	s.mu.RLock()
	ids := append([]int64(nil), s.members[channelID]...)
	s.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	items, total := pageOf(ids, page)
	return items, total, nil
}

type KeywordStore struct {
	mu      sync.Mutex
	degrees map[string]int64
}

func NewKeywordStore() *KeywordStore {
	return &KeywordStore{degrees: make(map[string]int64)}
}

func (s *KeywordStore) Bump(_ context.Context, keyword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.degrees[strings.TrimSpace(keyword)]++
	return nil
}

func (s *KeywordStore) ListHot(_ context.Context, limit int) ([]domain.Keyword, error) {
	s.mu.Lock()
	out := make([]domain.Keyword, 0, len(s.degrees))
	for k, d := range s.degrees {
		out = append(out, domain.Keyword{Keyword: k, Degree: d})
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Degree == out[j].Degree {
			return out[i].Keyword < out[j].Keyword
		}
		return out[i].Degree > out[j].Degree
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
