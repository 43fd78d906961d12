package service

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/news-portal/internal/domain"
	"github.com/DjordjeVuckovic/news-portal/internal/metrics"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
)

// counters reads popularity counters and materializes missing ones as zero.
type counters struct {
	store storage.CountStore
	kind  domain.CountKind
}

// resolve returns a Count for every id. Ids without a record get a persisted
// zero Count and read as zero in this response.
func (c counters) resolve(ctx context.Context, ids []int64) (map[int64]domain.Count, error) {
	found, err := c.store.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s counts: %w", c.kind, err)
	}
	if found == nil {
		found = make(map[int64]domain.Count, len(ids))
	}

	for _, id := range ids {
		if _, ok := found[id]; ok {
			continue
		}
		if err := c.init(ctx, id); err != nil {
			return nil, err
		}
		found[id] = domain.Count{EntityID: id}
	}
	return found, nil
}

func (c counters) get(ctx context.Context, id int64) (domain.Count, error) {
	count, ok, err := c.store.GetByID(ctx, id)
	if err != nil {
		return domain.Count{}, fmt.Errorf("failed to get %s count %d: %w", c.kind, id, err)
	}
	if ok {
		return count, nil
	}
	if err := c.init(ctx, id); err != nil {
		return domain.Count{}, err
	}
	return domain.Count{EntityID: id}, nil
}

func (c counters) init(ctx context.Context, id int64) error {
	if err := c.store.CreateIfAbsent(ctx, id); err != nil {
		return fmt.Errorf("failed to init %s count %d: %w", c.kind, id, err)
	}
	metrics.CountsMaterialized.WithLabelValues(string(c.kind)).Inc()
	return nil
}
