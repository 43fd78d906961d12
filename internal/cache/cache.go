package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-portal/internal/metrics"
	"github.com/DjordjeVuckovic/news-portal/pkg/server"
	"golang.org/x/sync/singleflight"
)

// Cache stores serialized values under string keys with a backend-defined TTL.
// Entries are never invalidated explicitly; they age out.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Loader deduplicates concurrent misses for the same key.
type Loader struct {
	cache Cache
	group singleflight.Group
}

func NewLoader(c Cache) *Loader {
	return &Loader{cache: c}
}

// HealthChecker reports the reachability of caches that have a remote
// backend. Process-local caches are always healthy.
func HealthChecker(c Cache) server.HealthChecker {
	if hc, ok := c.(server.HealthChecker); ok {
		return hc
	}
	return server.NewOkHealthChecker()
}

// ReadThrough returns the cached value for key or calls load and caches its
// result. Cache faults degrade to a direct load and are never returned.
func ReadThrough[T any](ctx context.Context, l *Loader, key string, load func(context.Context) (T, error)) (T, error) {
	if raw, ok, err := l.cache.Get(ctx, key); err != nil {
		slog.Warn("Cache read failed", "key", key, "error", err)
	} else if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			metrics.CacheLookups.WithLabelValues(metrics.ResultHit).Inc()
			return v, nil
		}
		slog.Warn("Dropping undecodable cache entry", "key", key)
	}
	metrics.CacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

	res, err, _ := l.group.Do(key, func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s for cache: %w", key, err)
		}
		if err := l.cache.Set(ctx, key, raw); err != nil {
			slog.Warn("Cache write failed", "key", key, "error", err)
		}
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}
