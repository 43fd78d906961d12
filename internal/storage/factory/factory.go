package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-portal/internal/fixture"
	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/es"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/pg"
	"github.com/DjordjeVuckovic/news-portal/pkg/server"
)

// Backend is the assembled storage layer with its health probes.
type Backend struct {
	Stores  *storage.Stores
	Health  server.HealthChecker
	closers []func()
}

func (b *Backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// NewBackend opens the primary store and, when configured, replaces the
// keyword searchers with the Elasticsearch implementation.
func NewBackend(ctx context.Context, cfg *StorageConfig) (*Backend, error) {
	backend := &Backend{}
	var checks []server.HealthChecker

	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		backend.closers = append(backend.closers, pool.Close)

		stores, err := pg.NewStores(pool)
		if err != nil {
			backend.Close()
			return nil, err
		}
		backend.Stores = stores
		checks = append(checks, pg.NewHealthChecker(pool))

	case storage.InMem:
		mem := in_mem.NewBackend()
		if cfg.FixturePath != "" {
			set, err := fixture.Load(cfg.FixturePath)
			if err != nil {
				return nil, err
			}
			if err := mem.Seed(ctx, set); err != nil {
				return nil, fmt.Errorf("failed to seed in-memory storage: %w", err)
			}
		}
		backend.Stores = mem.Stores()
		checks = append(checks, server.NewOkHealthChecker())

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}

	if cfg.Search == storage.ES {
		searcher, err := es.NewSearcher(*cfg.Es)
		if err != nil {
			backend.Close()
			return nil, err
		}
		backend.Stores.ArticleSearch = searcher
		backend.Stores.SectionSearch = searcher

		esHealth, err := es.NewHealthChecker(*cfg.Es)
		if err != nil {
			backend.Close()
			return nil, err
		}
		checks = append(checks, esHealth)
	}

	slog.Info("Storage backend ready", "storage", cfg.Type, "search", searchName(cfg))
	backend.Health = server.NewCompositeHealthChecker(checks...)
	return backend, nil
}

func searchName(cfg *StorageConfig) storage.Type {
	if cfg.Search == "" {
		return cfg.Type
	}
	return cfg.Search
}
