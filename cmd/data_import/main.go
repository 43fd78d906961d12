package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/DjordjeVuckovic/news-portal/internal/fixture"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/es"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/pg"
)

const importTimeout = 10 * time.Minute

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	set, err := fixture.Load(cfg.FixturePath)
	if err != nil {
		slog.Error("failed to load fixture", "path", cfg.FixturePath, "error", err)
		os.Exit(1)
	}

	pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
	if err != nil {
		slog.Error("failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	start := time.Now()
	if err := pg.NewImporter(pool).Import(ctx, set); err != nil {
		slog.Error("failed to import fixture", "error", err)
		os.Exit(1)
	}
	slog.Info("Fixture imported", "articles", len(set.Articles), "sections", len(set.Sections), "took", time.Since(start))

	if cfg.Es == nil {
		return
	}
	if err := indexSearch(ctx, *cfg.Es, set); err != nil {
		slog.Error("failed to index search documents", "error", err)
		os.Exit(1)
	}
}

func indexSearch(ctx context.Context, cfg es.ClientConfig, set *fixture.Set) error {
	indexer, err := es.NewIndexer(ctx, cfg)
	if err != nil {
		return err
	}
	if err := indexer.IndexArticles(ctx, set.Articles); err != nil {
		return err
	}
	if err := indexer.IndexSections(ctx, set.Sections); err != nil {
		return err
	}
	if err := indexer.Refresh(ctx); err != nil {
		return err
	}
	slog.Info("Search documents indexed", "articles", len(set.Articles), "sections", len(set.Sections))
	return nil
}
