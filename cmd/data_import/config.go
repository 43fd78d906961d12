package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/news-portal/internal/storage"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/es"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-portal/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type DataImportConfig struct {
	FixturePath string
	// Es is set when the fixture should also be bulk indexed for search.
	Es *es.ClientConfig
	factory.StorageConfig
}

func (as *AppConfig) Load() (*DataImportConfig, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/data_import/.env", "cmd/data_import/pg.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}
	if storageCfg.Type != storage.PG {
		return nil, fmt.Errorf("data import needs STORAGE_TYPE=%s, got %s", storage.PG, storageCfg.Type)
	}

	if storageCfg.FixturePath == "" {
		slog.Error("FIXTURE_PATH environment variable is not set")
		return nil, fmt.Errorf("FIXTURE_PATH environment variable is not set")
	}

	var esCfg *es.ClientConfig
	if os.Getenv("INDEX_SEARCH") == "true" {
		if esCfg, err = factory.LoadEsEnv(); err != nil {
			return nil, err
		}
	}

	return &DataImportConfig{
		FixturePath:   storageCfg.FixturePath,
		Es:            esCfg,
		StorageConfig: *storageCfg,
	}, nil
}
