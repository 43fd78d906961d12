package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/news-portal/internal/cache"
	"github.com/DjordjeVuckovic/news-portal/internal/server"
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

type ApiConfig struct {
	Server  *server.Config
	Storage *factory.StorageConfig
	Cache   *cache.Config
}

func (as *AppConfig) Load() (*ApiConfig, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/news_api/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		return nil, err
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	cacheCfg, err := cache.LoadEnv()
	if err != nil {
		return nil, err
	}

	return &ApiConfig{
		Server:  serverCfg,
		Storage: storageCfg,
		Cache:   cacheCfg,
	}, nil
}
