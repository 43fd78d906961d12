// Package main News Portal API
// @title News Portal API
// @version 1.0
// @description Articles, sections and their popularity counters
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/news-portal/docs"
	"github.com/DjordjeVuckovic/news-portal/internal/cache"
	"github.com/DjordjeVuckovic/news-portal/internal/router"
	"github.com/DjordjeVuckovic/news-portal/internal/server"
	"github.com/DjordjeVuckovic/news-portal/internal/service"
	"github.com/DjordjeVuckovic/news-portal/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-portal/internal/tasks"
	pkgserver "github.com/DjordjeVuckovic/news-portal/pkg/server"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/labstack/echo/v4"
)

const startupTimeout = 30 * time.Second

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	if err := run(); err != nil {
		slog.Error("News Portal API stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	backend, err := factory.NewBackend(startCtx, cfg.Storage)
	if err != nil {
		return err
	}
	defer backend.Close()

	c, closeCache, err := cache.New(startCtx, cfg.Cache)
	if err != nil {
		return err
	}
	defer closeCache()
	loader := cache.NewLoader(c)

	health := pkgserver.NewCompositeHealthChecker(backend.Health, cache.HealthChecker(c))
	s := server.New(cfg.Server, health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*").
		SetupMetrics("/metrics")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "News Portal API is running")
	})

	logger := slog.Default()
	bus := tasks.NewBus(logger)
	defer func() { _ = bus.Close() }()

	worker, err := tasks.NewWorker(bus, backend.Stores.ArticleCounts, backend.Stores.Keywords, watermill.NewSlogLogger(logger))
	if err != nil {
		return err
	}
	if err := worker.Start(s.Context()); err != nil {
		return err
	}
	// closed after Start returns, once in-flight requests have drained
	defer func() { _ = worker.Close() }()

	dispatcher := tasks.NewDispatcher(bus)
	stores := backend.Stores

	for _, r := range []router.Binder{
		router.NewArticleRouter(s.Echo, service.NewArticleService(stores, dispatcher, loader)),
		router.NewSectionRouter(s.Echo, service.NewSectionService(stores, dispatcher, loader)),
		router.NewChannelRouter(s.Echo, service.NewChannelService(stores), service.NewKeywordService(stores)),
	} {
		r.Bind()
	}

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	return s.Start()
}
