package app

import (
	"context"
	"fmt"

	"github.com/luahn/gonggu-order-go/internal/bot"
	"github.com/luahn/gonggu-order-go/internal/config"
	"github.com/luahn/gonggu-order-go/internal/constants"
	"github.com/luahn/gonggu-order-go/internal/feed"
	"github.com/luahn/gonggu-order-go/internal/service"
	"github.com/luahn/gonggu-order-go/internal/service/cache"
	"github.com/luahn/gonggu-order-go/internal/service/catalog"
	"github.com/luahn/gonggu-order-go/internal/service/database"
	"go.uber.org/zap"
)

// Container bundles assembled services for constructing the intake bot.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	botDeps *bot.Dependencies
}

// NewBot instantiates a bot using the pre-built dependency graph.
func (c *Container) NewBot() (*bot.Bot, error) {
	if c == nil || c.botDeps == nil {
		return nil, fmt.Errorf("bot dependencies not initialized")
	}
	return bot.NewBot(c.botDeps)
}

// Build assembles all infrastructure services. Heavy initialization
// (Redis/Postgres) happens here so bot.NewBot stays focused on wiring.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	cacheSvc, err := cache.NewCacheService(cache.CacheConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create cache service: %w", err)
	}
	closers = append(closers, func() {
		_ = cacheSvc.Close()
	})

	postgresSvc, err := database.NewPostgresService(database.PostgresConfig{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres service: %w", err)
	}
	closers = append(closers, func() {
		_ = postgresSvc.Close()
	})

	catalogRepo := catalog.NewRepository(postgresSvc, logger)
	catalogSvc := catalog.NewService(catalogRepo, cacheSvc, logger)

	analyzer := service.NewAnalyzer(logger)

	var scraper *service.ScraperService
	if cfg.Scraper.Enabled {
		scraper = service.NewScraperService(cfg.Scraper.BaseURL, cacheSvc, logger)
	}

	feedWS := feed.NewWebSocket(
		cfg.Feed.WSURL,
		constants.FeedConfig.MaxReconnectAttempts,
		constants.FeedConfig.ReconnectDelay,
		logger,
	)
	feedClient := feed.NewClient(cfg.Feed.BaseURL, logger)

	deps := &bot.Dependencies{
		Config:     cfg,
		Logger:     logger,
		Feed:       feedWS,
		FeedClient: feedClient,
		Catalog:    catalogSvc,
		Cache:      cacheSvc,
		Analyzer:   analyzer,
		Scraper:    scraper,
	}

	return &Container{
		Config:  cfg,
		Logger:  logger,
		botDeps: deps,
	}, nil
}
