package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/luahn/gonggu-order-go/internal/config"
	"github.com/luahn/gonggu-order-go/internal/constants"
	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/luahn/gonggu-order-go/internal/feed"
	"github.com/luahn/gonggu-order-go/internal/service"
	"github.com/luahn/gonggu-order-go/internal/service/cache"
	"github.com/luahn/gonggu-order-go/internal/service/catalog"
	"go.uber.org/zap"
)

// Dependencies carries everything the intake bot needs, assembled by
// app.Build.
type Dependencies struct {
	Config     *config.Config
	Logger     *zap.Logger
	Feed       *feed.WebSocket
	FeedClient *feed.Client
	Catalog    *catalog.Service
	Cache      *cache.CacheService
	Analyzer   *service.Analyzer

	// Scraper is optional; when present, Backfill can recover comments
	// posted while the feed was down.
	Scraper *service.ScraperService
}

// Bot subscribes to the comment feed and turns each incoming comment into
// ranked order suggestions, optionally replying with a summary.
type Bot struct {
	deps        *Dependencies
	unsubscribe func()
}

func NewBot(deps *Dependencies) (*Bot, error) {
	if deps == nil {
		return nil, fmt.Errorf("dependencies must not be nil")
	}
	if deps.Analyzer == nil || deps.Catalog == nil || deps.Feed == nil {
		return nil, fmt.Errorf("analyzer, catalog, and feed are required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Bot{deps: deps}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	b.unsubscribe = b.deps.Feed.OnComment(func(event *feed.CommentEvent) {
		b.handleComment(ctx, event)
	})

	if err := b.deps.Feed.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect comment feed: %w", err)
	}

	if b.deps.FeedClient != nil && !b.deps.FeedClient.Ping(ctx) {
		b.deps.Logger.Warn("Feed REST endpoint not responding; replies may fail")
	}
	if b.deps.Cache != nil {
		if err := b.deps.Cache.Ping(ctx); err != nil {
			b.deps.Logger.Warn("Redis not responding; running uncached", zap.Error(err))
		}
	}

	b.deps.Logger.Info("Order intake bot started")

	<-ctx.Done()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	if b.unsubscribe != nil {
		b.unsubscribe()
	}
	return b.deps.Feed.Disconnect()
}

// Backfill scrapes a post's existing comments and batch-analyzes them,
// returning predicted order volume per product. Used to recover orders
// placed while the live feed was down.
func (b *Bot) Backfill(ctx context.Context, postID string) (*domain.BatchResult, error) {
	if b.deps.Scraper == nil {
		return nil, fmt.Errorf("scraper is not configured")
	}

	comments, err := b.deps.Scraper.FetchComments(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape comments: %w", err)
	}

	products, err := b.deps.Catalog.ProductsForPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	result := b.deps.Analyzer.AnalyzeComments(comments, products, nil)

	for _, tally := range result.CountsByProduct {
		b.deps.Logger.Info("Backfill tally",
			zap.String("post_id", postID),
			zap.Int("item_number", tally.ItemNumber),
			zap.String("product", tally.ProductName),
			zap.Int("predicted_quantity", tally.PredictedQuantity),
			zap.Int("comments", len(tally.Comments)),
		)
	}

	return result, nil
}

func (b *Bot) handleComment(ctx context.Context, event *feed.CommentEvent) {
	logger := b.deps.Logger.With(
		zap.String("post_id", event.PostID),
		zap.String("comment_id", event.CommentID),
	)

	text := strings.TrimSpace(event.Text)
	if text == "" {
		return
	}
	if len([]rune(text)) > constants.InputLimits.MaxCommentLength {
		logger.Debug("Comment too long, skipping")
		return
	}

	products, err := b.deps.Catalog.ProductsForPost(ctx, event.PostID)
	if err != nil {
		logger.Error("Failed to load catalog", zap.Error(err))
		return
	}
	if len(products) == 0 {
		logger.Debug("No catalog for post, skipping")
		return
	}

	var suggestions []*domain.Suggestion
	cached := false
	if b.deps.Cache != nil {
		suggestions, cached, err = b.deps.Cache.GetSuggestions(ctx, event.PostID, text)
		if err != nil {
			logger.Warn("Suggestion cache lookup failed", zap.Error(err))
		}
	}
	if !cached {
		suggestions = b.deps.Analyzer.AnalyzeCommentMulti(text, products, nil)
		if b.deps.Cache != nil {
			if err := b.deps.Cache.SetSuggestions(ctx, event.PostID, text, suggestions); err != nil {
				logger.Warn("Failed to cache analysis", zap.Error(err))
			}
		}
	}

	logger.Info("Comment analyzed",
		zap.Int("suggestions", len(suggestions)),
		zap.Bool("from_cache", cached),
	)

	if len(suggestions) == 0 || !b.deps.Config.Bot.ReplyEnabled || b.deps.FeedClient == nil {
		return
	}

	replyCtx, cancel := context.WithTimeout(ctx, b.deps.Config.Bot.ReplyTimeout)
	defer cancel()

	message := FormatSuggestions(event.Author, suggestions)
	if err := b.deps.FeedClient.PostReply(replyCtx, event.PostID, message); err != nil {
		logger.Error("Failed to post order summary", zap.Error(err))
	}
}
