package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/luahn/gonggu-order-go/internal/constants"
	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/luahn/gonggu-order-go/internal/service/cache"
	"github.com/luahn/gonggu-order-go/pkg/errors"
	"go.uber.org/zap"
)

// ScraperService backfills comments by parsing a post's public page when
// the live feed was offline. Results are cached so repeated backfills of
// the same post stay cheap.
type ScraperService struct {
	httpClient *http.Client
	cache      *cache.CacheService
	logger     *zap.Logger
	baseURL    string
}

const scraperTimeout = 15 * time.Second

func NewScraperService(baseURL string, cacheSvc *cache.CacheService, logger *zap.Logger) *ScraperService {
	return &ScraperService{
		httpClient: &http.Client{
			Timeout: scraperTimeout,
		},
		cache:   cacheSvc,
		logger:  logger,
		baseURL: baseURL,
	}
}

// FetchComments loads and parses every comment under a post page.
func (s *ScraperService) FetchComments(ctx context.Context, postID string) ([]domain.Comment, error) {
	cacheKey := fmt.Sprintf("gonggu:scrape:%s", postID)

	if s.cache != nil {
		var cached []domain.Comment
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			s.logger.Debug("Scraper cache hit", zap.String("post_id", postID))
			return cached, nil
		}
	}

	url := fmt.Sprintf("%s/posts/%s", s.baseURL, postID)
	s.logger.Info("Scraping post comments (backfill)",
		zap.String("post_id", postID),
		zap.String("url", url),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewAppError("failed to create scrape request", errors.CodeScraper, map[string]any{
			"url": url,
		}).WithCause(err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewAppError("scrape request failed", errors.CodeScraper, map[string]any{
			"url": url,
		}).WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(
			fmt.Sprintf("scrape returned %s", resp.Status),
			errors.CodeScraper,
			map[string]any{"url": url},
		)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, errors.NewAppError("failed to parse post page", errors.CodeScraper, map[string]any{
			"url": url,
		}).WithCause(err)
	}

	comments := ParseComments(doc)

	if s.cache != nil && len(comments) > 0 {
		if err := s.cache.Set(ctx, cacheKey, comments, constants.CacheTTL.ScrapedComments); err != nil {
			s.logger.Warn("Failed to cache scraped comments", zap.Error(err))
		}
	}

	s.logger.Info("Post comments scraped",
		zap.String("post_id", postID),
		zap.Int("comments", len(comments)),
	)

	return comments, nil
}

// ParseComments extracts comment entries from a parsed post page. Exposed
// separately so saved pages can be parsed without a live fetch.
func ParseComments(doc *goquery.Document) []domain.Comment {
	var comments []domain.Comment

	doc.Find(".comment-item").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Find(".comment-text").Text())
		if text == "" {
			return
		}

		comment := domain.Comment{
			Author: strings.TrimSpace(sel.Find(".comment-author").Text()),
			Text:   text,
		}
		if id, ok := sel.Attr("data-comment-id"); ok {
			comment.ID = id
		}

		comments = append(comments, comment)
	})

	return comments
}
