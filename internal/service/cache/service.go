package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/luahn/gonggu-order-go/internal/constants"
	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/luahn/gonggu-order-go/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CacheService wraps Redis for the two things worth caching here: per-post
// product catalogs and per-comment analysis results. A cache miss is never
// an error; callers fall through to Postgres or re-analysis.
type CacheService struct {
	client *redis.Client
	logger *zap.Logger
}

type CacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func NewCacheService(cfg CacheConfig, logger *zap.Logger) (*CacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), constants.RedisConfig.ReadyTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &CacheService{
		client: client,
		logger: logger,
	}, nil
}

// Get unmarshals the value at key into dest. A missing key leaves dest
// untouched and returns (false, nil).
func (c *CacheService) Get(ctx context.Context, key string, dest any) (bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		c.logger.Error("Cache get failed", zap.String("key", key), zap.Error(err))
		return false, errors.NewCacheError("get failed", "get", key, err)
	}

	if dest != nil {
		if err := json.Unmarshal([]byte(value), dest); err != nil {
			c.logger.Error("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
			return false, errors.NewCacheError("unmarshal failed", "get", key, err)
		}
	}

	return true, nil
}

func (c *CacheService) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return errors.NewCacheError("marshal failed", "set", key, err)
	}

	if err := c.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		c.logger.Error("Cache set failed", zap.String("key", key), zap.Error(err))
		return errors.NewCacheError("set failed", "set", key, err)
	}

	return nil
}

func (c *CacheService) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Error("Cache delete failed", zap.Int("keys", len(keys)), zap.Error(err))
		return errors.NewCacheError("delete failed", "del", fmt.Sprintf("%d keys", len(keys)), err)
	}
	return nil
}

// GetCatalog returns the cached product list for a post, or nil on miss.
func (c *CacheService) GetCatalog(ctx context.Context, postID string) ([]*domain.Product, error) {
	var products []*domain.Product
	found, err := c.Get(ctx, catalogKey(postID), &products)
	if err != nil || !found {
		return nil, err
	}
	return products, nil
}

func (c *CacheService) SetCatalog(ctx context.Context, postID string, products []*domain.Product) error {
	return c.Set(ctx, catalogKey(postID), products, constants.CacheTTL.Catalog)
}

func (c *CacheService) InvalidateCatalog(ctx context.Context, postID string) error {
	return c.Del(ctx, catalogKey(postID))
}

// GetSuggestions returns cached analysis results for one comment under one
// post. The comment text is part of the key, so an edited comment is a miss.
func (c *CacheService) GetSuggestions(ctx context.Context, postID, comment string) ([]*domain.Suggestion, bool, error) {
	var suggestions []*domain.Suggestion
	found, err := c.Get(ctx, suggestionKey(postID, comment), &suggestions)
	if err != nil || !found {
		return nil, false, err
	}
	return suggestions, true, nil
}

func (c *CacheService) SetSuggestions(ctx context.Context, postID, comment string, suggestions []*domain.Suggestion) error {
	return c.Set(ctx, suggestionKey(postID, comment), suggestions, constants.CacheTTL.Analysis)
}

func (c *CacheService) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *CacheService) Close() error {
	return c.client.Close()
}

func catalogKey(postID string) string {
	return "gonggu:catalog:" + postID
}

func suggestionKey(postID, comment string) string {
	digest := sha1.Sum([]byte(comment))
	return "gonggu:analysis:" + postID + ":" + hex.EncodeToString(digest[:])
}
