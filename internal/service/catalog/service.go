package catalog

import (
	"context"

	"github.com/luahn/gonggu-order-go/internal/domain"
	"github.com/luahn/gonggu-order-go/internal/service/cache"
	"go.uber.org/zap"
)

// Service is the read-through catalog supplier: Redis first, Postgres on
// miss. Cache failures degrade to direct database reads.
type Service struct {
	repo   *Repository
	cache  *cache.CacheService
	logger *zap.Logger
}

func NewService(repo *Repository, cacheSvc *cache.CacheService, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cacheSvc,
		logger: logger,
	}
}

// ProductsForPost hands the engine a fresh in-memory catalog for one post.
func (s *Service) ProductsForPost(ctx context.Context, postID string) ([]*domain.Product, error) {
	if s.cache != nil {
		if products, err := s.cache.GetCatalog(ctx, postID); err == nil && products != nil {
			s.logger.Debug("Catalog cache hit", zap.String("post_id", postID))
			return products, nil
		}
	}

	products, err := s.repo.FindByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && len(products) > 0 {
		if err := s.cache.SetCatalog(ctx, postID, products); err != nil {
			s.logger.Warn("Failed to cache catalog",
				zap.String("post_id", postID),
				zap.Error(err),
			)
		}
	}

	s.logger.Debug("Catalog loaded from PostgreSQL",
		zap.String("post_id", postID),
		zap.Int("products", len(products)),
	)

	return products, nil
}

// Invalidate drops the cached catalog after a seller edits the post.
func (s *Service) Invalidate(ctx context.Context, postID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.InvalidateCatalog(ctx, postID)
}
