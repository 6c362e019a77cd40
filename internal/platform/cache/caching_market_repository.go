// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_judge/internal/feature/quote/domain/entity"
	"stock_judge/internal/feature/quote/usecase"
)

// CachingMarketRepository decorates a MarketRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying provider.
type CachingMarketRepository struct {
	inner     usecase.MarketRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.MarketRepository = (*CachingMarketRepository)(nil)

// NewCachingMarketRepository decorates a MarketRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "quotes".
func NewCachingMarketRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MarketRepository, namespace string) *CachingMarketRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingMarketRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// GetDailyBars retrieves bars, checking cache first then falling back to the provider.
// Empty series are not cached.
func (c *CachingMarketRepository) GetDailyBars(ctx context.Context, symbol string, from, to time.Time) ([]entity.Bar, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.GetDailyBars(ctx, symbol, from, to)
	}

	return readThrough(ctx, c.rdb, c.cacheKey(symbol, from, to), c.ttl,
		func(ctx context.Context) ([]entity.Bar, error) {
			return c.inner.GetDailyBars(ctx, symbol, from, to)
		},
		func(bars []entity.Bar) bool { return len(bars) > 0 },
	)
}

// cacheKey generates a cache key for a specific query, at day granularity.
func (c *CachingMarketRepository) cacheKey(symbol string, from, to time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%s",
		c.namespace,
		safe(symbol),
		from.UTC().Format("20060102"),
		to.UTC().Format("20060102"),
	)
}
