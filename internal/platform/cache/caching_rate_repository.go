package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_judge/internal/feature/forex/domain/entity"
	"stock_judge/internal/feature/forex/usecase"
)

// CachingRateRepository decorates a RateRepository with Redis caching.
type CachingRateRepository struct {
	inner     usecase.RateRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.RateRepository = (*CachingRateRepository)(nil)

// NewCachingRateRepository decorates a RateRepository with Redis caching.
// If ttl is 0, it defaults to 30 minutes. If namespace is empty, it uses "forex".
func NewCachingRateRepository(rdb *redis.Client, ttl time.Duration, inner usecase.RateRepository, namespace string) *CachingRateRepository {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if namespace == "" {
		namespace = "forex"
	}
	return &CachingRateRepository{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace}
}

// GetPair retrieves the rate, checking cache first then falling back to the provider.
func (c *CachingRateRepository) GetPair(ctx context.Context, base, target string) (entity.Rate, error) {
	if c.rdb == nil {
		return c.inner.GetPair(ctx, base, target)
	}

	key := fmt.Sprintf("%s:%s:%s", c.namespace, safe(base), safe(target))
	return readThrough(ctx, c.rdb, key, c.ttl,
		func(ctx context.Context) (entity.Rate, error) {
			return c.inner.GetPair(ctx, base, target)
		},
		nil,
	)
}
