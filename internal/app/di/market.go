// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_judge/internal/app/config"
	"stock_judge/internal/feature/quote/usecase"
	"stock_judge/internal/platform/cache"
	"stock_judge/internal/platform/externalapi/twelvedata"
	"stock_judge/internal/platform/externalapi/yahoo"
	infrahttp "stock_judge/internal/platform/http"
)

// NewMarket creates the MarketRepository for the named provider.
// If Redis is available, the provider is wrapped in a read-through cache.
func NewMarket(provider string, rdb *redis.Client, ttl time.Duration) (usecase.MarketRepository, error) {
	var market usecase.MarketRepository
	switch provider {
	case config.ProviderYahoo:
		cfg, err := yahoo.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("yahoo config: %w", err)
		}
		market = yahoo.NewYahooMarket(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	case config.ProviderTwelveData:
		cfg, err := twelvedata.LoadConfig()
		if err != nil {
			return nil, fmt.Errorf("twelvedata config: %w", err)
		}
		market = twelvedata.NewTwelveDataMarket(cfg, infrahttp.NewHTTPClient(cfg.Timeout), nil)
	default:
		return nil, fmt.Errorf("unknown market provider %q", provider)
	}

	if rdb != nil {
		return cache.NewCachingMarketRepository(rdb, ttl, market, "quotes"), nil
	}
	return market, nil
}
