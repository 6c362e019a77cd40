package di

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_judge/internal/feature/forex/usecase"
	"stock_judge/internal/platform/cache"
	"stock_judge/internal/platform/externalapi/exchangerate"
	infrahttp "stock_judge/internal/platform/http"
)

// NewRates creates the RateRepository backed by the exchange-rate provider.
// A missing API key is only warned about here; calls fail with ErrAPIKeyMissing.
func NewRates(rdb *redis.Client, ttl time.Duration) (usecase.RateRepository, error) {
	cfg, err := exchangerate.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("exchangerate config: %w", err)
	}
	if cfg.APIKey == "" {
		slog.Warn("EXCHANGE_RATE_API_KEY is not set. /forex will report an error until it is configured.")
	}

	var rates usecase.RateRepository = exchangerate.NewExchangeRateAPI(cfg, infrahttp.NewHTTPClient(cfg.Timeout))
	if rdb != nil {
		return cache.NewCachingRateRepository(rdb, ttl, rates, "forex"), nil
	}
	return rates, nil
}
