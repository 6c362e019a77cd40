package ratelimiter

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiterInterface は、外部API呼び出しの頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	Wait(ctx context.Context) error
}

// RateLimiterは、一定期間あたりの呼び出し回数を制限します。
type RateLimiter struct {
	limiter *rate.Limiter
	limit   int
}

// NewRateLimiterは、interval あたり limit 回まで許可するRateLimiterを生成します。
// limit が0以下の場合は制限なしになります。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	if limit <= 0 || interval <= 0 {
		return &RateLimiter{limiter: rate.NewLimiter(rate.Inf, 0)}
	}
	every := rate.Every(interval / time.Duration(limit))
	return &RateLimiter{limiter: rate.NewLimiter(every, limit), limit: limit}
}

// Waitは上限に達している場合、トークンが補充されるかctxが終了するまで待機します。
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl.limiter.Tokens() < 1 {
		slog.Debug("rate limit reached, waiting", "limit", rl.limit)
	}
	return rl.limiter.Wait(ctx)
}
