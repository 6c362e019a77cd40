package middleware

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"stock_judge/internal/shared/result"
)

var errRateLimited = errors.New("rate limit exceeded")

// IPRateLimiter はクライアントIPごとのトークンバケットを保持します。
// 一定時間アクセスのないIPのリミッターはgo-cacheにより破棄されます。
type IPRateLimiter struct {
	limiters *cache.Cache
	rps      rate.Limit
	burst    int
}

// NewIPRateLimiter はIPごとに rps/burst のリミッターを割り当てるIPRateLimiterを作成します。
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &IPRateLimiter{
		limiters: cache.New(10*time.Minute, 20*time.Minute),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *IPRateLimiter) limiterFor(ip string) *rate.Limiter {
	if v, found := l.limiters.Get(ip); found {
		return v.(*rate.Limiter)
	}
	lim := rate.NewLimiter(l.rps, l.burst)
	// 同時到着時は先に登録された方を使う
	if err := l.limiters.Add(ip, lim, cache.DefaultExpiration); err != nil {
		if v, found := l.limiters.Get(ip); found {
			return v.(*rate.Limiter)
		}
	}
	return lim
}

// Middleware は上限を超えたリクエストを429で拒否するginミドルウェアを返します。
func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	retryAfter := "1"
	if l.rps > 0 {
		retryAfter = strconv.Itoa(int(math.Ceil(1 / float64(l.rps))))
	}
	return func(c *gin.Context) {
		if !l.limiterFor(c.ClientIP()).Allow() {
			c.Header("Retry-After", retryAfter)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, result.Fail[any](errRateLimited))
			return
		}
		c.Next()
	}
}
