package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_judge/internal/app/config"
	forexhandler "stock_judge/internal/feature/forex/transport/handler"
	judgehandler "stock_judge/internal/feature/judge/transport/handler"
	quotehandler "stock_judge/internal/feature/quote/transport/handler"
	"stock_judge/internal/platform/http/handler"
	"stock_judge/internal/platform/http/middleware"
	"stock_judge/internal/shared/result"
)

var errRouteNotFound = errors.New("route not found")

// Handlers はルーターに登録するハンドラー群です。
type Handlers struct {
	Health *handler.HealthHandler
	Quote  *quotehandler.QuoteHandler
	Forex  *forexhandler.ForexHandler
	Judge  *judgehandler.JudgeHandler
}

// NewRouter はミドルウェアとエンドポイントを登録したginエンジンを生成します。
// レート制限が有効な場合、/healthz 以外のルートに適用されます。
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	r := gin.New()

	// 共通ミドルウェア（LoggerはRecoveryの外側）
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery(), middleware.CORS(cfg.Origins))

	// 導通確認用（レート制限の対象外）
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)

	api := r.Group("/")
	if cfg.RateLimitEnabled {
		api.Use(middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	}
	{
		// 株価・RSI・移動平均
		api.GET("/stock", h.Quote.GetStock)
		// USD/JPY
		api.GET("/forex", h.Forex.GetForex)
		// 株価と為替の総合判定
		api.GET("/judge", h.Judge.GetJudge)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, result.Fail[any](errRouteNotFound))
	})

	return r
}
