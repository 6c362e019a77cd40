package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"stock_judge/internal/app/config"
	"stock_judge/internal/app/di"
	"stock_judge/internal/app/router"
	forexhandler "stock_judge/internal/feature/forex/transport/handler"
	forexusecase "stock_judge/internal/feature/forex/usecase"
	judgehandler "stock_judge/internal/feature/judge/transport/handler"
	judgeusecase "stock_judge/internal/feature/judge/usecase"
	quotehandler "stock_judge/internal/feature/quote/transport/handler"
	quoteusecase "stock_judge/internal/feature/quote/usecase"
	"stock_judge/internal/platform/http/handler"
	infraredis "stock_judge/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	gin.SetMode(cfg.GinMode)

	// Redis（任意）
	var rdb *redisv9.Client
	redisCfg, err := infraredis.LoadConfig()
	if err != nil {
		slog.Error("invalid redis configuration", "error", err)
		os.Exit(1)
	}
	if tmp, err := infraredis.NewRedisClient(context.Background(), redisCfg); err != nil {
		if !errors.Is(err, infraredis.ErrNotConfigured) {
			slog.Warn("Redis unavailable. Running without cache.", "error", err)
		}
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("Failed to close Redis client", "error", err)
			}
		}()
	}

	// Repository
	market, err := di.NewMarket(cfg.MarketProvider, rdb, cfg.QuoteCacheTTL)
	if err != nil {
		slog.Error("failed to build market repository", "error", err)
		os.Exit(1)
	}
	rates, err := di.NewRates(rdb, cfg.ForexCacheTTL)
	if err != nil {
		slog.Error("failed to build rate repository", "error", err)
		os.Exit(1)
	}

	// Usecase
	quoteUC := quoteusecase.NewQuoteUsecase(market, cfg.QuoteLookbackDays)
	forexUC := forexusecase.NewForexUsecase(rates, cfg.ForexBase, cfg.ForexTarget)
	judgeUC := judgeusecase.NewJudgeUsecase(quoteUC, forexUC, cfg.JudgeDefaultSymbol)

	// ルータ生成
	r := router.NewRouter(cfg, router.Handlers{
		Health: handler.NewHealthHandler(rdb),
		Quote:  quotehandler.NewQuoteHandler(quoteUC),
		Forex:  forexhandler.NewForexHandler(forexUC),
		Judge:  judgehandler.NewJudgeHandler(judgeUC),
	})

	slog.Info("server starting", "addr", cfg.Addr(), "market_provider", cfg.MarketProvider, "cache", rdb != nil)
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
