// Package config はサーバー全体の設定を環境変数から読み込みます。
// プロバイダー固有の設定は各アダプターパッケージのLoadConfigが扱います。
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	ProviderYahoo      = "yahoo"
	ProviderTwelveData = "twelvedata"
)

// Config はHTTPサーバーとユースケースの設定です。
type Config struct {
	Port     string   `env:"PORT" envDefault:"8080"`
	GinMode  string   `env:"GIN_MODE" envDefault:"release"`
	LogLevel string   `env:"LOG_LEVEL" envDefault:"info"`
	Origins  []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	RateLimitEnabled bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRPS     float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst   int     `env:"RATE_LIMIT_BURST" envDefault:"15"`

	JudgeDefaultSymbol string        `env:"JUDGE_DEFAULT_SYMBOL" envDefault:"7203.T"`
	MarketProvider     string        `env:"MARKET_PROVIDER" envDefault:"yahoo"`
	QuoteLookbackDays  int           `env:"QUOTE_LOOKBACK_DAYS" envDefault:"30"`
	QuoteCacheTTL      time.Duration `env:"QUOTE_CACHE_TTL" envDefault:"5m"`
	ForexBase          string        `env:"FOREX_BASE" envDefault:"USD"`
	ForexTarget        string        `env:"FOREX_TARGET" envDefault:"JPY"`
	ForexCacheTTL      time.Duration `env:"FOREX_CACHE_TTL" envDefault:"30m"`
}

// LoadConfig は環境変数からConfigを読み込み、検証します。
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg.MarketProvider = strings.ToLower(strings.TrimSpace(cfg.MarketProvider))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate は設定値の組み合わせを検証します。
func (c Config) Validate() error {
	var errs []error
	switch c.MarketProvider {
	case ProviderYahoo, ProviderTwelveData:
	default:
		errs = append(errs, fmt.Errorf("config: unknown MARKET_PROVIDER %q", c.MarketProvider))
	}
	if c.QuoteLookbackDays <= 0 {
		errs = append(errs, fmt.Errorf("config: QUOTE_LOOKBACK_DAYS must be positive, got %d", c.QuoteLookbackDays))
	}
	if c.RateLimitEnabled && c.RateLimitRPS <= 0 {
		errs = append(errs, fmt.Errorf("config: RATE_LIMIT_RPS must be positive, got %g", c.RateLimitRPS))
	}
	if strings.TrimSpace(c.JudgeDefaultSymbol) == "" {
		errs = append(errs, errors.New("config: JUDGE_DEFAULT_SYMBOL must not be empty"))
	}
	return errors.Join(errs...)
}

// Addr はginのRunに渡すlistenアドレスを返します。
func (c Config) Addr() string {
	return ":" + c.Port
}

// SlogLevel はLOG_LEVELをslog.Levelに変換します。未知の値はInfoとして扱います。
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
