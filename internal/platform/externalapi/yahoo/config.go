// Package yahoo provides a client for the Yahoo Finance chart API.
package yahoo

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds configuration for the Yahoo Finance chart client.
type Config struct {
	BaseURL   string        `env:"YAHOO_BASE_URL" envDefault:"https://query1.finance.yahoo.com/v8/finance/chart"`
	Timeout   time.Duration `env:"YAHOO_TIMEOUT" envDefault:"10s"`
	UserAgent string        `env:"YAHOO_USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`
}

// LoadConfig loads Yahoo configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
