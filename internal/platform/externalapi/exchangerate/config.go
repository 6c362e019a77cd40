// Package exchangerate provides a client for the ExchangeRate-API pair endpoint.
package exchangerate

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds configuration for the exchange-rate provider.
// The API key has no default and must be supplied by the environment.
type Config struct {
	APIKey  string        `env:"EXCHANGE_RATE_API_KEY"`
	BaseURL string        `env:"EXCHANGE_RATE_BASE_URL" envDefault:"https://v6.exchangerate-api.com/v6"`
	Timeout time.Duration `env:"EXCHANGE_RATE_TIMEOUT" envDefault:"10s"`
}

// LoadConfig loads exchange-rate configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
