// Package twelvedata provides a client for the Twelve Data stock market API.
package twelvedata

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds configuration for the Twelve Data API client.
type Config struct {
	TwelveDataAPIKey string        `env:"TWELVE_DATA_API_KEY"`                                         // API key for authentication
	BaseURL          string        `env:"TWELVE_DATA_BASE_URL" envDefault:"https://api.twelvedata.com"` // Base URL for the API
	Timeout          time.Duration `env:"TWELVE_DATA_TIMEOUT" envDefault:"10s"`                        // HTTP request timeout
	RatePerMinute    int           `env:"TWELVE_DATA_RATE_PER_MINUTE" envDefault:"8"`                  // Outbound calls allowed per minute (free plan: 8)
}

// LoadConfig loads Twelve Data configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
