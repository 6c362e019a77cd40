// Package entity defines the domain models for the quote feature.
package entity

import "time"

// Bar represents one daily OHLCV (Open, High, Low, Close, Volume) bar
// for a stock symbol.
type Bar struct {
	Symbol string    // Stock ticker symbol (e.g., "AAPL", "7203.T")
	Time   time.Time // Trading day of this bar
	Open   float64   // Opening price
	High   float64   // Highest price during the day
	Low    float64   // Lowest price during the day
	Close  float64   // Closing price
	Volume int64     // Trading volume
}
