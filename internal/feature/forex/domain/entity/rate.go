// Package entity defines the domain models for the forex feature.
package entity

import "time"

// Rate is the conversion rate from Base to Target currency.
type Rate struct {
	Base      string    // e.g. "USD"
	Target    string    // e.g. "JPY"
	Rate      float64   // units of Target per one unit of Base
	UpdatedAt time.Time // provider's last update; zero when unknown
}
