package entity

import "time"

// Quote is the latest price of a symbol together with the technical
// indicators derived from its recent closing prices.
//
// RSI, MA5 and MA25 are nil when the history is too short for the window.
type Quote struct {
	Symbol string
	AsOf   time.Time // time of the most recent bar
	Price  float64
	Volume int64
	RSI    *float64
	MA5    *float64
	MA25   *float64
}
