// Package entity defines the domain models for the judge feature.
package entity

import (
	forexentity "stock_judge/internal/feature/forex/domain/entity"
	quoteentity "stock_judge/internal/feature/quote/domain/entity"
	"stock_judge/internal/shared/result"
)

// Judgement combines a stock quote and the exchange rate into one view.
// Stock and Forex succeed or fail independently of each other.
type Judgement struct {
	Symbol          string
	Stock           result.Result[quoteentity.Quote]
	Forex           result.Result[forexentity.Rate]
	ExchangeComment string
}

// RateValue returns the exchange rate when the forex part succeeded.
func (j Judgement) RateValue() *float64 {
	r, ok := j.Forex.Value()
	if !ok {
		return nil
	}
	v := r.Rate
	return &v
}
