// Package dto defines data transfer objects for the Yahoo Finance chart API.
package dto

// ChartResponse is the top-level container of /v8/finance/chart/{symbol}.
type ChartResponse struct {
	Chart ChartData `json:"chart"`
}

// ChartData holds either results or an error.
type ChartData struct {
	Result []Result    `json:"result"`
	Error  *ChartError `json:"error"`
}

// ChartError is returned for unknown symbols and bad parameters.
type ChartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Result is one symbol's series.
type Result struct {
	Meta       Meta       `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

// Meta carries exchange information for the series.
type Meta struct {
	Symbol               string `json:"symbol"`
	Currency             string `json:"currency"`
	ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	GMTOffset            int    `json:"gmtoffset"`
}

// Indicators wraps the OHLCV arrays.
type Indicators struct {
	Quote []Quote `json:"quote"`
}

// Quote holds parallel OHLCV arrays; entries are null on non-trading rows.
type Quote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}
