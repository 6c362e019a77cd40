// Package dto defines HTTP response DTOs for the quote feature.
package dto

import "stock_judge/internal/feature/quote/domain/entity"

// QuoteResponse は株価と指標のレスポンスDTOです。
type QuoteResponse struct {
	Symbol string   `json:"symbol"` // 銘柄コード
	AsOf   string   `json:"as_of"`  // 最新日足の日付
	Price  float64  `json:"price"`  // 終値
	Volume int64    `json:"volume"` // 出来高
	RSI    *float64 `json:"rsi"`    // RSI(14)
	MA5    *float64 `json:"ma_5"`   // 5日移動平均
	MA25   *float64 `json:"ma_25"`  // 25日移動平均
}

// FromEntity はドメインのQuoteをレスポンスDTOに変換します。
func FromEntity(q entity.Quote) QuoteResponse {
	asOf := ""
	if !q.AsOf.IsZero() {
		asOf = q.AsOf.UTC().Format("2006-01-02")
	}
	return QuoteResponse{
		Symbol: q.Symbol,
		AsOf:   asOf,
		Price:  q.Price,
		Volume: q.Volume,
		RSI:    q.RSI,
		MA5:    q.MA5,
		MA25:   q.MA25,
	}
}
