// Package dto defines HTTP response DTOs for the judge feature.
package dto

import (
	forexdto "stock_judge/internal/feature/forex/transport/http/dto"
	"stock_judge/internal/feature/judge/domain/entity"
	quotedto "stock_judge/internal/feature/quote/transport/http/dto"
	"stock_judge/internal/shared/result"
)

// JudgeResponse は判定結果のレスポンスDTOです。
//
// stock/forex はそれぞれ独立した成功/失敗エンベロープです。
// price〜usd_jpy は対応する取得が失敗した場合にnullになります。
// error は株価取得のエラーのみを反映します。
type JudgeResponse struct {
	Symbol          string                                `json:"symbol"`
	Stock           result.Result[quotedto.QuoteResponse] `json:"stock"`
	Forex           result.Result[forexdto.RateResponse]  `json:"forex"`
	Price           *float64                              `json:"price"`
	Volume          *int64                                `json:"volume"`
	RSI             *float64                              `json:"rsi"`
	MA5             *float64                              `json:"ma_5"`
	MA25            *float64                              `json:"ma_25"`
	USDJPY          *float64                              `json:"usd_jpy"`
	ExchangeComment string                                `json:"exchange_comment"`
	Error           *string                               `json:"error"`
}

// FromEntity はドメインのJudgementをレスポンスDTOに変換します。
func FromEntity(j entity.Judgement) JudgeResponse {
	out := JudgeResponse{
		Symbol:          j.Symbol,
		Stock:           result.Map(j.Stock, quotedto.FromEntity),
		Forex:           result.Map(j.Forex, forexdto.FromEntity),
		USDJPY:          j.RateValue(),
		ExchangeComment: j.ExchangeComment,
		Error:           j.Stock.ErrPtr(),
	}
	if q, ok := j.Stock.Value(); ok {
		price, volume := q.Price, q.Volume
		out.Price = &price
		out.Volume = &volume
		out.RSI = q.RSI
		out.MA5 = q.MA5
		out.MA25 = q.MA25
	}
	return out
}
