// Package usecase は株価と為替を組み合わせた判定のビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"strings"

	forexentity "stock_judge/internal/feature/forex/domain/entity"
	"stock_judge/internal/feature/judge/domain/entity"
	quoteentity "stock_judge/internal/feature/quote/domain/entity"
	"stock_judge/internal/shared/result"
)

// DefaultSymbol は銘柄未指定時に使用する銘柄コード（トヨタ自動車）です。
const DefaultSymbol = "7203.T"

// QuoteFetcher は株価取得ユースケースの抽象です。
type QuoteFetcher interface {
	GetQuote(ctx context.Context, symbol string) (quoteentity.Quote, error)
}

// RateFetcher は為替レート取得ユースケースの抽象です。
type RateFetcher interface {
	GetRate(ctx context.Context) (forexentity.Rate, error)
}

// JudgeUsecase は株価と為替レートを同一プロセス内で取得し、1つの判定にまとめます。
type JudgeUsecase struct {
	quotes        QuoteFetcher
	rates         RateFetcher
	defaultSymbol string
}

// NewJudgeUsecase は新しいJudgeUsecaseを生成します。
// defaultSymbol が空の場合は DefaultSymbol を使用します。
func NewJudgeUsecase(quotes QuoteFetcher, rates RateFetcher, defaultSymbol string) *JudgeUsecase {
	if strings.TrimSpace(defaultSymbol) == "" {
		defaultSymbol = DefaultSymbol
	}
	return &JudgeUsecase{quotes: quotes, rates: rates, defaultSymbol: defaultSymbol}
}

// Judge は株価→為替の順に取得します。一方が失敗してももう一方の結果は保持されます。
func (ju *JudgeUsecase) Judge(ctx context.Context, symbol string) entity.Judgement {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		symbol = ju.defaultSymbol
	}

	q, err := ju.quotes.GetQuote(ctx, symbol)
	if err != nil {
		slog.Warn("judge: stock part failed", "symbol", symbol, "error", err)
	}
	stock := result.From(q, err)

	r, err := ju.rates.GetRate(ctx)
	if err != nil {
		slog.Warn("judge: forex part failed", "error", err)
	}
	forex := result.From(r, err)

	j := entity.Judgement{
		Symbol: symbol,
		Stock:  stock,
		Forex:  forex,
	}
	j.ExchangeComment = ExchangeComment(j.RateValue())
	return j
}
