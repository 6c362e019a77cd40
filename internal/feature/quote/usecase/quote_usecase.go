// Package usecase は株価取得とテクニカル指標算出のビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"stock_judge/internal/feature/quote/domain"
	"stock_judge/internal/feature/quote/domain/entity"
)

const (
	// DefaultLookbackDays は取得対象とする暦日数のデフォルト値です。
	DefaultLookbackDays = 30
	// RSIPeriod はRSIの計算期間です。
	RSIPeriod = 14
	// ShortMAWindow は短期移動平均の期間です。
	ShortMAWindow = 5
	// LongMAWindow は長期移動平均の期間です。
	LongMAWindow = 25
)

// MarketRepository は日足データを取得するリポジトリのインターフェイスです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type MarketRepository interface {
	// GetDailyBars は [from, to] の期間の日足を返します。順序は実装依存です。
	GetDailyBars(ctx context.Context, symbol string, from, to time.Time) ([]entity.Bar, error)
}

// QuoteUsecase は最新株価と指標の取得ユースケースを定義します。
type QuoteUsecase struct {
	market       MarketRepository
	lookbackDays int
	now          func() time.Time
}

// NewQuoteUsecase は新しいQuoteUsecaseを生成します。
// lookbackDays が0以下の場合はDefaultLookbackDaysを使用します。
func NewQuoteUsecase(market MarketRepository, lookbackDays int) *QuoteUsecase {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &QuoteUsecase{market: market, lookbackDays: lookbackDays, now: time.Now}
}

// GetQuote は指定銘柄の直近の日足を取得し、終値・出来高・RSI・移動平均を返します。
// データが1件もない場合は domain.ErrSymbolNotFound を返します。
func (qu *QuoteUsecase) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return entity.Quote{}, domain.ErrEmptySymbol
	}

	to := qu.now()
	from := to.AddDate(0, 0, -qu.lookbackDays)

	bars, err := qu.market.GetDailyBars(ctx, symbol, from, to)
	if err != nil {
		return entity.Quote{}, err
	}
	if len(bars) == 0 {
		return entity.Quote{}, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, symbol)
	}

	// 古い順に並べ替え（プロバイダーによっては新しい順で返るため）
	bars = slices.Clone(bars)
	slices.SortStableFunc(bars, func(a, b entity.Bar) int {
		return a.Time.Compare(b.Time)
	})

	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	ind, err := computeIndicators(closes)
	if err != nil {
		return entity.Quote{}, err
	}

	latest := bars[len(bars)-1]
	return entity.Quote{
		Symbol: symbol,
		AsOf:   latest.Time,
		Price:  latest.Close,
		Volume: latest.Volume,
		RSI:    ind.rsi,
		MA5:    ind.ma5,
		MA25:   ind.ma25,
	}, nil
}
