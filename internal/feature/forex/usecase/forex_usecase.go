// Package usecase は為替レート取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"strings"

	"stock_judge/internal/feature/forex/domain/entity"
	"stock_judge/internal/shared/round"
)

const (
	// DefaultBase は既定の基準通貨です。
	DefaultBase = "USD"
	// DefaultTarget は既定の対象通貨です。
	DefaultTarget = "JPY"
	// ratePlaces はレートの丸め桁数です。
	ratePlaces = 3
)

// RateRepository は為替レートを取得するリポジトリのインターフェイスです。
type RateRepository interface {
	GetPair(ctx context.Context, base, target string) (entity.Rate, error)
}

// ForexUsecase は固定通貨ペアのレート取得ユースケースを定義します。
type ForexUsecase struct {
	rates  RateRepository
	base   string
	target string
}

// NewForexUsecase は新しいForexUsecaseを生成します。
// base/targetが空の場合はUSD/JPYを使用します。
func NewForexUsecase(rates RateRepository, base, target string) *ForexUsecase {
	base = strings.ToUpper(strings.TrimSpace(base))
	target = strings.ToUpper(strings.TrimSpace(target))
	if base == "" {
		base = DefaultBase
	}
	if target == "" {
		target = DefaultTarget
	}
	return &ForexUsecase{rates: rates, base: base, target: target}
}

// GetRate は設定された通貨ペアのレートを取得し、小数点以下3桁に丸めて返します。
func (fu *ForexUsecase) GetRate(ctx context.Context) (entity.Rate, error) {
	r, err := fu.rates.GetPair(ctx, fu.base, fu.target)
	if err != nil {
		return entity.Rate{}, err
	}
	r.Rate = round.To(r.Rate, ratePlaces)
	return r, nil
}
