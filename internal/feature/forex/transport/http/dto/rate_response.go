// Package dto defines HTTP response DTOs for the forex feature.
package dto

import (
	"time"

	"stock_judge/internal/feature/forex/domain/entity"
)

// RateResponse は為替レートのレスポンスDTOです。
type RateResponse struct {
	Base      string  `json:"base"`
	Target    string  `json:"target"`
	Rate      float64 `json:"rate"`
	UpdatedAt *string `json:"updated_at"`
}

// FromEntity はドメインのRateをレスポンスDTOに変換します。
func FromEntity(r entity.Rate) RateResponse {
	var updated *string
	if !r.UpdatedAt.IsZero() {
		s := r.UpdatedAt.UTC().Format(time.RFC3339)
		updated = &s
	}
	return RateResponse{Base: r.Base, Target: r.Target, Rate: r.Rate, UpdatedAt: updated}
}
