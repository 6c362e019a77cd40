// Package handler はforexフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_judge/internal/feature/forex/domain"
	"stock_judge/internal/feature/forex/domain/entity"
	"stock_judge/internal/feature/forex/transport/http/dto"
	"stock_judge/internal/shared/result"
)

// ForexUsecase は為替レート取得のユースケースインターフェースを定義します。
type ForexUsecase interface {
	GetRate(ctx context.Context) (entity.Rate, error)
}

// ForexHandler は為替レートのHTTPリクエストを処理します。
type ForexHandler struct {
	uc ForexUsecase
}

// NewForexHandler は指定されたusecaseでForexHandlerの新しいインスタンスを生成します。
func NewForexHandler(uc ForexUsecase) *ForexHandler {
	return &ForexHandler{uc: uc}
}

// GetForex はUSD→JPYのレートをJSONで返します。
//
// エンドポイント例:
// GET /forex
func (h *ForexHandler) GetForex(c *gin.Context) {
	r, err := h.uc.GetRate(c.Request.Context())
	if err != nil {
		slog.Error("failed to get exchange rate", "error", err)
		c.JSON(StatusFor(err), result.Fail[dto.RateResponse](err))
		return
	}
	c.JSON(http.StatusOK, result.OK(dto.FromEntity(r)))
}

// StatusFor はforexフィーチャーのエラーをHTTPステータスに変換します。
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrAPIKeyMissing):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
