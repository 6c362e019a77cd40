// Package handler はquoteフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_judge/internal/feature/quote/domain"
	"stock_judge/internal/feature/quote/domain/entity"
	"stock_judge/internal/feature/quote/transport/http/dto"
	"stock_judge/internal/shared/result"
)

// QuoteUsecase は株価取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	GetQuote(ctx context.Context, symbol string) (entity.Quote, error)
}

// QuoteHandler は株価データのHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetStock は銘柄コードを受け取り、株価・出来高・RSI・移動平均をJSONで返します。
//
// エンドポイント例:
// GET /stock?symbol=7203.T
func (h *QuoteHandler) GetStock(c *gin.Context) {
	symbol := c.Query("symbol")

	q, err := h.uc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		status := StatusFor(err)
		if status >= http.StatusInternalServerError {
			slog.Error("failed to get quote", "symbol", symbol, "error", err)
		}
		c.JSON(status, result.Fail[dto.QuoteResponse](err))
		return
	}

	c.JSON(http.StatusOK, result.OK(dto.FromEntity(q)))
}

// StatusFor はquoteフィーチャーのエラーをHTTPステータスに変換します。
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrEmptySymbol):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSymbolNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
