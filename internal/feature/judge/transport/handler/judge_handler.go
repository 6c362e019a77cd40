// Package handler はjudgeフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_judge/internal/feature/judge/domain/entity"
	"stock_judge/internal/feature/judge/transport/http/dto"
)

// JudgeUsecase は判定ユースケースのインターフェースを定義します。
type JudgeUsecase interface {
	Judge(ctx context.Context, symbol string) entity.Judgement
}

// JudgeHandler は判定のHTTPリクエストを処理します。
type JudgeHandler struct {
	uc JudgeUsecase
}

// NewJudgeHandler は指定されたusecaseでJudgeHandlerの新しいインスタンスを生成します。
func NewJudgeHandler(uc JudgeUsecase) *JudgeHandler {
	return &JudgeHandler{uc: uc}
}

// GetJudge は株価・指標・為替レートと為替コメントをまとめて返します。
// 部分的な失敗はフィールドごとに報告されるため、常に200を返します。
//
// エンドポイント例:
// GET /judge?symbol=7203.T
func (h *JudgeHandler) GetJudge(c *gin.Context) {
	j := h.uc.Judge(c.Request.Context(), c.Query("symbol"))
	c.JSON(http.StatusOK, dto.FromEntity(j))
}
