package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_judge/internal/shared/result"
)

var errInternal = errors.New("internal server error")

// Recovery はハンドラー内のpanicを捕捉し、共通エンベロープで500を返します。
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(RequestIDKey),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, result.Fail[any](errInternal))
			}
		}()
		c.Next()
	}
}
