// Package middleware はすべてのルートに共通するginミドルウェアを提供します。
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader はリクエストIDを受け渡すヘッダー名です。
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey はgin.ContextにリクエストIDを保存するキーです。
	RequestIDKey = "request_id"
)

// RequestID はクライアントから渡された X-Request-ID を引き継ぎ、無ければUUIDを生成します。
// IDはレスポンスヘッダーとgin.Contextの両方に設定されます。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
