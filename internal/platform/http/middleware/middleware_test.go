package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func okHandler(c *gin.Context) { c.String(http.StatusOK, "ok") }

func TestRequestID(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generates id when absent", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestLogger_PassesThrough(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/stock", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/healthz", okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stock?symbol=X", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestIPRateLimiter(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(NewIPRateLimiter(1, 2).Middleware())
	r.GET("/", okHandler)

	send := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1").Code)

	w := send("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "rate limit exceeded", body["error"])

	// 別IPは独立したバケットを持つ
	assert.Equal(t, http.StatusOK, send("10.0.0.2").Code)
}

func TestNewIPRateLimiter_MinBurst(t *testing.T) {
	t.Parallel()

	l := NewIPRateLimiter(5, 0)
	assert.Equal(t, 1, l.burst)
}

func TestCORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		origins    []string
		origin     string
		wantHeader string
	}{
		{"allow all by default", nil, "http://client.test", "*"},
		{"wildcard entry", []string{"*"}, "http://client.test", "*"},
		{"listed origin", []string{"http://app.example.com"}, "http://app.example.com", "http://app.example.com"},
		{"unlisted origin", []string{"http://app.example.com"}, "http://evil.example.com", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := gin.New()
			r.Use(CORS(tt.origins))
			r.GET("/", okHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantHeader, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORS_PreflightAllowsAnyHeaderAndMethod(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(CORS(nil))
	r.GET("/stock", okHandler)

	tests := []struct {
		method  string
		headers string
	}{
		{http.MethodGet, "X-Custom"},
		{http.MethodGet, "Authorization"},
		{http.MethodPost, "Content-Type,X-Custom"},
		{http.MethodDelete, "X-Api-Key"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.method+" "+tt.headers, func(t *testing.T) {
			t.Parallel()

			// Originはリクエストのホスト(example.com)と異なる必要がある
			req := httptest.NewRequest(http.MethodOptions, "/stock", nil)
			req.Header.Set("Origin", "http://client.test")
			req.Header.Set("Access-Control-Request-Method", tt.method)
			req.Header.Set("Access-Control-Request-Headers", tt.headers)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			allowHeaders := strings.Split(w.Header().Get("Access-Control-Allow-Headers"), ",")
			assert.Contains(t, allowHeaders, "*")
			assert.Contains(t, allowHeaders, "Authorization")
			assert.Contains(t, strings.Split(w.Header().Get("Access-Control-Allow-Methods"), ","), tt.method)
		})
	}
}
