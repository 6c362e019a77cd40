package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stock_judge/internal/feature/forex/domain"
	"stock_judge/internal/feature/forex/domain/entity"
	"stock_judge/internal/feature/forex/transport/handler"
)

type mockForexUsecase struct {
	GetRateFunc func(ctx context.Context) (entity.Rate, error)
}

func (m *mockForexUsecase) GetRate(ctx context.Context) (entity.Rate, error) {
	return m.GetRateFunc(ctx)
}

// TestForexHandler_GetForex はGetForexのレスポンス形状とステータスを検証します。
func TestForexHandler_GetForex(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		mockGetRate    func(ctx context.Context) (entity.Rate, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			mockGetRate: func(ctx context.Context) (entity.Rate, error) {
				return entity.Rate{
					Base: "USD", Target: "JPY", Rate: 149.877,
					UpdatedAt: time.Date(2025, 1, 30, 0, 0, 1, 0, time.UTC),
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":{"base":"USD","target":"JPY","rate":149.877,"updated_at":"2025-01-30T00:00:01Z"}}`,
		},
		{
			name: "success without update time",
			mockGetRate: func(ctx context.Context) (entity.Rate, error) {
				return entity.Rate{Base: "USD", Target: "JPY", Rate: 150}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":{"base":"USD","target":"JPY","rate":150,"updated_at":null}}`,
		},
		{
			name: "missing api key",
			mockGetRate: func(ctx context.Context) (entity.Rate, error) {
				return entity.Rate{}, domain.ErrAPIKeyMissing
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"exchange rate api key is not configured"}`,
		},
		{
			name: "provider failure is enveloped",
			mockGetRate: func(ctx context.Context) (entity.Rate, error) {
				return entity.Rate{}, errors.New("exchangerate http 500")
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   `{"error":"exchangerate http 500"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewForexHandler(&mockForexUsecase{GetRateFunc: tt.mockGetRate})

			router := gin.New()
			router.GET("/forex", h.GetForex)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/forex", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
