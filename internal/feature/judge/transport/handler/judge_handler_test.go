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

	forexentity "stock_judge/internal/feature/forex/domain/entity"
	"stock_judge/internal/feature/judge/domain/entity"
	"stock_judge/internal/feature/judge/transport/handler"
	"stock_judge/internal/feature/judge/usecase"
	quoteentity "stock_judge/internal/feature/quote/domain/entity"
	"stock_judge/internal/shared/result"
)

type mockJudgeUsecase struct {
	JudgeFunc func(ctx context.Context, symbol string) entity.Judgement
}

func (m *mockJudgeUsecase) Judge(ctx context.Context, symbol string) entity.Judgement {
	return m.JudgeFunc(ctx, symbol)
}

func f(v float64) *float64 { return &v }

// TestJudgeHandler_GetJudge は部分的な失敗を含む判定レスポンスを検証します。
func TestJudgeHandler_GetJudge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	asOf := time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)
	quote := quoteentity.Quote{
		Symbol: "7203.T", AsOf: asOf, Price: 2500, Volume: 1000,
		RSI: f(61.5), MA5: f(2480), MA25: nil,
	}
	rate := forexentity.Rate{Base: "USD", Target: "JPY", Rate: 151.234}

	tests := []struct {
		name         string
		url          string
		judge        func(ctx context.Context, symbol string) entity.Judgement
		expectedBody string
	}{
		{
			name: "healthy downstreams",
			url:  "/judge",
			judge: func(ctx context.Context, symbol string) entity.Judgement {
				assert.Equal(t, "", symbol)
				return entity.Judgement{
					Symbol:          "7203.T",
					Stock:           result.OK(quote),
					Forex:           result.OK(rate),
					ExchangeComment: usecase.CommentWeakYen,
				}
			},
			expectedBody: `{
				"symbol":"7203.T",
				"stock":{"ok":{"symbol":"7203.T","as_of":"2025-01-30","price":2500,"volume":1000,"rsi":61.5,"ma_5":2480,"ma_25":null}},
				"forex":{"ok":{"base":"USD","target":"JPY","rate":151.234,"updated_at":null}},
				"price":2500,"volume":1000,"rsi":61.5,"ma_5":2480,"ma_25":null,
				"usd_jpy":151.234,
				"exchange_comment":"yen-weakening bias (tailwind for exporters)",
				"error":null
			}`,
		},
		{
			name: "forex failure preserves stock data",
			url:  "/judge?symbol=7203.T",
			judge: func(ctx context.Context, symbol string) entity.Judgement {
				assert.Equal(t, "7203.T", symbol)
				return entity.Judgement{
					Symbol:          symbol,
					Stock:           result.OK(quote),
					Forex:           result.Fail[forexentity.Rate](errors.New("exchangerate http 503")),
					ExchangeComment: usecase.CommentNoInformation,
				}
			},
			expectedBody: `{
				"symbol":"7203.T",
				"stock":{"ok":{"symbol":"7203.T","as_of":"2025-01-30","price":2500,"volume":1000,"rsi":61.5,"ma_5":2480,"ma_25":null}},
				"forex":{"error":"exchangerate http 503"},
				"price":2500,"volume":1000,"rsi":61.5,"ma_5":2480,"ma_25":null,
				"usd_jpy":null,
				"exchange_comment":"no exchange information",
				"error":null
			}`,
		},
		{
			name: "stock failure surfaces error",
			url:  "/judge?symbol=INVALIDXYZ",
			judge: func(ctx context.Context, symbol string) entity.Judgement {
				return entity.Judgement{
					Symbol:          symbol,
					Stock:           result.Fail[quoteentity.Quote](errors.New("symbol not found: INVALIDXYZ")),
					Forex:           result.OK(forexentity.Rate{Base: "USD", Target: "JPY", Rate: 147}),
					ExchangeComment: usecase.CommentNeutral,
				}
			},
			expectedBody: `{
				"symbol":"INVALIDXYZ",
				"stock":{"error":"symbol not found: INVALIDXYZ"},
				"forex":{"ok":{"base":"USD","target":"JPY","rate":147,"updated_at":null}},
				"price":null,"volume":null,"rsi":null,"ma_5":null,"ma_25":null,
				"usd_jpy":147,
				"exchange_comment":"exchange rate in a neutral zone",
				"error":"symbol not found: INVALIDXYZ"
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewJudgeHandler(&mockJudgeUsecase{JudgeFunc: tt.judge})

			router := gin.New()
			router.GET("/judge", h.GetJudge)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
