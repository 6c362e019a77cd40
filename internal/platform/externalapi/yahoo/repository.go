package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"stock_judge/internal/feature/quote/domain"
	"stock_judge/internal/feature/quote/domain/entity"
	"stock_judge/internal/feature/quote/usecase"
	"stock_judge/internal/platform/externalapi/yahoo/dto"
)

// YahooMarket はYahoo Financeのchart APIから日足データを取得するMarketRepository実装です。
type YahooMarket struct {
	client *resty.Client
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定されたHTTPクライアントを使うYahooMarketを生成します。
func NewYahooMarket(cfg Config, httpClient *http.Client) *YahooMarket {
	client := resty.NewWithClient(httpClient).
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeaders(map[string]string{
			"Accept":     "application/json",
			"User-Agent": cfg.UserAgent,
		})
	return &YahooMarket{client: client}
}

// GetDailyBars は [from, to] の日足を取得します。終値がnullの行は除外します。
func (y *YahooMarket) GetDailyBars(ctx context.Context, symbol string, from, to time.Time) ([]entity.Bar, error) {
	var chart dto.ChartResponse
	resp, err := y.client.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(map[string]string{
			"period1":  strconv.FormatInt(from.Unix(), 10),
			"period2":  strconv.FormatInt(to.Unix(), 10),
			"interval": "1d",
			"events":   "history",
		}).
		SetResult(&chart).
		SetError(&chart).
		Get("/{symbol}")
	if err != nil {
		return nil, fmt.Errorf("yahoo request: %w", err)
	}

	if e := chart.Chart.Error; e != nil {
		if e.Code == "Not Found" || resp.StatusCode() == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, symbol)
		}
		return nil, fmt.Errorf("yahoo: %s", e.Description)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, symbol)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("yahoo http %d", resp.StatusCode())
	}

	if len(chart.Chart.Result) == 0 {
		return []entity.Bar{}, nil
	}
	return toBars(symbol, chart.Chart.Result[0]), nil
}

// toBars はchart APIの並列配列を日足に変換します。
func toBars(symbol string, r dto.Result) []entity.Bar {
	if len(r.Indicators.Quote) == 0 {
		return []entity.Bar{}
	}
	q := r.Indicators.Quote[0]
	loc := time.FixedZone(r.Meta.ExchangeTimezoneName, r.Meta.GMTOffset)

	bars := make([]entity.Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		c := at(q.Close, i)
		if c == nil {
			continue
		}
		var vol int64
		if i < len(q.Volume) && q.Volume[i] != nil {
			vol = *q.Volume[i]
		}
		bars = append(bars, entity.Bar{
			Symbol: symbol,
			Time:   time.Unix(ts, 0).In(loc),
			Open:   valueOr(at(q.Open, i), *c),
			High:   valueOr(at(q.High, i), *c),
			Low:    valueOr(at(q.Low, i), *c),
			Close:  *c,
			Volume: vol,
		})
	}
	return bars
}

func at(xs []*float64, i int) *float64 {
	if i >= len(xs) {
		return nil
	}
	return xs[i]
}

func valueOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
