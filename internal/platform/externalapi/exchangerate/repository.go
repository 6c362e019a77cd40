package exchangerate

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"stock_judge/internal/feature/forex/domain"
	"stock_judge/internal/feature/forex/domain/entity"
	"stock_judge/internal/feature/forex/usecase"
)

// ExchangeRateAPI はExchangeRate-APIのpairエンドポイントからレートを取得するRateRepository実装です。
type ExchangeRateAPI struct {
	client *resty.Client
	apiKey string
}

// ExchangeRateAPIがRateRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.RateRepository = (*ExchangeRateAPI)(nil)

// NewExchangeRateAPI は指定された設定とHTTPクライアントでExchangeRateAPIを生成します。
func NewExchangeRateAPI(cfg Config, httpClient *http.Client) *ExchangeRateAPI {
	client := resty.NewWithClient(httpClient).
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	return &ExchangeRateAPI{client: client, apiKey: cfg.APIKey}
}

// GetPair は base→target のレートを取得します。
// conversion_rate が存在しない場合は0を返します。
func (e *ExchangeRateAPI) GetPair(ctx context.Context, base, target string) (entity.Rate, error) {
	if e.apiKey == "" {
		return entity.Rate{}, domain.ErrAPIKeyMissing
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"key":    e.apiKey,
			"base":   base,
			"target": target,
		}).
		Get("/{key}/pair/{base}/{target}")
	if err != nil {
		return entity.Rate{}, fmt.Errorf("exchangerate request: %w", err)
	}

	body := resp.Body()
	if gjson.ValidBytes(body) {
		doc := gjson.ParseBytes(body)
		if doc.Get("result").String() == "error" {
			errType := doc.Get("error-type").String()
			if errType == "unsupported-code" {
				return entity.Rate{}, fmt.Errorf("%w: %s/%s", domain.ErrUnsupportedPair, base, target)
			}
			return entity.Rate{}, fmt.Errorf("exchangerate: %s", errType)
		}
	}
	if !resp.IsSuccess() {
		return entity.Rate{}, fmt.Errorf("exchangerate http %d", resp.StatusCode())
	}
	if !gjson.ValidBytes(body) {
		return entity.Rate{}, fmt.Errorf("exchangerate: malformed response")
	}

	doc := gjson.ParseBytes(body)
	r := entity.Rate{
		Base:   doc.Get("base_code").String(),
		Target: doc.Get("target_code").String(),
		Rate:   doc.Get("conversion_rate").Float(),
	}
	if ts := doc.Get("time_last_update_unix"); ts.Exists() {
		r.UpdatedAt = time.Unix(ts.Int(), 0).UTC()
	}
	return r, nil
}
