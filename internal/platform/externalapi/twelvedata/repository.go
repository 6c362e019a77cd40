package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stock_judge/internal/feature/quote/domain"
	"stock_judge/internal/feature/quote/domain/entity"
	"stock_judge/internal/feature/quote/usecase"
	"stock_judge/internal/platform/externalapi/twelvedata/dto"
	"stock_judge/internal/shared/ratelimiter"
)

const dateLayout = "2006-01-02"

// TwelveDataMarket はTwelve Data外部APIから日足データを取得するMarketRepository実装です。
type TwelveDataMarket struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// TwelveDataMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*TwelveDataMarket)(nil)

// NewTwelveDataMarket は指定された設定とHTTPクライアントでTwelveDataMarketの新しいインスタンスを生成します。
// limiter がnilの場合はcfg.RatePerMinuteから生成します。
func NewTwelveDataMarket(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *TwelveDataMarket {
	if limiter == nil {
		limiter = ratelimiter.NewRateLimiter(cfg.RatePerMinute, time.Minute)
	}
	return &TwelveDataMarket{cfg: cfg, client: client, limiter: limiter}
}

// GetDailyBars はTwelve Data APIから [from, to] の日足を取得し、
// entity.Barのスライスとして返します。
func (t *TwelveDataMarket) GetDailyBars(ctx context.Context, symbol string, from, to time.Time) ([]entity.Bar, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("symbol", symbol)
	q.Set("interval", "1day")
	q.Set("start_date", from.Format(dateLayout))
	q.Set("end_date", to.Format(dateLayout))
	q.Set("order", "asc")
	q.Set("apikey", t.cfg.TwelveDataAPIKey)

	// URLを生成
	u := fmt.Sprintf("%s/time_series?%s", t.cfg.BaseURL, q.Encode())

	// 無料プランの呼び出し上限を守る
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	// リクエストを実行
	res, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.TimeSeriesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status == "error" {
		if isSymbolNotFound(body.Code, body.Message) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSymbolNotFound, symbol)
		}
		return nil, fmt.Errorf("twelvedata: %s", body.Message)
	}

	bars := make([]entity.Bar, 0, len(body.Values))
	for _, v := range body.Values {

		// タイムスタンプをパース
		tm, err := time.Parse("2006-01-02 15:04:05", v.Datetime)
		if err != nil {
			tm, err = time.Parse(dateLayout, v.Datetime)
			if err != nil {
				return nil, fmt.Errorf("parse time %q: %w", v.Datetime, err)
			}
		}
		// 始値をパース
		o, err := strconv.ParseFloat(v.Open, 64)
		if err != nil {
			return nil, fmt.Errorf("parse open %q: %w", v.Open, err)
		}
		// 高値をパース
		h, err := strconv.ParseFloat(v.High, 64)
		if err != nil {
			return nil, fmt.Errorf("parse high %q: %w", v.High, err)
		}
		// 安値をパース
		l, err := strconv.ParseFloat(v.Low, 64)
		if err != nil {
			return nil, fmt.Errorf("parse low %q: %w", v.Low, err)
		}
		// 終値をパース
		c, err := strconv.ParseFloat(v.Close, 64)
		if err != nil {
			return nil, fmt.Errorf("parse close %q: %w", v.Close, err)
		}
		// 出来高をパース（指数などは出来高なし）
		var vol64 int64
		if v.Volume != "" {
			vol64, err = strconv.ParseInt(v.Volume, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("parse volume %q: %w", v.Volume, err)
			}
		}

		// ドメインエンティティに変換
		bars = append(bars, entity.Bar{
			Symbol: symbol,
			Time:   tm,
			Open:   o,
			High:   h,
			Low:    l,
			Close:  c,
			Volume: vol64,
		})
	}
	return bars, nil
}

// isSymbolNotFound はTwelve Dataのエラーレスポンスが銘柄不明を示すかを判定します。
func isSymbolNotFound(code int, message string) bool {
	if code == http.StatusNotFound {
		return true
	}
	if code != http.StatusBadRequest {
		return false
	}
	m := strings.ToLower(message)
	return strings.Contains(m, "symbol") || strings.Contains(m, "no data")
}
