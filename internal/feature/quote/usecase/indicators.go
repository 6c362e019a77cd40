package usecase

import (
	"fmt"
	"math"

	"github.com/markcheno/go-talib"

	"stock_judge/internal/shared/round"
)

type indicators struct {
	rsi  *float64
	ma5  *float64
	ma25 *float64
}

// computeIndicators は終値系列（古い順）からRSIと移動平均を算出します。
// 期間に満たない指標はnilになります。
func computeIndicators(closes []float64) (ind indicators, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("indicator computation failed: %v", r)
		}
	}()

	ind.rsi = lastRSI(closes, RSIPeriod)
	ind.ma5 = lastSMA(closes, ShortMAWindow)
	ind.ma25 = lastSMA(closes, LongMAWindow)
	return ind, nil
}

// lastRSI returns the final RSI value over period closes.
// Gains and losses are smoothed with an EMA of alpha 1/period, seeded at the
// first close with a zero change, so period closes are enough for a value.
// No losses over the window yields 100.
func lastRSI(closes []float64, period int) *float64 {
	if period < 2 || len(closes) < period {
		return nil
	}
	alpha := 1 / float64(period)
	var avgGain, avgLoss float64
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := math.Max(change, 0), math.Max(-change, 0)
		avgGain += alpha * (gain - avgGain)
		avgLoss += alpha * (loss - avgLoss)
	}
	if avgLoss == 0 {
		return finite(100)
	}
	return finite(100 - 100/(1+avgGain/avgLoss))
}

// lastSMA returns the simple moving average over the trailing window.
func lastSMA(closes []float64, window int) *float64 {
	if window < 1 || len(closes) < window {
		return nil
	}
	out := talib.Sma(closes, window)
	return finite(out[len(out)-1])
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return round.Ptr(v, 2)
}
