package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// RSIValue returns 100 when there are no losses.
func RSIValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}

	return 100 - 100/(1+avgGain/avgLoss)
}

// WilderRSI seeds average gain and loss with the first n changes, then smooths
// with factor 1/n. The first defined value is at the n-th bar in time.
func WilderRSI(closes []float64, n int, order series.Order) Line {
	line := NewLine(len(closes))
	if n <= 0 || len(closes) <= n {
		return line
	}

	change := func(k int) (float64, float64) {
		diff := closes[chronological(k, len(closes), order)] - closes[chronological(k-1, len(closes), order)]
		if diff > 0 {
			return diff, 0
		}

		return 0, -diff
	}

	avgGain, avgLoss := 0.0, 0.0

	for k := 1; k <= n; k++ {
		gain, loss := change(k)
		avgGain += gain
		avgLoss += loss
	}

	avgGain /= float64(n)
	avgLoss /= float64(n)
	line[chronological(n, len(closes), order)] = optional.Some(RSIValue(avgGain, avgLoss))

	for k := n + 1; k < len(closes); k++ {
		gain, loss := change(k)
		avgGain = (avgGain*float64(n-1) + gain) / float64(n)
		avgLoss = (avgLoss*float64(n-1) + loss) / float64(n)
		line[chronological(k, len(closes), order)] = optional.Some(RSIValue(avgGain, avgLoss))
	}

	return line
}

// CalculateRSI is the memoized Wilder RSI over closes.
func CalculateRSI(s *series.Series, period int) Line {
	return series.Memo(s, series.Key(types.IndicatorTypeRSI, period), func() Line {
		return WilderRSI(s.Values(PriceSourceClose.Value), period, s.Order())
	})
}

// RSI represents the Relative Strength Index indicator.
type RSI struct {
	period int
}

// NewRSI creates a new RSI indicator with default configuration.
func NewRSI() Indicator {
	return &RSI{period: 14}
}

func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Config expects period (int).
func (r *RSI) Config(params ...any) error {
	if len(params) < 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects at least 1 parameter: period (int)")
	}

	period, err := periodParam(params[0], "period")
	if err != nil {
		return err
	}

	r.period = period

	return nil
}

func (r *RSI) Calculate(s *series.Series) ([]Output, error) {
	if err := requireBars(s, r.period+1, r.Name()); err != nil {
		return nil, err
	}

	return []Output{{Name: "rsi", Line: CalculateRSI(s, r.period)}}, nil
}
