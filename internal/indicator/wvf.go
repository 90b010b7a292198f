package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// WilliamsVixFix is 100 * (highest close over n - low) / highest close,
// undefined for the first n-1 bars in time.
func WilliamsVixFix(bars []types.Bar, n int, order series.Order) Line {
	line := NewLine(len(bars))
	if n <= 0 {
		return line
	}

	for k := n - 1; k < len(bars); k++ {
		highest := 0.0
		for j := k - n + 1; j <= k; j++ {
			highest = max(highest, bars[chronological(j, len(bars), order)].Close)
		}

		if highest == 0 {
			continue
		}

		i := chronological(k, len(bars), order)
		line[i] = optional.Some(100 * (highest - bars[i].Low) / highest)
	}

	return line
}

// CalculateWVF is the memoized Williams VIX Fix.
func CalculateWVF(s *series.Series, period int) Line {
	return series.Memo(s, series.Key(types.IndicatorTypeWVF, period), func() Line {
		return WilliamsVixFix(s.Bars(), period, s.Order())
	})
}

// WVF represents the Williams VIX Fix indicator.
type WVF struct {
	period int
}

// NewWVF creates a new WVF indicator with default configuration.
func NewWVF() Indicator {
	return &WVF{period: 22}
}

func (w *WVF) Name() types.IndicatorType {
	return types.IndicatorTypeWVF
}

// Config expects period (int).
func (w *WVF) Config(params ...any) error {
	if len(params) < 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects at least 1 parameter: period (int)")
	}

	period, err := periodParam(params[0], "period")
	if err != nil {
		return err
	}

	w.period = period

	return nil
}

func (w *WVF) Calculate(s *series.Series) ([]Output, error) {
	if err := requireBars(s, w.period, w.Name()); err != nil {
		return nil, err
	}

	return []Output{{Name: "wvf", Line: CalculateWVF(s, w.period)}}, nil
}
