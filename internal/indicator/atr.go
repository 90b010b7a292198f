package indicator

import (
	"math"

	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// TrueRange uses the bar's own pre_close as the previous close.
func TrueRange(bar types.Bar) float64 {
	return math.Max(bar.High-bar.Low, math.Max(math.Abs(bar.High-bar.PreClose), math.Abs(bar.PreClose-bar.Low)))
}

// CalculateTR is the memoized true range of every bar.
func CalculateTR(s *series.Series) []float64 {
	return series.Memo(s, series.Key(types.IndicatorTypeTR), func() []float64 {
		return s.Values(TrueRange)
	})
}

type ATRConfig struct {
	Period int    `yaml:"period" json:"period"`
	Type   MAType `yaml:"type" json:"type"`
}

func DefaultATRConfig() ATRConfig {
	return ATRConfig{Period: 14, Type: MATypeSimple}
}

// CalculateATR is the moving average of the true range.
func CalculateATR(s *series.Series, cfg ATRConfig) Line {
	return series.Memo(s, series.Key(types.IndicatorTypeATR, cfg.Type, cfg.Period), func() Line {
		return MovingAverage(CalculateTR(s), cfg.Period, cfg.Type, s.Order())
	})
}

// ATR represents the Average True Range indicator.
type ATR struct {
	config ATRConfig
}

// NewATR creates a new ATR indicator with default configuration.
func NewATR() Indicator {
	return &ATR{config: DefaultATRConfig()}
}

func (a *ATR) Name() types.IndicatorType {
	return types.IndicatorTypeATR
}

// Config expects period (int) and optionally the smoothing type (MAType).
func (a *ATR) Config(params ...any) error {
	if len(params) < 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects at least 1 parameter: period (int)")
	}

	period, err := periodParam(params[0], "period")
	if err != nil {
		return err
	}

	cfg := ATRConfig{Period: period, Type: a.config.Type}

	if len(params) > 1 {
		if cfg.Type, err = maTypeParam(params[1]); err != nil {
			return err
		}
	}

	a.config = cfg

	return nil
}

func (a *ATR) Calculate(s *series.Series) ([]Output, error) {
	if err := requireBars(s, a.config.Period, a.Name()); err != nil {
		return nil, err
	}

	return []Output{
		{Name: "tr", Line: LineOf(CalculateTR(s))},
		{Name: "atr", Line: CalculateATR(s, a.config)},
	}, nil
}
