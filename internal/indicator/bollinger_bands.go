package indicator

import (
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

type BollingerConfig struct {
	Period     int         `yaml:"period" json:"period" validate:"gt=0"`
	Multiplier float64     `yaml:"multiplier" json:"multiplier" validate:"gt=0"`
	Type       MAType      `yaml:"type" json:"type" validate:"oneof=simple exponential"`
	Source     PriceSource `yaml:"source" json:"source" validate:"oneof=close ohlc hl2"`
}

func DefaultBollingerConfig() BollingerConfig {
	return BollingerConfig{Period: 20, Multiplier: 2.0, Type: MATypeSimple, Source: PriceSourceClose}
}

// CalculateBollinger returns mid = MA(price, n) and mid +/- m*stdev,
// where stdev is the population deviation of the last n prices.
func CalculateBollinger(s *series.Series, cfg BollingerConfig) Band {
	key := series.Key(types.IndicatorTypeBollingerBands, cfg.Source, cfg.Type, cfg.Period, cfg.Multiplier)

	return series.Memo(s, key, func() Band {
		mid := CalculateMA(s, MAConfig{Period: cfg.Period, Type: cfg.Type, Source: cfg.Source})
		deviation := CalculateStdDev(s, cfg.Period, cfg.Source)

		return newBand(mid, deviation, cfg.Multiplier)
	})
}

// CalculateStdDev is the memoized population standard deviation line.
func CalculateStdDev(s *series.Series, period int, source PriceSource) Line {
	return series.Memo(s, series.Key(types.IndicatorTypeStdDev, source, period), func() Line {
		return StdDevLine(s.Values(source.Value), period, s.Order())
	})
}

// BollingerBands represents the Bollinger Bands indicator.
type BollingerBands struct {
	config BollingerConfig
}

// NewBollingerBands creates a new Bollinger Bands indicator with default configuration.
func NewBollingerBands() Indicator {
	return &BollingerBands{config: DefaultBollingerConfig()}
}

func (bb *BollingerBands) Name() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// Config expects period (int) and multiplier (float64), then optionally type (MAType).
func (bb *BollingerBands) Config(params ...any) error {
	if len(params) < 2 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects at least 2 parameters: period (int), multiplier (float64)")
	}

	period, err := periodParam(params[0], "period")
	if err != nil {
		return err
	}

	multiplier, err := multiplierParam(params[1])
	if err != nil {
		return err
	}

	cfg := BollingerConfig{Period: period, Multiplier: multiplier, Type: bb.config.Type, Source: bb.config.Source}

	if len(params) > 2 {
		if cfg.Type, err = maTypeParam(params[2]); err != nil {
			return err
		}
	}

	bb.config = cfg

	return nil
}

func (bb *BollingerBands) Calculate(s *series.Series) ([]Output, error) {
	if err := requireBars(s, bb.config.Period, bb.Name()); err != nil {
		return nil, err
	}

	return CalculateBollinger(s, bb.config).outputs("stddev"), nil
}
