package indicator

import (
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

type KeltnerConfig struct {
	Period     int         `yaml:"period" json:"period" validate:"gt=0"`
	Multiplier float64     `yaml:"multiplier" json:"multiplier" validate:"gt=0"`
	Type       MAType      `yaml:"type" json:"type" validate:"oneof=simple exponential"`
	Source     PriceSource `yaml:"source" json:"source" validate:"oneof=close ohlc hl2"`
}

func DefaultKeltnerConfig() KeltnerConfig {
	return KeltnerConfig{Period: 20, Multiplier: 1.5, Type: MATypeSimple, Source: PriceSourceClose}
}

// CalculateKeltner returns mid = MA(price, n) and mid +/- m*ATR(n).
func CalculateKeltner(s *series.Series, cfg KeltnerConfig) Band {
	key := series.Key(types.IndicatorTypeKeltnerChannel, cfg.Source, cfg.Type, cfg.Period, cfg.Multiplier)

	return series.Memo(s, key, func() Band {
		mid := CalculateMA(s, MAConfig{Period: cfg.Period, Type: cfg.Type, Source: cfg.Source})
		atr := CalculateATR(s, ATRConfig{Period: cfg.Period, Type: cfg.Type})

		return newBand(mid, atr, cfg.Multiplier)
	})
}

// KeltnerChannel represents the Keltner Channel indicator.
type KeltnerChannel struct {
	config KeltnerConfig
}

// NewKeltnerChannel creates a new Keltner Channel with default configuration.
func NewKeltnerChannel() Indicator {
	return &KeltnerChannel{config: DefaultKeltnerConfig()}
}

func (k *KeltnerChannel) Name() types.IndicatorType {
	return types.IndicatorTypeKeltnerChannel
}

// Config expects period (int) and multiplier (float64), then optionally type (MAType).
func (k *KeltnerChannel) Config(params ...any) error {
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

	cfg := KeltnerConfig{Period: period, Multiplier: multiplier, Type: k.config.Type, Source: k.config.Source}

	if len(params) > 2 {
		if cfg.Type, err = maTypeParam(params[2]); err != nil {
			return err
		}
	}

	k.config = cfg

	return nil
}

func (k *KeltnerChannel) Calculate(s *series.Series) ([]Output, error) {
	if err := requireBars(s, k.config.Period, k.Name()); err != nil {
		return nil, err
	}

	return CalculateKeltner(s, k.config).outputs("atr"), nil
}
