package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/internal/utils"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// EMADigits is the rounding applied to every EMA step after the seed.
const EMADigits = 3

type MAType string

const (
	MATypeSimple      MAType = "simple"
	MATypeExponential MAType = "exponential"
)

func (t MAType) valid() bool {
	return t == MATypeSimple || t == MATypeExponential
}

type PriceSource string

const (
	PriceSourceClose    PriceSource = "close"
	PriceSourceOHLC     PriceSource = "ohlc"
	PriceSourceMidPoint PriceSource = "hl2"
)

func (p PriceSource) valid() bool {
	return p == PriceSourceClose || p == PriceSourceOHLC || p == PriceSourceMidPoint
}

// Value reads the source price from a bar.
func (p PriceSource) Value(bar types.Bar) float64 {
	switch p {
	case PriceSourceOHLC:
		return bar.OHLCAverage()
	case PriceSourceMidPoint:
		return bar.MidPoint()
	default:
		return bar.Close
	}
}

// SMA is the simple moving average at every index.
func SMA(values []float64, n int, order series.Order) Line {
	line := make(Line, len(values))
	for i := range values {
		line[i] = Average(values, i, n, order)
	}

	return line
}

// EMA seeds with the oldest value, then applies (2*v + (n-1)*prev) / (n+1)
// rounded to EMADigits.
func EMA(values []float64, n int, order series.Order) Line {
	return EMAWithDigits(values, n, order, EMADigits)
}

// EMAWithDigits is EMA with explicit rounding. Negative digits disable rounding.
func EMAWithDigits(values []float64, n int, order series.Order, digits int) Line {
	line := NewLine(len(values))
	if n <= 0 {
		return line
	}

	prev := 0.0

	for k := range values {
		i := chronological(k, len(values), order)

		v := values[i]
		if k > 0 {
			v = (2*values[i] + float64(n-1)*prev) / float64(n+1)
			if digits >= 0 {
				v = utils.Round(v, digits)
			}
		}

		line[i] = optional.Some(v)
		prev = v
	}

	return line
}

// MovingAverage dispatches on maType.
func MovingAverage(values []float64, n int, maType MAType, order series.Order) Line {
	if maType == MATypeExponential {
		return EMA(values, n, order)
	}

	return SMA(values, n, order)
}

type MAConfig struct {
	Period int         `yaml:"period" json:"period"`
	Type   MAType      `yaml:"type" json:"type"`
	Source PriceSource `yaml:"source" json:"source"`
}

func DefaultMAConfig() MAConfig {
	return MAConfig{Period: 20, Type: MATypeSimple, Source: PriceSourceClose}
}

// CalculateMA is the memoized moving average of the configured price source.
func CalculateMA(s *series.Series, cfg MAConfig) Line {
	return series.Memo(s, series.Key(types.IndicatorTypeMA, cfg.Source, cfg.Type, cfg.Period), func() Line {
		return MovingAverage(s.Values(cfg.Source.Value), cfg.Period, cfg.Type, s.Order())
	})
}

// MA is the registry form of CalculateMA.
type MA struct {
	name   types.IndicatorType
	config MAConfig
}

// NewMA creates a new simple MA indicator with default configuration.
func NewMA() Indicator {
	return &MA{name: types.IndicatorTypeMA, config: DefaultMAConfig()}
}

// NewEMA creates a moving average that defaults to the exponential type.
func NewEMA() Indicator {
	cfg := DefaultMAConfig()
	cfg.Type = MATypeExponential

	return &MA{name: types.IndicatorTypeEMA, config: cfg}
}

func (m *MA) Name() types.IndicatorType {
	return m.name
}

// Config expects period (int), then optionally type (MAType) and source (PriceSource).
func (m *MA) Config(params ...any) error {
	if len(params) < 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects at least 1 parameter: period (int)")
	}

	period, err := periodParam(params[0], "period")
	if err != nil {
		return err
	}

	cfg := MAConfig{Period: period, Type: m.config.Type, Source: m.config.Source}

	if len(params) > 1 {
		maType, err := maTypeParam(params[1])
		if err != nil {
			return err
		}

		cfg.Type = maType
	}

	if len(params) > 2 {
		source, err := sourceParam(params[2])
		if err != nil {
			return err
		}

		cfg.Source = source
	}

	m.config = cfg

	return nil
}

func (m *MA) Calculate(s *series.Series) ([]Output, error) {
	if err := requireBars(s, m.config.Period, m.Name()); err != nil {
		return nil, err
	}

	return []Output{{Name: string(m.config.Type), Line: CalculateMA(s, m.config)}}, nil
}
