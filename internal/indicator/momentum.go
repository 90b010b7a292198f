package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

type MTMConfig struct {
	Period int `yaml:"period" json:"period" validate:"gt=0"`
	// Smooth is the period of an optional moving average over the raw momentum. 0 disables it.
	Smooth     int         `yaml:"smooth" json:"smooth" validate:"gte=0"`
	SmoothType MAType      `yaml:"smooth_type" json:"smooth_type" validate:"oneof=simple exponential"`
	Source     PriceSource `yaml:"source" json:"source" validate:"oneof=close ohlc hl2"`
}

func DefaultMTMConfig() MTMConfig {
	return MTMConfig{Period: 12, Smooth: 0, SmoothType: MATypeSimple, Source: PriceSourceClose}
}

// Momentum is price[i] - price[i-n] in time order, and zero while i <= n.
func Momentum(values []float64, n int, order series.Order) []float64 {
	raw := make([]float64, len(values))

	for k := range values {
		if k <= n {
			continue
		}

		i := chronological(k, len(values), order)
		raw[i] = values[i] - values[chronological(k-n, len(values), order)]
	}

	return raw
}

// CalculateMTM is the memoized momentum, smoothed when cfg.Smooth > 0.
func CalculateMTM(s *series.Series, cfg MTMConfig) Line {
	key := series.Key(types.IndicatorTypeMTM, cfg.Source, cfg.Period, cfg.SmoothType, cfg.Smooth)

	return series.Memo(s, key, func() Line {
		raw := Momentum(s.Values(cfg.Source.Value), cfg.Period, s.Order())
		if cfg.Smooth > 0 {
			return MovingAverage(raw, cfg.Smooth, cfg.SmoothType, s.Order())
		}

		return LineOf(raw)
	})
}

// MTM represents the momentum indicator.
type MTM struct {
	config MTMConfig
}

// NewMTM creates a new momentum indicator with default configuration.
func NewMTM() Indicator {
	return &MTM{config: DefaultMTMConfig()}
}

func (m *MTM) Name() types.IndicatorType {
	return types.IndicatorTypeMTM
}

// Config expects period (int) and optionally smooth (int) and smooth type (MAType).
func (m *MTM) Config(params ...any) error {
	if len(params) < 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects at least 1 parameter: period (int)")
	}

	period, err := periodParam(params[0], "period")
	if err != nil {
		return err
	}

	cfg := MTMConfig{Period: period, SmoothType: m.config.SmoothType, Source: m.config.Source}

	if len(params) > 1 {
		if cfg.Smooth, err = periodParam(params[1], "smooth"); err != nil {
			return err
		}
	}

	if len(params) > 2 {
		if cfg.SmoothType, err = maTypeParam(params[2]); err != nil {
			return err
		}
	}

	m.config = cfg

	return nil
}

func (m *MTM) Calculate(s *series.Series) ([]Output, error) {
	if err := requireBars(s, m.config.Period+1, m.Name()); err != nil {
		return nil, err
	}

	return []Output{{Name: "mtm", Line: CalculateMTM(s, m.config)}}, nil
}

type AOConfig struct {
	Fast   int         `yaml:"fast" json:"fast"`
	Slow   int         `yaml:"slow" json:"slow"`
	Type   MAType      `yaml:"type" json:"type"`
	Source PriceSource `yaml:"source" json:"source"`
}

func DefaultAOConfig() AOConfig {
	return AOConfig{Fast: 5, Slow: 34, Type: MATypeSimple, Source: PriceSourceMidPoint}
}

// CalculateAO is MA(fast) - MA(slow) of the configured source.
func CalculateAO(s *series.Series, cfg AOConfig) Line {
	return series.Memo(s, series.Key(types.IndicatorTypeAO, cfg.Source, cfg.Type, cfg.Fast, cfg.Slow), func() Line {
		fast := CalculateMA(s, MAConfig{Period: cfg.Fast, Type: cfg.Type, Source: cfg.Source})
		slow := CalculateMA(s, MAConfig{Period: cfg.Slow, Type: cfg.Type, Source: cfg.Source})

		line := NewLine(s.Len())

		for i := range line {
			f, okFast := fast.At(i)
			sl, okSlow := slow.At(i)

			if okFast && okSlow {
				line[i] = optional.Some(f - sl)
			}
		}

		return line
	})
}

// AO represents the Awesome Oscillator.
type AO struct {
	config AOConfig
}

// NewAO creates a new Awesome Oscillator with default configuration.
func NewAO() Indicator {
	return &AO{config: DefaultAOConfig()}
}

func (a *AO) Name() types.IndicatorType {
	return types.IndicatorTypeAO
}

// Config expects fast (int) and slow (int), then optionally source (PriceSource).
func (a *AO) Config(params ...any) error {
	if len(params) < 2 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects at least 2 parameters: fast (int), slow (int)")
	}

	fast, err := periodParam(params[0], "fast")
	if err != nil {
		return err
	}

	slow, err := periodParam(params[1], "slow")
	if err != nil {
		return err
	}

	if fast >= slow {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "fast period (%d) must be less than slow period (%d)", fast, slow)
	}

	cfg := AOConfig{Fast: fast, Slow: slow, Type: a.config.Type, Source: a.config.Source}

	if len(params) > 2 {
		if cfg.Source, err = sourceParam(params[2]); err != nil {
			return err
		}
	}

	a.config = cfg

	return nil
}

func (a *AO) Calculate(s *series.Series) ([]Output, error) {
	if err := requireBars(s, a.config.Slow, a.Name()); err != nil {
		return nil, err
	}

	return []Output{{Name: "ao", Line: CalculateAO(s, a.config)}}, nil
}
