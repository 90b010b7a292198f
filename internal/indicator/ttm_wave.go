package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// WavePair is one fast/slow EMA pair of a wave channel.
type WavePair struct {
	Fast int `yaml:"fast" json:"fast" validate:"gt=0"`
	Slow int `yaml:"slow" json:"slow" validate:"gtfield=Fast"`
}

type TTMWaveConfig struct {
	// Pairs holds the six period pairs, two per channel (A, B, C).
	Pairs [6]WavePair `yaml:"pairs" json:"pairs"`
	A     bool        `yaml:"a" json:"a"`
	B     bool        `yaml:"b" json:"b"`
	C     bool        `yaml:"c" json:"c"`
}

func DefaultTTMWaveConfig() TTMWaveConfig {
	return TTMWaveConfig{
		Pairs: [6]WavePair{
			{Fast: 8, Slow: 34}, {Fast: 8, Slow: 55},
			{Fast: 8, Slow: 89}, {Fast: 8, Slow: 144},
			{Fast: 8, Slow: 233}, {Fast: 8, Slow: 377},
		},
		A: true,
		B: true,
		C: true,
	}
}

// WaveChannel holds the MACD histograms of a channel's two pairs.
type WaveChannel struct {
	First  Line
	Second Line
}

type TTMWave struct {
	A optional.Option[WaveChannel]
	B optional.Option[WaveChannel]
	C optional.Option[WaveChannel]
}

// MACDHistogram is macd - EMA(macd, slow) where macd = EMA(fast) - EMA(slow).
func MACDHistogram(values []float64, pair WavePair, order series.Order) Line {
	fast := EMA(values, pair.Fast, order)
	slow := EMA(values, pair.Slow, order)

	macd := make([]float64, len(values))
	for i := range values {
		f, _ := fast.At(i)
		sl, _ := slow.At(i)
		macd[i] = f - sl
	}

	signal := EMA(macd, pair.Slow, order)

	hist := NewLine(len(values))
	for i := range macd {
		sig, _ := signal.At(i)
		hist[i] = optional.Some(macd[i] - sig)
	}

	return hist
}

// CalculateTTMWave computes the enabled wave channels over close prices.
func CalculateTTMWave(s *series.Series, cfg TTMWaveConfig) TTMWave {
	key := series.Key(types.IndicatorTypeTTMWave, cfg.Pairs, cfg.A, cfg.B, cfg.C)

	return series.Memo(s, key, func() TTMWave {
		closes := s.Values(PriceSourceClose.Value)
		channel := func(enabled bool, first, second WavePair) optional.Option[WaveChannel] {
			if !enabled {
				return optional.None[WaveChannel]()
			}

			return optional.Some(WaveChannel{
				First:  MACDHistogram(closes, first, s.Order()),
				Second: MACDHistogram(closes, second, s.Order()),
			})
		}

		return TTMWave{
			A: channel(cfg.A, cfg.Pairs[0], cfg.Pairs[1]),
			B: channel(cfg.B, cfg.Pairs[2], cfg.Pairs[3]),
			C: channel(cfg.C, cfg.Pairs[4], cfg.Pairs[5]),
		}
	})
}

// TTMWaveIndicator is the registry form of CalculateTTMWave.
type TTMWaveIndicator struct {
	config TTMWaveConfig
}

// NewTTMWave creates a new TTM Wave indicator with all channels enabled.
func NewTTMWave() Indicator {
	return &TTMWaveIndicator{config: DefaultTTMWaveConfig()}
}

func (t *TTMWaveIndicator) Name() types.IndicatorType {
	return types.IndicatorTypeTTMWave
}

// Config expects the channel flags a, b, c (bool).
func (t *TTMWaveIndicator) Config(params ...any) error {
	if len(params) != 3 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 3 parameters: a (bool), b (bool), c (bool)")
	}

	flags := make([]bool, 3)

	for i, param := range params {
		flag, ok := param.(bool)
		if !ok {
			return errors.Newf(errors.ErrCodeInvalidType, "invalid type for channel flag %d, expected bool", i)
		}

		flags[i] = flag
	}

	t.config.A, t.config.B, t.config.C = flags[0], flags[1], flags[2]

	return nil
}

func (t *TTMWaveIndicator) Calculate(s *series.Series) ([]Output, error) {
	if s.Len() == 0 {
		return nil, errors.NewInsufficientDataErrorf(1, 0, "", "%s needs at least 1 bar", t.Name())
	}

	wave := CalculateTTMWave(s, t.config)
	outputs := make([]Output, 0, 6)

	for _, named := range []struct {
		name    string
		channel optional.Option[WaveChannel]
	}{{"a", wave.A}, {"b", wave.B}, {"c", wave.C}} {
		if named.channel.IsNone() {
			continue
		}

		channel := named.channel.Unwrap()
		outputs = append(outputs,
			Output{Name: named.name + "1", Line: channel.First},
			Output{Name: named.name + "2", Line: channel.Second},
		)
	}

	return outputs, nil
}
