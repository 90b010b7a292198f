package indicator

import (
	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

type SqueezeState string

const (
	SqueezeResting SqueezeState = "RESTING"
	SqueezeReady   SqueezeState = "READY"
	SqueezeBuy     SqueezeState = "BUY"
	SqueezeSell    SqueezeState = "SELL"
)

// MomentumSource selects the momentum line that decides a squeeze's direction.
type MomentumSource string

const (
	MomentumSourceMTM     MomentumSource = "mtm"
	MomentumSourceTTMWave MomentumSource = "ttm_wave"
)

type SqueezeConfig struct {
	Keltner   KeltnerConfig   `yaml:"keltner" json:"keltner"`
	Bollinger BollingerConfig `yaml:"bollinger" json:"bollinger"`
	Momentum  MomentumSource  `yaml:"momentum" json:"momentum" validate:"oneof=mtm ttm_wave"`
	MTM       MTMConfig       `yaml:"mtm" json:"mtm"`
	Wave      WavePair        `yaml:"wave" json:"wave"`
}

func DefaultSqueezeConfig() SqueezeConfig {
	return SqueezeConfig{
		Keltner:   DefaultKeltnerConfig(),
		Bollinger: DefaultBollingerConfig(),
		Momentum:  MomentumSourceMTM,
		MTM:       DefaultMTMConfig(),
		Wave:      DefaultTTMWaveConfig().Pairs[0],
	}
}

var validate = validator.New()

// Validate checks the periods, multipliers, averages and sources of every component.
func (c SqueezeConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid squeeze config", err)
	}

	return nil
}

type SqueezeResult struct {
	States    []SqueezeState
	Keltner   Band
	Bollinger Band
	Momentum  Line
}

// NextSqueezeState advances the squeeze machine by one bar.
//   - RESTING goes READY once the Bollinger upper band is inside the Keltner upper band.
//   - READY leaves the channel as BUY when momentum >= 0, else SELL.
//   - BUY and SELL return to READY when the bands re-enter the channel, and rest when
//     momentum turns against them.
func NextSqueezeState(prev SqueezeState, bollingerUpper, keltnerUpper, momentum, prevMomentum float64) SqueezeState {
	inside := bollingerUpper <= keltnerUpper

	switch prev {
	case SqueezeReady:
		if inside {
			return SqueezeReady
		}

		if momentum >= 0 {
			return SqueezeBuy
		}

		return SqueezeSell
	case SqueezeBuy:
		if inside {
			return SqueezeReady
		}

		if momentum < prevMomentum {
			return SqueezeResting
		}

		return SqueezeBuy
	case SqueezeSell:
		if inside {
			return SqueezeReady
		}

		if momentum > prevMomentum {
			return SqueezeResting
		}

		return SqueezeSell
	default:
		if inside {
			return SqueezeReady
		}

		return SqueezeResting
	}
}

func squeezeMomentum(s *series.Series, cfg SqueezeConfig) Line {
	if cfg.Momentum == MomentumSourceTTMWave {
		return series.Memo(s, series.Key(types.IndicatorTypeTTMWave, "hist", cfg.Wave.Fast, cfg.Wave.Slow), func() Line {
			return MACDHistogram(s.Values(PriceSourceClose.Value), cfg.Wave, s.Order())
		})
	}

	return CalculateMTM(s, cfg.MTM)
}

// CalculateSqueeze walks the bars in time order. A bar missing any input is RESTING.
func CalculateSqueeze(s *series.Series, cfg SqueezeConfig) SqueezeResult {
	key := series.Key(types.IndicatorTypeSqueeze, cfg.Keltner, cfg.Bollinger, cfg.Momentum, cfg.MTM, cfg.Wave)

	return series.Memo(s, key, func() SqueezeResult {
		result := SqueezeResult{
			States:    make([]SqueezeState, s.Len()),
			Keltner:   CalculateKeltner(s, cfg.Keltner),
			Bollinger: CalculateBollinger(s, cfg.Bollinger),
			Momentum:  squeezeMomentum(s, cfg),
		}

		state := SqueezeResting
		prevIndex := -1

		for k := 0; k < s.Len(); k++ {
			i := chronological(k, s.Len(), s.Order())

			bbUpper, okBB := result.Bollinger.Upper.At(i)
			kcUpper, okKC := result.Keltner.Upper.At(i)
			momentum, okMom := result.Momentum.At(i)

			if !okBB || !okKC || !okMom {
				state = SqueezeResting
			} else {
				prevMomentum, okPrev := result.Momentum.At(prevIndex)
				if !okPrev {
					prevMomentum = momentum
				}

				state = NextSqueezeState(state, bbUpper, kcUpper, momentum, prevMomentum)
			}

			result.States[i] = state
			prevIndex = i
		}

		return result
	})
}

// Squeeze represents the squeeze state machine.
type Squeeze struct {
	config SqueezeConfig
}

// NewSqueeze creates a new squeeze indicator with default configuration.
func NewSqueeze() Indicator {
	return &Squeeze{config: DefaultSqueezeConfig()}
}

func (sq *Squeeze) Name() types.IndicatorType {
	return types.IndicatorTypeSqueeze
}

// Config expects a SqueezeConfig.
func (sq *Squeeze) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 1 parameter: config (SqueezeConfig)")
	}

	cfg, ok := params[0].(SqueezeConfig)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for config parameter, expected SqueezeConfig")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	sq.config = cfg

	return nil
}

func (sq *Squeeze) Calculate(s *series.Series) ([]Output, error) {
	required := max(sq.config.Keltner.Period, sq.config.Bollinger.Period)
	if err := requireBars(s, required, sq.Name()); err != nil {
		return nil, err
	}

	result := CalculateSqueeze(s, sq.config)

	// states are encoded as 0 resting, 1 ready, 2 buy, 3 sell
	encoded := make([]float64, len(result.States))
	for i, state := range result.States {
		encoded[i] = squeezeCode(state)
	}

	return []Output{
		{Name: "state", Line: LineOf(encoded)},
		{Name: "bollinger_upper", Line: result.Bollinger.Upper},
		{Name: "keltner_upper", Line: result.Keltner.Upper},
		{Name: "momentum", Line: result.Momentum},
	}, nil
}

func squeezeCode(state SqueezeState) float64 {
	switch state {
	case SqueezeReady:
		return 1
	case SqueezeBuy:
		return 2
	case SqueezeSell:
		return 3
	default:
		return 0
	}
}
