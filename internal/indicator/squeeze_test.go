package indicator

import (
	"slices"
	"testing"

	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type SqueezeTestSuite struct {
	suite.Suite
}

func TestSqueezeSuite(t *testing.T) {
	suite.Run(t, new(SqueezeTestSuite))
}

func (suite *SqueezeTestSuite) TestNextSqueezeState() {
	tests := []struct {
		name         string
		prev         SqueezeState
		bbUpper      float64
		kcUpper      float64
		momentum     float64
		prevMomentum float64
		expected     SqueezeState
	}{
		{"resting stays outside", SqueezeResting, 12, 11, 1, 0, SqueezeResting},
		{"resting enters", SqueezeResting, 10, 11, 1, 0, SqueezeReady},
		{"resting on equal bands", SqueezeResting, 11, 11, 1, 0, SqueezeReady},
		{"ready stays inside", SqueezeReady, 10, 11, -1, 0, SqueezeReady},
		{"ready fires long", SqueezeReady, 12, 11, 0, -3, SqueezeBuy},
		{"ready fires short", SqueezeReady, 12, 11, -0.1, 0, SqueezeSell},
		{"buy re-enters", SqueezeBuy, 10, 11, 5, 1, SqueezeReady},
		{"buy holds", SqueezeBuy, 12, 11, 2, 2, SqueezeBuy},
		{"buy fades", SqueezeBuy, 12, 11, 1, 2, SqueezeResting},
		{"sell re-enters", SqueezeSell, 10, 11, -5, -1, SqueezeReady},
		{"sell holds", SqueezeSell, 12, 11, -3, -2, SqueezeSell},
		{"sell fades", SqueezeSell, 12, 11, -1, -2, SqueezeResting},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.expected, NextSqueezeState(tc.prev, tc.bbUpper, tc.kcUpper, tc.momentum, tc.prevMomentum))
		})
	}
}

// breakoutCloses is a flat base of thirty bars followed by a rally and a pullback.
func breakoutCloses() []float64 {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 10
	}

	return append(closes, 12, 14, 16, 15)
}

func (suite *SqueezeTestSuite) TestBreakout() {
	result := CalculateSqueeze(seriesFromCloses(breakoutCloses()), DefaultSqueezeConfig())
	suite.Require().Len(result.States, 34)

	for i := 0; i < 19; i++ {
		suite.Equal(SqueezeResting, result.States[i], "index %d", i)
	}

	for i := 19; i <= 30; i++ {
		suite.Equal(SqueezeReady, result.States[i], "index %d", i)
	}

	suite.Equal(SqueezeBuy, result.States[31])
	suite.Equal(SqueezeBuy, result.States[32])
	suite.Equal(SqueezeResting, result.States[33])
}

func (suite *SqueezeTestSuite) TestDescendingMatchesAscending() {
	bars := barsFromCloses(breakoutCloses())
	ascending := CalculateSqueeze(series.Wrap(bars), DefaultSqueezeConfig())

	reversed := slices.Clone(bars)
	slices.Reverse(reversed)
	descending := CalculateSqueeze(series.Wrap(reversed), DefaultSqueezeConfig())

	states := slices.Clone(descending.States)
	slices.Reverse(states)
	suite.Equal(ascending.States, states)
}

func (suite *SqueezeTestSuite) TestIndicator() {
	squeeze := NewSqueeze()

	outputs, err := squeeze.Calculate(seriesFromCloses(breakoutCloses()))
	suite.NoError(err)
	suite.Equal([]string{"state", "bollinger_upper", "keltner_upper", "momentum"}, outputNames(outputs))
	suite.Equal(1.0, outputs[0].Line[20].Unwrap())
	suite.Equal(2.0, outputs[0].Line[31].Unwrap())

	cfg := DefaultSqueezeConfig()
	cfg.Momentum = "volume"
	suite.True(errors.HasCode(squeeze.Config(cfg), errors.ErrCodeInvalidParameter))
	suite.True(errors.HasCode(squeeze.Config("squeeze"), errors.ErrCodeInvalidType))

	cfg.Momentum = MomentumSourceTTMWave
	suite.NoError(squeeze.Config(cfg))

	_, err = squeeze.Calculate(seriesFromCloses(rising(5, 10)))
	suite.True(errors.IsInsufficientDataError(err))
}

func (suite *SqueezeTestSuite) TestConfigValidate() {
	suite.NoError(DefaultSqueezeConfig().Validate())

	tests := []struct {
		name   string
		mutate func(cfg *SqueezeConfig)
	}{
		{name: "negative mtm period", mutate: func(cfg *SqueezeConfig) { cfg.MTM.Period = -3 }},
		{name: "zero keltner period", mutate: func(cfg *SqueezeConfig) { cfg.Keltner.Period = 0 }},
		{name: "unknown bollinger type", mutate: func(cfg *SqueezeConfig) { cfg.Bollinger.Type = "bogus" }},
		{name: "unknown mtm smoothing type", mutate: func(cfg *SqueezeConfig) { cfg.MTM.SmoothType = "bogus" }},
		{name: "zero wave fast period", mutate: func(cfg *SqueezeConfig) { cfg.Wave.Fast = 0 }},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			cfg := DefaultSqueezeConfig()
			tc.mutate(&cfg)

			suite.True(errors.HasCode(cfg.Validate(), errors.ErrCodeInvalidParameter))
			suite.True(errors.HasCode(NewSqueeze().Config(cfg), errors.ErrCodeInvalidParameter))
		})
	}
}
