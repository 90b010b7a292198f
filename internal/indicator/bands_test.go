package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type BandsTestSuite struct {
	suite.Suite
}

func TestBandsSuite(t *testing.T) {
	suite.Run(t, new(BandsTestSuite))
}

func (suite *BandsTestSuite) TestKeltner() {
	s := seriesFromCloses([]float64{10, 12, 11})
	band := CalculateKeltner(s, KeltnerConfig{Period: 2, Multiplier: 1.5, Type: MATypeSimple, Source: PriceSourceClose})

	suite.True(band.Upper[0].IsNone())
	suite.InDelta(11.0, band.Mid[1].Unwrap(), 1e-12)
	suite.InDelta(13.625, band.Upper[1].Unwrap(), 1e-12)
	suite.InDelta(8.375, band.Lower[1].Unwrap(), 1e-12)
	suite.InDelta(14.5, band.Upper[2].Unwrap(), 1e-12)
	suite.InDelta(2.0, band.Deviation[2].Unwrap(), 1e-12)
}

func (suite *BandsTestSuite) TestBollinger() {
	s := seriesFromCloses([]float64{10, 12, 11})
	band := CalculateBollinger(s, BollingerConfig{Period: 2, Multiplier: 2, Type: MATypeSimple, Source: PriceSourceClose})

	suite.True(band.Mid[0].IsNone())
	suite.True(band.Lower[0].IsNone())
	suite.InDelta(13.0, band.Upper[1].Unwrap(), 1e-12)
	suite.InDelta(9.0, band.Lower[1].Unwrap(), 1e-12)
	suite.InDelta(12.5, band.Upper[2].Unwrap(), 1e-12)
	suite.InDelta(0.5, band.Deviation[2].Unwrap(), 1e-12)
}

func (suite *BandsTestSuite) TestBandIndicators() {
	s := seriesFromCloses(rising(25, 10))

	kc := NewKeltnerChannel()
	outputs, err := kc.Calculate(s)
	suite.NoError(err)
	suite.Equal([]string{"mid", "upper", "lower", "atr"}, outputNames(outputs))

	bb := NewBollingerBands()
	outputs, err = bb.Calculate(s)
	suite.NoError(err)
	suite.Equal([]string{"mid", "upper", "lower", "stddev"}, outputNames(outputs))

	suite.True(errors.HasCode(bb.Config(20), errors.ErrCodeMissingParameter))
	suite.True(errors.HasCode(bb.Config(20, 2), errors.ErrCodeInvalidType))
	suite.True(errors.HasCode(kc.Config(20, -1.0), errors.ErrCodeInvalidMultiplier))
	suite.NoError(kc.Config(10, 2.0, MATypeExponential))
}

func outputNames(outputs []Output) []string {
	names := make([]string, len(outputs))
	for i, output := range outputs {
		names[i] = output.Name
	}

	return names
}
