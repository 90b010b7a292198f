package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type MomentumTestSuite struct {
	suite.Suite
}

func TestMomentumSuite(t *testing.T) {
	suite.Run(t, new(MomentumTestSuite))
}

func (suite *MomentumTestSuite) TestMomentumZeroUntilPastPeriod() {
	suite.Equal([]float64{0, 0, 0, 2, 2, 2}, Momentum(rising(6, 1), 2, series.Ascending))
	suite.Equal([]float64{2, 2, 2, 0, 0, 0}, Momentum([]float64{6, 5, 4, 3, 2, 1}, 2, series.Descending))
}

func (suite *MomentumTestSuite) TestCalculateMTMSmoothed() {
	s := seriesFromCloses(rising(6, 1))

	raw := CalculateMTM(s, MTMConfig{Period: 2, Source: PriceSourceClose})
	suite.Equal(LineOf([]float64{0, 0, 0, 2, 2, 2}), raw)

	smoothed := CalculateMTM(s, MTMConfig{Period: 2, Smooth: 2, SmoothType: MATypeSimple, Source: PriceSourceClose})
	suite.True(smoothed[0].IsNone())
	suite.InDelta(0.0, smoothed[2].Unwrap(), 1e-12)
	suite.InDelta(1.0, smoothed[3].Unwrap(), 1e-12)
	suite.InDelta(2.0, smoothed[5].Unwrap(), 1e-12)
}

func (suite *MomentumTestSuite) TestCalculateAO() {
	s := seriesFromCloses(rising(4, 1))
	ao := CalculateAO(s, AOConfig{Fast: 1, Slow: 2, Type: MATypeSimple, Source: PriceSourceClose})

	suite.True(ao[0].IsNone())
	suite.InDelta(0.5, ao[1].Unwrap(), 1e-12)
	suite.InDelta(0.5, ao[3].Unwrap(), 1e-12)
}

func (suite *MomentumTestSuite) TestIndicators() {
	s := seriesFromCloses(rising(40, 10))

	mtm := NewMTM()
	suite.NoError(mtm.Config(10, 3, MATypeExponential))
	outputs, err := mtm.Calculate(s)
	suite.NoError(err)
	suite.Len(outputs[0].Line, 40)

	ao := NewAO()
	suite.True(errors.HasCode(ao.Config(34, 5), errors.ErrCodeInvalidPeriod))
	suite.NoError(ao.Config(5, 34, PriceSourceOHLC))
	outputs, err = ao.Calculate(s)
	suite.NoError(err)
	suite.Equal("ao", outputs[0].Name)

	_, err = ao.Calculate(seriesFromCloses(rising(10, 10)))
	suite.True(errors.IsInsufficientDataError(err))
}
