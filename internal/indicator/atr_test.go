package indicator

import (
	"testing"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type ATRTestSuite struct {
	suite.Suite
}

func TestATRSuite(t *testing.T) {
	suite.Run(t, new(ATRTestSuite))
}

func (suite *ATRTestSuite) TestTrueRange() {
	tests := []struct {
		name     string
		bar      types.Bar
		expected float64
	}{
		{"inside day", types.Bar{High: 10.5, Low: 9.5, PreClose: 10}, 1},
		{"gap up", types.Bar{High: 12.5, Low: 11.5, PreClose: 10}, 2.5},
		{"gap down", types.Bar{High: 8.5, Low: 8, PreClose: 10}, 2},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.InDelta(tc.expected, TrueRange(tc.bar), 1e-12)
		})
	}
}

func (suite *ATRTestSuite) TestCalculateATR() {
	s := seriesFromCloses([]float64{10, 12, 11})

	suite.Equal([]float64{1, 2.5, 1.5}, CalculateTR(s))

	atr := CalculateATR(s, ATRConfig{Period: 2, Type: MATypeSimple})
	suite.True(atr[0].IsNone())
	suite.InDelta(1.75, atr[1].Unwrap(), 1e-12)
	suite.InDelta(2.0, atr[2].Unwrap(), 1e-12)

	exp := CalculateATR(s, ATRConfig{Period: 2, Type: MATypeExponential})
	suite.Equal(1.0, exp[0].Unwrap())
	suite.Equal(2.0, exp[1].Unwrap())
}

func (suite *ATRTestSuite) TestATRIndicator() {
	atr := NewATR()
	suite.Equal(types.IndicatorTypeATR, atr.Name())
	suite.NoError(atr.Config(2, MATypeSimple))

	outputs, err := atr.Calculate(seriesFromCloses([]float64{10, 12, 11}))
	suite.NoError(err)
	suite.Require().Len(outputs, 2)
	suite.Equal("tr", outputs[0].Name)
	suite.Equal("atr", outputs[1].Name)

	err = atr.Config(0)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))
}
