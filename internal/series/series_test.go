package series

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/stretchr/testify/suite"
)

type SeriesTestSuite struct {
	suite.Suite
}

func TestSeriesSuite(t *testing.T) {
	suite.Run(t, new(SeriesTestSuite))
}

func descendingBars() []types.Bar {
	return []types.Bar{
		{TradeDate: 20240105, Open: 10.3, High: 10.6, Low: 10.1, Close: 10.5, PreClose: 10.2, Change: 0.3},
		{TradeDate: 20240104, Open: 10.0, High: 10.4, Low: 9.9, Close: 10.2, PreClose: 10.0, Change: 0.2},
		{TradeDate: 20240103, Open: 9.8, High: 10.1, Low: 9.7, Close: 10.0, PreClose: 9.8, Change: 0.2},
	}
}

func (suite *SeriesTestSuite) TestDetectOrder() {
	suite.Equal(Descending, DetectOrder(descendingBars()))
	suite.Equal(Ascending, DetectOrder([]types.Bar{{TradeDate: 20240103}, {TradeDate: 20240104}}))
	suite.Equal(Ascending, DetectOrder(nil))
	suite.Equal(Ascending, DetectOrder([]types.Bar{{TradeDate: 20240103}}))
}

func (suite *SeriesTestSuite) TestNormalizeReversesDescendingInput() {
	bars := descendingBars()
	s := Wrap(bars).Normalize(DefaultPrecision)

	suite.True(s.IsOrganized())
	suite.Equal(Ascending, s.Order())
	suite.Equal(types.TradeDate(20240103), s.At(0).TradeDate)
	suite.Equal(types.TradeDate(20240105), s.At(2).TradeDate)
	// in place
	suite.Equal(types.TradeDate(20240103), bars[0].TradeDate)
	suite.True(s.OrganizeState().Unwrap().Reversed)
	suite.False(s.OrganizeState().Unwrap().Adjusted)
}

func (suite *SeriesTestSuite) TestNormalizeAppliesAdjustmentOnce() {
	bars := descendingBars()
	// the earliest bar carries the factor after reversal
	bars[2].AdjustmentFactor = optional.Some(0.5)

	s := Wrap(bars).Normalize(DefaultPrecision)
	first := s.At(0)
	suite.InDelta(4.9, first.Open, 1e-9)
	suite.InDelta(5.0, first.Close, 1e-9)
	suite.InDelta(4.9, first.PreClose, 1e-9)
	suite.InDelta(0.1, first.Change, 1e-9)
	suite.InDelta(5.25, s.At(2).Close, 1e-9)

	s.Normalize(DefaultPrecision)
	suite.InDelta(5.0, s.At(0).Close, 1e-9)
	suite.InDelta(5.25, s.At(2).Close, 1e-9)
}

func (suite *SeriesTestSuite) TestNormalizeRoundsToPrecision() {
	bars := []types.Bar{
		{TradeDate: 20240103, Close: 10.0, AdjustmentFactor: optional.Some(1.23456)},
	}

	s := New(bars, 2)
	suite.Equal(12.35, s.At(0).Close)
	// New copies its input
	suite.Equal(10.0, bars[0].Close)
}

func (suite *SeriesTestSuite) TestNormalizeIsIdempotent() {
	once := New(descendingBars(), DefaultPrecision)
	twice := New(descendingBars(), DefaultPrecision).Normalize(DefaultPrecision).Normalize(DefaultPrecision)

	suite.Equal(once.Bars(), twice.Bars())
}

func (suite *SeriesTestSuite) TestEmptySeries() {
	s := New(nil, DefaultPrecision)
	suite.True(s.IsOrganized())
	suite.Equal(0, s.Len())

	_, ok := s.Last()
	suite.False(ok)
	suite.Equal(0, s.StartIndex(20240101))
}

func (suite *SeriesTestSuite) TestStartIndexAndIndexOf() {
	s := New(descendingBars(), DefaultPrecision)

	tests := []struct {
		name     string
		date     types.TradeDate
		start    int
		found    bool
		foundIdx int
	}{
		{"before first", 20240101, 0, false, -1},
		{"exact middle", 20240104, 1, true, 1},
		{"after last", 20240110, 3, false, -1},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.start, s.StartIndex(tc.date))
			index, ok := s.IndexOf(tc.date)
			suite.Equal(tc.found, ok)
			suite.Equal(tc.foundIdx, index)
		})
	}
}

func (suite *SeriesTestSuite) TestMemoComputesOnce() {
	s := New(descendingBars(), DefaultPrecision)
	calls := 0
	compute := func() []float64 {
		calls++
		return s.Values(func(bar types.Bar) float64 { return bar.Close })
	}

	key := Key("close", 1)
	suite.Equal("close:1", key)

	first := Memo(s, key, compute)
	second := Memo(s, key, compute)

	suite.Equal(1, calls)
	suite.Equal(first, second)
	suite.Equal([]float64{10.0, 10.2, 10.5}, first)
	suite.Equal(1, s.MemoSize())
}
