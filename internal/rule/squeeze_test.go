package rule

import (
	"testing"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type SqueezeRuleTestSuite struct {
	suite.Suite
	rule Rule
	ctx  Context
}

func TestSqueezeRuleSuite(t *testing.T) {
	suite.Run(t, new(SqueezeRuleTestSuite))
}

func (suite *SqueezeRuleTestSuite) SetupTest() {
	rule, err := NewSqueezeRule("squeeze", nil)
	suite.Require().NoError(err)

	suite.rule = rule
	suite.ctx = contextFromCloses(breakoutCloses())
}

func (suite *SqueezeRuleTestSuite) TestTryBuyOnlyWhenFired() {
	suite.True(suite.rule.TryBuy(suite.ctx, 100000, 30).IsNone())
	suite.True(suite.rule.TryBuy(suite.ctx, 100000, 32).IsNone())

	buy := suite.rule.TryBuy(suite.ctx, 100000, 31)
	suite.Require().True(buy.IsSome())
	suite.Equal(types.TransactionKindBuy, buy.Unwrap().Kind)
	suite.Equal(14.0, buy.Unwrap().Price)
	suite.Equal("squeeze", buy.Unwrap().MethodType)

	suite.True(suite.rule.TryBuy(suite.ctx, 1000, 31).IsNone(), "one lot costs more than the cash")
}

func (suite *SqueezeRuleTestSuite) TestTrySellWhenStateLeavesBuy() {
	position := positionAt(suite.ctx, 31, 100)

	suite.True(suite.rule.TrySell(suite.ctx, position, 31).IsNone())
	suite.True(suite.rule.TrySell(suite.ctx, position, 32).IsNone())

	sell := suite.rule.TrySell(suite.ctx, position, 33)
	suite.Require().True(sell.IsSome())
	suite.Equal(100, sell.Unwrap().Count)
	suite.Equal(15.0, sell.Unwrap().Price)
}

func (suite *SqueezeRuleTestSuite) TestCheck() {
	scannable, ok := suite.rule.(Scannable)
	suite.Require().True(ok)

	suite.True(scannable.Check(suite.ctx, 5).IsNone())

	watch := scannable.Check(suite.ctx, 25)
	suite.Require().True(watch.IsSome())
	suite.Equal(types.SignalTypeWatch, watch.Unwrap().Type)

	fired := scannable.Check(suite.ctx, 31)
	suite.Require().True(fired.IsSome())
	suite.Equal(types.SignalTypeBuy, fired.Unwrap().Type)
	suite.Equal("000001", fired.Unwrap().Security.Code)
	suite.Equal(4.0, fired.Unwrap().RawValue["momentum"])
}

func (suite *SqueezeRuleTestSuite) TestCreateReports() {
	reportable, ok := suite.rule.(Reportable)
	suite.Require().True(ok)

	report, err := reportable.CreateReports([]types.Signal{
		{Type: types.SignalTypeWatch, Security: types.Security{Code: "A"}, RawValue: map[string]float64{"momentum": 9}},
		{Type: types.SignalTypeBuy, Security: types.Security{Code: "B"}, RawValue: map[string]float64{"momentum": 1}},
		{Type: types.SignalTypeBuy, Security: types.Security{Code: "C"}, RawValue: map[string]float64{"momentum": 3}},
	})
	suite.NoError(err)
	suite.Equal("squeeze", report.Title)
	suite.Require().Len(report.Rows, 3)
	suite.Equal("C", report.Rows[0][0])
	suite.Equal("B", report.Rows[1][0])
	suite.Equal("A", report.Rows[2][0])
	suite.Equal("3.000", report.Rows[0][4])
}

func (suite *SqueezeRuleTestSuite) TestOptions() {
	rule, err := NewSqueezeRule("fast", map[string]any{
		"keltner": map[string]any{"period": 10, "multiplier": 1.2, "type": "exponential", "source": "close"},
	})
	suite.Require().NoError(err)
	suite.Equal("fast", rule.Label())
	suite.Contains(rule.ShowOptions(), "multiplier: 1.2")

	_, err = NewSqueezeRule("bad", map[string]any{"momentum": "volume"})
	suite.True(errors.HasCode(err, errors.ErrCodeRuleConfigError))
}

func (suite *SqueezeRuleTestSuite) TestInvalidComponentOptions() {
	tests := []struct {
		name    string
		options map[string]any
	}{
		{name: "negative mtm period", options: map[string]any{"mtm": map[string]any{"period": -3}}},
		{name: "zero keltner period", options: map[string]any{"keltner": map[string]any{"period": 0}}},
		{name: "unknown bollinger type", options: map[string]any{"bollinger": map[string]any{"type": "bogus"}}},
		{name: "zero bollinger multiplier", options: map[string]any{"bollinger": map[string]any{"multiplier": 0}}},
		{name: "unknown keltner source", options: map[string]any{"keltner": map[string]any{"source": "volume"}}},
		{name: "negative mtm smoothing", options: map[string]any{"mtm": map[string]any{"smooth": -1}}},
		{name: "slow wave not above fast", options: map[string]any{"wave": map[string]any{"fast": 8, "slow": 8}}},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			rule, err := NewSqueezeRule("squeeze", tc.options)
			suite.Nil(rule)
			suite.True(errors.HasCode(err, errors.ErrCodeRuleConfigError), "got %v", err)
		})
	}
}

func (suite *SqueezeRuleTestSuite) TestRegistryRejectsInvalidComponentOptions() {
	_, err := NewDefaultRegistry().Build(SqueezeRuleName, "sq", map[string]any{"mtm": map[string]any{"period": -3}})
	suite.True(errors.HasCode(err, errors.ErrCodeRuleConfigError))
}
