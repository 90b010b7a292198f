package engine

import (
	"testing"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-backtest/internal/trading"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/stretchr/testify/suite"
)

var ledgerSecurity = types.Security{Code: "600000", Name: "PF Bank", Exchange: types.ExchangeSSE}

type LedgerTestSuite struct {
	suite.Suite
	zero   *trading.TradingSystem
	aShare *trading.TradingSystem
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (suite *LedgerTestSuite) SetupSuite() {
	suite.zero = trading.NewTradingSystem(commission_fee.NewZeroCommissionFee())
	suite.aShare = trading.NewTradingSystem(commission_fee.NewAShareCommissionFee())
}

func (suite *LedgerTestSuite) buy(builder *trading.TradingSystem, sequenceID int, index int, cash float64, price float64) types.Transaction {
	tx := builder.CreateBuyTransaction(ledgerSecurity, types.TradeDate(20240102+index), index, cash, price, "test", "")
	suite.Require().True(tx.IsSome())

	buy := tx.Unwrap()
	buy.SequenceID = sequenceID

	return buy
}

func (suite *LedgerTestSuite) sell(builder *trading.TradingSystem, sequenceID int, index int, count int, price float64) types.Transaction {
	sell := builder.CreateSellTransaction(ledgerSecurity, types.TradeDate(20240102+index), index, count, price, "test", "")
	sell.SequenceID = sequenceID

	return sell
}

func (suite *LedgerTestSuite) TestNewLedger() {
	ledger := NewLedger(ledgerSecurity, 10000, false)

	suite.Equal(10000.0, ledger.Balance)
	suite.Empty(ledger.Positions)
	suite.Equal(1, ledger.NextSequenceID())
	suite.Equal(2, ledger.NextSequenceID())
}

func (suite *LedgerTestSuite) TestSettleEmpty() {
	ledger := NewLedger(ledgerSecurity, 10000, false)

	result := ledger.Settle(optional.None[types.Transaction]())

	suite.Equal(SettlementEmpty, result.Status)
	suite.NoError(result.Err)
	suite.False(result.Settled())
	suite.Equal(10000.0, ledger.Balance)
	suite.Empty(ledger.Transactions)
}

func (suite *LedgerTestSuite) TestBuyThenSellClosesTrade() {
	ledger := NewLedger(ledgerSecurity, 10000, false)

	buy := suite.buy(suite.zero, 1, 0, 10000, 10)
	suite.Equal(1000, buy.Count)

	result := ledger.Settle(optional.Some(buy))
	suite.True(result.Settled())
	suite.True(result.ClosedTrade.IsNone())
	suite.InDelta(0.0, ledger.Balance, 1e-9)
	suite.Require().Len(ledger.Positions, 1)
	suite.Equal(1, ledger.Positions[0].SequenceID)
	suite.Equal(1000, ledger.Positions[0].Count)

	suite.InDelta(11000.0, ledger.AccountValue(11), 1e-9)

	sell := suite.sell(suite.zero, 1, 5, 1000, 11)
	result = ledger.Settle(optional.Some(sell))
	suite.True(result.Settled())
	suite.Require().True(result.ClosedTrade.IsSome())

	trade := result.ClosedTrade.Unwrap()
	suite.Equal(1, trade.SequenceID)
	suite.Equal(sell.Date, trade.TradeDate)
	suite.InDelta(1000.0, trade.Profit, 1e-9)
	suite.InDelta(1000.0, trade.Income, 1e-9)
	suite.Equal(5, trade.HoldingDays())
	suite.True(trade.IsWin())

	suite.Empty(ledger.Positions)
	suite.Len(ledger.ClosedTrades, 1)
	suite.Len(ledger.Transactions, 2)
	suite.InDelta(11000.0, ledger.Balance, 1e-9)
}

func (suite *LedgerTestSuite) TestFeesReduceProfitButNotIncome() {
	ledger := NewLedger(ledgerSecurity, 100000, false)

	buy := suite.buy(suite.aShare, 1, 0, 100000, 10)
	suite.Require().True(ledger.Settle(optional.Some(buy)).Settled())

	sell := suite.sell(suite.aShare, 1, 1, buy.Count, 10)
	result := ledger.Settle(optional.Some(sell))
	suite.Require().True(result.Settled())

	trade := result.ClosedTrade.Unwrap()
	suite.InDelta(0.0, trade.Income, 1e-9)
	suite.Less(trade.Profit, 0.0)
	suite.False(trade.IsWin())
	suite.InDelta(buy.Total+sell.Total, trade.Profit, 1e-9)
}

func (suite *LedgerTestSuite) TestBalanceEqualsInitialPlusTotals() {
	ledger := NewLedger(ledgerSecurity, 50000, true)

	prices := []float64{10.12, 9.87, 11.03, 10.55}
	for i, price := range prices {
		buy := suite.buy(suite.aShare, ledger.NextSequenceID(), i, 12000, price)
		suite.Require().True(ledger.Settle(optional.Some(buy)).Settled())
	}

	for len(ledger.Positions) > 0 {
		position := ledger.Positions[0]
		sell := suite.sell(suite.aShare, position.SequenceID, 10, position.Count, 10.77)
		suite.Require().True(ledger.Settle(optional.Some(sell)).Settled())
	}

	expected := 50000.0
	for _, tx := range ledger.Transactions {
		expected += tx.Total
	}

	suite.InDelta(expected, ledger.Balance, 1e-6)
	suite.Len(ledger.ClosedTrades, len(prices))

	profit := 0.0
	for _, trade := range ledger.ClosedTrades {
		profit += trade.Profit
	}

	suite.InDelta(ledger.Balance-50000, profit, 1e-6)
}

func (suite *LedgerTestSuite) TestInsufficientFunds() {
	ledger := NewLedger(ledgerSecurity, 5000, false)

	buy := suite.buy(suite.zero, 1, 0, 10000, 10)
	result := ledger.Settle(optional.Some(buy))

	suite.Equal(SettlementInsufficientFunds, result.Status)
	suite.True(errors.HasCode(result.Err, errors.ErrCodeInsufficientFunds))
	suite.Equal(5000.0, ledger.Balance)
	suite.Empty(ledger.Positions)
	suite.Empty(ledger.Transactions)
}

func (suite *LedgerTestSuite) TestPartialLotRejected() {
	ledger := NewLedger(ledgerSecurity, 10000, false)

	buy := suite.buy(suite.zero, 1, 0, 10000, 10)
	suite.Require().True(ledger.Settle(optional.Some(buy)).Settled())

	sell := suite.sell(suite.zero, 1, 1, 150, 11)
	result := ledger.Settle(optional.Some(sell))

	suite.Equal(SettlementPartialLot, result.Status)
	suite.True(errors.HasCode(result.Err, errors.ErrCodeInvalidTransaction))
	suite.False(result.Settled())
	suite.InDelta(0.0, ledger.Balance, 1e-9)
	suite.Len(ledger.Positions, 1)
	suite.Len(ledger.Transactions, 1)
}

func (suite *LedgerTestSuite) TestFixedPositionModeAllowsNegativeBalance() {
	ledger := NewLedger(ledgerSecurity, 5000, true)

	buy := suite.buy(suite.zero, 1, 0, 10000, 10)
	result := ledger.Settle(optional.Some(buy))

	suite.True(result.Settled())
	suite.InDelta(-5000.0, ledger.Balance, 1e-9)
	suite.Len(ledger.Positions, 1)
}

func (suite *LedgerTestSuite) TestSellWithoutPosition() {
	ledger := NewLedger(ledgerSecurity, 10000, false)

	buy := suite.buy(suite.zero, 1, 0, 10000, 10)
	suite.Require().True(ledger.Settle(optional.Some(buy)).Settled())

	sell := suite.sell(suite.zero, 7, 1, 1000, 11)
	result := ledger.Settle(optional.Some(sell))

	suite.Equal(SettlementNoMatchingPosition, result.Status)
	suite.True(errors.HasCode(result.Err, errors.ErrCodeSequenceMismatch))
	suite.True(result.ClosedTrade.IsNone())
	suite.InDelta(0.0, ledger.Balance, 1e-9)
	suite.Len(ledger.Positions, 1)
	suite.Len(ledger.Transactions, 1)
}

func (suite *LedgerTestSuite) TestSellClosesOnlyItsLot() {
	ledger := NewLedger(ledgerSecurity, 10000, true)

	first := suite.buy(suite.zero, 1, 0, 10000, 10)
	second := suite.buy(suite.zero, 2, 1, 10000, 8)
	suite.Require().True(ledger.Settle(optional.Some(first)).Settled())
	suite.Require().True(ledger.Settle(optional.Some(second)).Settled())

	sell := suite.sell(suite.zero, 2, 2, second.Count, 9)
	result := ledger.Settle(optional.Some(sell))
	suite.Require().True(result.Settled())

	trade := result.ClosedTrade.Unwrap()
	suite.Equal(2, trade.SequenceID)
	suite.InDelta(float64(second.Count), trade.Profit, 1e-9)

	suite.Require().Len(ledger.Positions, 1)
	suite.Equal(1, ledger.Positions[0].SequenceID)
}

func (suite *LedgerTestSuite) TestAccountValue() {
	ledger := NewLedger(ledgerSecurity, 20000, true)

	suite.InDelta(20000.0, ledger.AccountValue(12), 1e-9)

	suite.Require().True(ledger.Settle(optional.Some(suite.buy(suite.zero, 1, 0, 10000, 10))).Settled())
	suite.Require().True(ledger.Settle(optional.Some(suite.buy(suite.zero, 2, 1, 10000, 10))).Settled())

	suite.InDelta(0.0, ledger.Balance, 1e-9)
	suite.InDelta(24000.0, ledger.AccountValue(12), 1e-9)
}
