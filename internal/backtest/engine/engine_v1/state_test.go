package engine

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/trading"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/stretchr/testify/suite"
)

// BacktestStateTestSuite is a test suite for BacktestState
type BacktestStateTestSuite struct {
	suite.Suite
	state   *BacktestState
	logger  *logger.Logger
	builder *trading.TradingSystem
}

// SetupSuite runs once before all tests in the suite
func (suite *BacktestStateTestSuite) SetupSuite() {
	suite.logger = logger.NewNopLogger()
	suite.builder = trading.NewTradingSystem(commission_fee.NewAShareCommissionFee())

	suite.state = NewBacktestState(suite.logger)
	suite.Require().NotNil(suite.state)
}

// TearDownSuite runs once after all tests in the suite
func (suite *BacktestStateTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.state.Close())
}

// SetupTest runs before each test
func (suite *BacktestStateTestSuite) SetupTest() {
	suite.Require().NoError(suite.state.Cleanup())
}

// TestBacktestStateSuite runs the test suite
func TestBacktestStateSuite(t *testing.T) {
	suite.Run(t, new(BacktestStateTestSuite))
}

// settleRoundTrip buys at index and sells the lot at index+holding, recording both.
func (suite *BacktestStateTestSuite) settleRoundTrip(ledger *Ledger, index int, holding int, buyPrice float64, sellPrice float64) {
	buy := suite.builder.CreateBuyTransaction(ledger.Security, types.TradeDate(20240102+index), index, 20000, buyPrice, "squeeze", "breakout").Unwrap()
	buy.SequenceID = ledger.NextSequenceID()

	result := ledger.Settle(optional.Some(buy))
	suite.Require().True(result.Settled())
	suite.Require().NoError(suite.state.Record(buy, result))

	sell := suite.builder.CreateSellTransaction(ledger.Security, types.TradeDate(20240102+index+holding), index+holding, buy.Count, sellPrice, "stop_loss", "")
	sell.SequenceID = buy.SequenceID

	result = ledger.Settle(optional.Some(sell))
	suite.Require().True(result.Settled())
	suite.Require().NoError(suite.state.Record(sell, result))
}

func (suite *BacktestStateTestSuite) TestRecordAndGetTransactions() {
	ledger := NewLedger(ledgerSecurity, 20000, false)

	suite.settleRoundTrip(ledger, 0, 3, 10, 11)
	suite.settleRoundTrip(ledger, 5, 2, 11, 10.5)

	transactions, err := suite.state.GetTransactions(ledgerSecurity.Code)
	suite.Require().NoError(err)
	suite.Require().Len(transactions, 4)
	suite.Equal(ledger.Transactions, transactions)

	count, err := suite.state.CountClosedTrades(ledgerSecurity.Code)
	suite.Require().NoError(err)
	suite.Equal(2, count)

	other, err := suite.state.GetTransactions("000001")
	suite.Require().NoError(err)
	suite.Empty(other)
}

func (suite *BacktestStateTestSuite) TestRecordSkipsRejected() {
	tx := suite.builder.CreateSellTransaction(ledgerSecurity, 20240102, 0, 100, 10, "stop_loss", "")

	err := suite.state.Record(tx, SettlementResult{Status: SettlementNoMatchingPosition})
	suite.Require().NoError(err)

	transactions, err := suite.state.GetTransactions(ledgerSecurity.Code)
	suite.Require().NoError(err)
	suite.Empty(transactions)
}

func (suite *BacktestStateTestSuite) TestCleanup() {
	ledger := NewLedger(ledgerSecurity, 20000, false)
	suite.settleRoundTrip(ledger, 0, 1, 10, 10)

	suite.Require().NoError(suite.state.Cleanup())

	transactions, err := suite.state.GetTransactions(ledgerSecurity.Code)
	suite.Require().NoError(err)
	suite.Empty(transactions)

	count, err := suite.state.CountClosedTrades(ledgerSecurity.Code)
	suite.Require().NoError(err)
	suite.Zero(count)
}

func (suite *BacktestStateTestSuite) TestWrite() {
	ledger := NewLedger(ledgerSecurity, 20000, false)
	suite.settleRoundTrip(ledger, 0, 4, 10, 12)

	dir := suite.T().TempDir()

	transactionsPath, closedTradesPath, err := suite.state.Write(filepath.Join(dir, "600000"))
	suite.Require().NoError(err)
	suite.Equal(filepath.Join(dir, "600000", "transactions.parquet"), transactionsPath)
	suite.Equal(filepath.Join(dir, "600000", "closed_trades.parquet"), closedTradesPath)

	suite.FileExists(transactionsPath)
	suite.FileExists(closedTradesPath)

	db, err := sql.Open("duckdb", "")
	suite.Require().NoError(err)
	defer db.Close()

	var rows int
	suite.Require().NoError(db.QueryRow("SELECT COUNT(*) FROM read_parquet('" + transactionsPath + "')").Scan(&rows))
	suite.Equal(2, rows)

	var (
		profit  float64
		holding int
	)
	suite.Require().NoError(db.QueryRow(
		"SELECT profit, sell_date_index - buy_date_index FROM read_parquet('" + closedTradesPath + "')",
	).Scan(&profit, &holding))
	suite.InDelta(ledger.ClosedTrades[0].Profit, profit, 1e-9)
	suite.Equal(4, holding)
}

func (suite *BacktestStateTestSuite) TestWriteEmptyJournal() {
	dir := filepath.Join(suite.T().TempDir(), "empty")

	_, _, err := suite.state.Write(dir)
	suite.Require().NoError(err)

	_, err = os.Stat(filepath.Join(dir, "transactions.parquet"))
	suite.NoError(err)
}

func (suite *BacktestStateTestSuite) TestCloseNil() {
	var state *BacktestState
	suite.NoError(state.Close())
}
