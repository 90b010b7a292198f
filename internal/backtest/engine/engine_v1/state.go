package engine

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"go.uber.org/zap"
)

var transactionColumns = []string{
	"code", "sequence_id", "trade_date", "date_index", "kind", "count", "price",
	"total", "gross_amount", "commission", "transfer_fee", "stamp_duty", "method_type", "memo",
}

var closedTradeColumns = []string{
	"code", "sequence_id", "trade_date", "profit", "income",
	"buy_date", "buy_date_index", "buy_price", "buy_total", "buy_method_type",
	"sell_date_index", "sell_price", "sell_total", "sell_method_type", "count",
}

// BacktestState journals the settled transactions and closed trades of a run in DuckDB.
type BacktestState struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

func NewBacktestState(logger *logger.Logger) *BacktestState {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		logger.Error("Failed to open database", zap.Error(err))

		return nil
	}

	return &BacktestState{
		logger: logger,
		db:     db,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Initialize creates the journal tables
func (b *BacktestState) Initialize() error {
	_, err := b.db.Exec(`
		CREATE TABLE IF NOT EXISTS transactions (
			code TEXT,
			sequence_id INTEGER,
			trade_date INTEGER,
			date_index INTEGER,
			kind TEXT,
			count INTEGER,
			price DOUBLE,
			total DOUBLE,
			gross_amount DOUBLE,
			commission DOUBLE,
			transfer_fee DOUBLE,
			stamp_duty DOUBLE,
			method_type TEXT,
			memo TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create transactions table: %w", err)
	}

	_, err = b.db.Exec(`
		CREATE TABLE IF NOT EXISTS closed_trades (
			code TEXT,
			sequence_id INTEGER,
			trade_date INTEGER,
			profit DOUBLE,
			income DOUBLE,
			buy_date INTEGER,
			buy_date_index INTEGER,
			buy_price DOUBLE,
			buy_total DOUBLE,
			buy_method_type TEXT,
			sell_date_index INTEGER,
			sell_price DOUBLE,
			sell_total DOUBLE,
			sell_method_type TEXT,
			count INTEGER
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create closed_trades table: %w", err)
	}

	return nil
}

// Record journals one settled transaction and, for a sell, the trade it closed.
func (b *BacktestState) Record(tx types.Transaction, result SettlementResult) error {
	if !result.Settled() {
		return nil
	}

	dbTx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = b.sq.
		Insert("transactions").
		Columns(transactionColumns...).
		Values(
			tx.Code, tx.SequenceID, int(tx.Date), tx.DateIndex, string(tx.Kind), tx.Count, tx.Price,
			tx.Total, tx.GrossAmount, tx.Commission, tx.TransferFee, tx.StampDuty, tx.MethodType, tx.Memo,
		).
		RunWith(dbTx).
		Exec()
	if err != nil {
		dbTx.Rollback()

		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	if result.ClosedTrade.IsSome() {
		trade := result.ClosedTrade.Unwrap()

		_, err = b.sq.
			Insert("closed_trades").
			Columns(closedTradeColumns...).
			Values(
				trade.Sell.Code, trade.SequenceID, int(trade.TradeDate), trade.Profit, trade.Income,
				int(trade.Buy.Date), trade.Buy.DateIndex, trade.Buy.Price, trade.Buy.Total, trade.Buy.MethodType,
				trade.Sell.DateIndex, trade.Sell.Price, trade.Sell.Total, trade.Sell.MethodType, trade.Sell.Count,
			).
			RunWith(dbTx).
			Exec()
		if err != nil {
			dbTx.Rollback()

			return fmt.Errorf("failed to insert closed trade: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTransactions returns the journaled transactions of code in settlement order.
func (b *BacktestState) GetTransactions(code string) ([]types.Transaction, error) {
	rows, err := b.sq.
		Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"code": code}).
		OrderBy("date_index ASC", "rowid ASC").
		RunWith(b.db).
		Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []types.Transaction

	for rows.Next() {
		var (
			tx   types.Transaction
			date int
			kind string
		)

		err := rows.Scan(
			&tx.Code, &tx.SequenceID, &date, &tx.DateIndex, &kind, &tx.Count, &tx.Price,
			&tx.Total, &tx.GrossAmount, &tx.Commission, &tx.TransferFee, &tx.StampDuty, &tx.MethodType, &tx.Memo,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		tx.Date = types.TradeDate(date)
		tx.Kind = types.TransactionKind(kind)
		transactions = append(transactions, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}

// CountClosedTrades returns how many trades of code were closed.
func (b *BacktestState) CountClosedTrades(code string) (int, error) {
	var count int

	err := b.sq.
		Select("COUNT(*)").
		From("closed_trades").
		Where(squirrel.Eq{"code": code}).
		RunWith(b.db).
		QueryRow().
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count closed trades: %w", err)
	}

	return count, nil
}

// Cleanup resets the database state
func (b *BacktestState) Cleanup() error {
	_, err := b.db.Exec(`
		DROP TABLE IF EXISTS transactions;
		DROP TABLE IF EXISTS closed_trades;
	`)
	if err != nil {
		return fmt.Errorf("failed to cleanup tables: %w", err)
	}

	return b.Initialize()
}

// Write exports the journal to transactions.parquet and closed_trades.parquet in path.
func (b *BacktestState) Write(path string) (transactionsPath string, closedTradesPath string, err error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create directory: %w", err)
	}

	// COPY has no squirrel builder
	transactionsPath = filepath.Join(path, "transactions.parquet")

	_, err = b.db.Exec(fmt.Sprintf(`COPY transactions TO '%s' (FORMAT PARQUET)`, transactionsPath))
	if err != nil {
		return "", "", fmt.Errorf("failed to export transactions to Parquet: %w", err)
	}

	closedTradesPath = filepath.Join(path, "closed_trades.parquet")

	_, err = b.db.Exec(fmt.Sprintf(`COPY closed_trades TO '%s' (FORMAT PARQUET)`, closedTradesPath))
	if err != nil {
		return "", "", fmt.Errorf("failed to export closed trades to Parquet: %w", err)
	}

	b.logger.Info("Successfully exported backtest journal to Parquet files",
		zap.String("transactions", transactionsPath),
		zap.String("closed_trades", closedTradesPath),
	)

	return transactionsPath, closedTradesPath, nil
}

// Close closes the database connection.
func (b *BacktestState) Close() error {
	if b == nil || b.db == nil {
		return nil
	}

	return b.db.Close()
}
