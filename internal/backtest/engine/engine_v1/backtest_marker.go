package engine

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/marker"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"go.uber.org/zap"
)

var _ marker.Marker = (*BacktestMarker)(nil)

var signalColumns = []string{
	"code", "security_name", "exchange", "trade_date", "bar_index",
	"signal_type", "rule", "reason", "indicator", "raw_value",
}

// BacktestMarker implements the Marker interface for scan runs.
// It records signals in a DuckDB database.
type BacktestMarker struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewBacktestMarker creates a new instance of BacktestMarker.
func NewBacktestMarker(logger *logger.Logger) (*BacktestMarker, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		logger.Error("Failed to open database", zap.Error(err))

		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		db.Close()

		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	m := &BacktestMarker{
		logger: logger,
		db:     db,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}

	if err := m.initialize(); err != nil {
		db.Close()

		return nil, err
	}

	return m, nil
}

// Mark implements the Marker interface.
func (m *BacktestMarker) Mark(signal types.Signal) error {
	if m == nil || m.db == nil {
		return fmt.Errorf("backtest marker or database is nil")
	}

	rawValue, err := json.Marshal(signal.RawValue)
	if err != nil {
		return fmt.Errorf("failed to encode signal values: %w", err)
	}

	var nextID int

	if err := m.db.QueryRow("SELECT nextval('signal_id_seq')").Scan(&nextID); err != nil {
		return fmt.Errorf("failed to get next ID from sequence: %w", err)
	}

	_, err = m.sq.
		Insert("signals").
		Columns(append([]string{"id"}, signalColumns...)...).
		Values(
			nextID, signal.Security.Code, signal.Security.Name, string(signal.Security.Exchange),
			int(signal.Date), signal.Index, string(signal.Type), signal.Name, signal.Reason,
			string(signal.Indicator), string(rawValue),
		).
		RunWith(m.db).
		Exec()
	if err != nil {
		return fmt.Errorf("failed to insert signal: %w", err)
	}

	return nil
}

// GetSignals implements the Marker interface.
func (m *BacktestMarker) GetSignals() ([]types.Signal, error) {
	return m.query(nil)
}

// GetSignalsByRule implements the Marker interface.
func (m *BacktestMarker) GetSignalsByRule(label string) ([]types.Signal, error) {
	return m.query(squirrel.Eq{"rule": label})
}

func (m *BacktestMarker) query(where squirrel.Sqlizer) ([]types.Signal, error) {
	if m == nil || m.db == nil {
		return nil, fmt.Errorf("backtest marker or database is nil")
	}

	query := m.sq.
		Select(signalColumns...).
		From("signals").
		OrderBy("trade_date ASC", "code ASC", "id ASC")
	if where != nil {
		query = query.Where(where)
	}

	rows, err := query.RunWith(m.db).Query()
	if err != nil {
		return nil, fmt.Errorf("failed to query signals: %w", err)
	}
	defer rows.Close()

	var signals []types.Signal

	for rows.Next() {
		var (
			signal    types.Signal
			exchange  string
			tradeDate int
			kind      string
			indicator string
			rawValue  string
		)

		err := rows.Scan(
			&signal.Security.Code,
			&signal.Security.Name,
			&exchange,
			&tradeDate,
			&signal.Index,
			&kind,
			&signal.Name,
			&signal.Reason,
			&indicator,
			&rawValue,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan signal: %w", err)
		}

		if err := json.Unmarshal([]byte(rawValue), &signal.RawValue); err != nil {
			return nil, fmt.Errorf("failed to decode signal values: %w", err)
		}

		signal.Security.Exchange = types.Exchange(exchange)
		signal.Date = types.TradeDate(tradeDate)
		signal.Type = types.SignalType(kind)
		signal.Indicator = types.IndicatorType(indicator)
		signals = append(signals, signal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating signals: %w", err)
	}

	return signals, nil
}

// Write saves the signals to signals.parquet in the specified directory.
func (m *BacktestMarker) Write(path string) error {
	if m == nil || m.db == nil || m.logger == nil {
		return fmt.Errorf("backtest marker, database, or logger is nil")
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	signalsPath := filepath.Join(path, "signals.parquet")

	_, err := m.db.Exec(fmt.Sprintf(`COPY signals TO '%s' (FORMAT PARQUET)`, signalsPath))
	if err != nil {
		return fmt.Errorf("failed to export signals to Parquet: %w", err)
	}

	m.logger.Info("Successfully exported signals to Parquet file",
		zap.String("signals", signalsPath),
	)

	return nil
}

// Cleanup resets the database state.
func (m *BacktestMarker) Cleanup() error {
	if m == nil || m.db == nil {
		return fmt.Errorf("backtest marker or database is nil")
	}

	_, err := m.db.Exec(`
		DROP TABLE IF EXISTS signals;
		DROP SEQUENCE IF EXISTS signal_id_seq;
	`)
	if err != nil {
		return fmt.Errorf("failed to cleanup signals table: %w", err)
	}

	return m.initialize()
}

// Close closes the database connection.
func (m *BacktestMarker) Close() error {
	if m == nil || m.db == nil {
		return nil
	}

	return m.db.Close()
}

func (m *BacktestMarker) initialize() error {
	if m == nil || m.db == nil {
		return fmt.Errorf("backtest marker or database is nil")
	}

	if _, err := m.db.Exec(`CREATE SEQUENCE IF NOT EXISTS signal_id_seq`); err != nil {
		return fmt.Errorf("failed to create sequence: %w", err)
	}

	_, err := m.db.Exec(`
		CREATE TABLE IF NOT EXISTS signals (
			id INTEGER PRIMARY KEY,
			code TEXT,
			security_name TEXT,
			exchange TEXT,
			trade_date INTEGER,
			bar_index INTEGER,
			signal_type TEXT,
			rule TEXT,
			reason TEXT,
			indicator TEXT,
			raw_value TEXT
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create signals table: %w", err)
	}

	return nil
}
