package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	_ "github.com/mattn/go-sqlite3"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"go.uber.org/zap"
)

// SQLiteSchema creates the tables a sqlite data source reads from.
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS securities (
	code        TEXT PRIMARY KEY,
	name        TEXT NOT NULL DEFAULT '',
	exchange    TEXT NOT NULL,
	update_time DATETIME
);

CREATE TABLE IF NOT EXISTS daily_bars (
	code       TEXT NOT NULL,
	trade_date INTEGER NOT NULL,
	open       REAL NOT NULL,
	high       REAL NOT NULL,
	low        REAL NOT NULL,
	close      REAL NOT NULL,
	pre_close  REAL NOT NULL DEFAULT 0,
	"change"   REAL NOT NULL DEFAULT 0,
	vol        REAL NOT NULL DEFAULT 0,
	adj_factor REAL,
	PRIMARY KEY (code, trade_date)
);
`

var barColumns = []string{"trade_date", "open", "high", "low", "close", "pre_close", `"change"`, "vol", "adj_factor"}

// SQLDataSource reads securities and daily bars through database/sql.
// The same queries run against duckdb views over parquet files and against sqlite tables.
type SQLDataSource struct {
	db     *sql.DB
	driver string
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDuckDBDataSource exposes securities.parquet and daily_bars.parquet in dir as views
// of an in-memory duckdb database.
func NewDuckDBDataSource(dir string, log *logger.Logger) (*SQLDataSource, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open duckdb", err)
	}

	// duckdb has no placeholders in DDL, so the views are built with Sprintf
	for _, table := range []string{SecuritiesTable, DailyBarsTable} {
		path := filepath.Join(dir, table+".parquet")

		query := fmt.Sprintf(`CREATE VIEW %s AS SELECT * FROM read_parquet('%s');`, table, path)
		if _, err := db.Exec(query); err != nil {
			db.Close()

			return nil, errors.Wrapf(errors.ErrCodeDataSourceUnavailable, err, "failed to create view %s from %s", table, path)
		}
	}

	log.Debug("Opened duckdb data source", zap.String("dir", dir))

	return newSQLDataSource(db, "duckdb", log), nil
}

// NewSQLiteDataSource opens (or creates) a sqlite database file and makes sure the tables exist.
func NewSQLiteDataSource(path string, log *logger.Logger) (*SQLDataSource, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open sqlite", err)
	}

	if _, err := db.Exec(SQLiteSchema); err != nil {
		db.Close()

		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to create sqlite schema", err)
	}

	log.Debug("Opened sqlite data source", zap.String("path", path))

	return newSQLDataSource(db, "sqlite3", log), nil
}

func newSQLDataSource(db *sql.DB, driver string, log *logger.Logger) *SQLDataSource {
	return &SQLDataSource{
		db:     db,
		driver: driver,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// ListSecurities implements DataSource.
func (s *SQLDataSource) ListSecurities(ctx context.Context) ([]types.Security, error) {
	query, args, err := s.sq.
		Select("code", "name", "exchange").
		From(SecuritiesTable).
		OrderBy("code").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build securities query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query securities", err)
	}
	defer rows.Close()

	var securities []types.Security

	for rows.Next() {
		var (
			security types.Security
			exchange string
		)

		if err := rows.Scan(&security.Code, &security.Name, &exchange); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan security", err)
		}

		security.Exchange = types.Exchange(exchange)
		securities = append(securities, security)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to iterate securities", err)
	}

	return securities, nil
}

// LoadDailyBars implements DataSource. Bars come back in ascending date order.
func (s *SQLDataSource) LoadDailyBars(ctx context.Context, code string) (types.BarData, error) {
	var result types.BarData

	updateTime, err := s.updateTime(ctx, code)
	if err != nil {
		return result, err
	}

	result.UpdateTime = updateTime.Time

	query, args, err := s.sq.
		Select(barColumns...).
		From(DailyBarsTable).
		Where(squirrel.Eq{"code": code}).
		OrderBy("trade_date ASC").
		ToSql()
	if err != nil {
		return result, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build daily bar query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return result, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to query daily bars of %s", code)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bar       types.Bar
			tradeDate int64
			factor    sql.NullFloat64
		)

		err := rows.Scan(&tradeDate, &bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.PreClose, &bar.Change, &bar.Volume, &factor)
		if err != nil {
			return result, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to scan daily bar of %s", code)
		}

		bar.TradeDate = types.TradeDate(tradeDate)
		if factor.Valid {
			bar.AdjustmentFactor = optional.Some(factor.Float64)
		}

		result.Data = append(result.Data, bar)
	}

	if err := rows.Err(); err != nil {
		return result, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to iterate daily bars of %s", code)
	}

	s.logger.Debug("Loaded daily bars", zap.String("code", code), zap.Int("bars", len(result.Data)))

	return result, nil
}

func (s *SQLDataSource) updateTime(ctx context.Context, code string) (t sql.NullTime, err error) {
	query, args, err := s.sq.
		Select("update_time").
		From(SecuritiesTable).
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return t, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build security query", err)
	}

	err = s.db.QueryRowContext(ctx, query, args...).Scan(&t)
	if err == sql.ErrNoRows {
		return t, errors.Newf(errors.ErrCodeDataNotFound, "security %s not found", code)
	}

	if err != nil {
		return t, errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to query security %s", code)
	}

	return t, nil
}

// Store upserts a security and its bars. Only sqlite sources are writable.
func (s *SQLDataSource) Store(ctx context.Context, security types.Security, data types.BarData) error {
	if s.driver != "sqlite3" {
		return errors.Newf(errors.ErrCodeInvalidParameter, "%s data source is read-only", s.driver)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	query, args, err := s.sq.
		Insert(SecuritiesTable).
		Options("OR REPLACE").
		Columns("code", "name", "exchange", "update_time").
		Values(security.Code, security.Name, string(security.Exchange), data.UpdateTime).
		ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to build security insert", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to store security %s", security.Code)
	}

	if len(data.Data) > 0 {
		insert := s.sq.
			Insert(DailyBarsTable).
			Options("OR REPLACE").
			Columns(append([]string{"code"}, barColumns...)...)

		for _, bar := range data.Data {
			var factor any
			if bar.AdjustmentFactor.IsSome() {
				factor = bar.AdjustmentFactor.Unwrap()
			}

			insert = insert.Values(security.Code, int64(bar.TradeDate), bar.Open, bar.High, bar.Low, bar.Close,
				bar.PreClose, bar.Change, bar.Volume, factor)
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return errors.Wrap(errors.ErrCodeQueryFailed, "failed to build daily bar insert", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(errors.ErrCodeQueryFailed, err, "failed to store daily bars of %s", security.Code)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to commit", err)
	}

	return nil
}

// Close implements DataSource.
func (s *SQLDataSource) Close() error {
	return s.db.Close()
}
