package datasource

import (
	"context"

	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// Table names shared by the SQL data sources.
const (
	SecuritiesTable = "securities"
	DailyBarsTable  = "daily_bars"
)

// DataSource provides the securities and daily bars a backtest runs over.
type DataSource interface {
	// ListSecurities returns every security the source knows about.
	ListSecurities(ctx context.Context) ([]types.Security, error)
	// LoadDailyBars returns the daily bars of one security. The bars may come in
	// either date order; an empty Data slice means the security has no history.
	LoadDailyBars(ctx context.Context, code string) (types.BarData, error)
	// Close releases any resources held by the source.
	Close() error
}
