package engine

import (
	"context"

	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/argo-backtest/internal/rule"
	"github.com/rxtech-lab/argo-backtest/internal/stats"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// Lifecycle callback types for backtest phases
// All callbacks with error return can abort execution if they return an error

// OnBacktestStartCallback is called once the security list is known.
type OnBacktestStartCallback func(totalSecurities int) error

// OnBacktestEndCallback is called when the entire backtest completes (always called via defer).
type OnBacktestEndCallback func(err error)

// OnSecurityStartCallback is called before a security's bars are simulated.
type OnSecurityStartCallback func(securityIndex int, security types.Security, totalBars int) error

// OnSecurityEndCallback is called after a security's results are written.
type OnSecurityEndCallback func(securityIndex int, security types.Security, result types.TradeStats)

// OnSecuritySkippedCallback is called when a security is left out of the run.
type OnSecuritySkippedCallback func(securityIndex int, security types.Security, reason string)

// OnProcessDataCallback is called for each bar processed.
type OnProcessDataCallback func(current int, total int) error

// LifecycleCallbacks holds all lifecycle callback functions for the backtest engine.
// All fields are pointers - nil means no callback will be invoked.
type LifecycleCallbacks struct {
	OnBacktestStart   *OnBacktestStartCallback
	OnBacktestEnd     *OnBacktestEndCallback
	OnSecurityStart   *OnSecurityStartCallback
	OnSecurityEnd     *OnSecurityEndCallback
	OnSecuritySkipped *OnSecuritySkippedCallback
	OnProcessData     *OnProcessDataCallback
}

//nolint:interfacebloat // Engine is a core interface that naturally requires multiple methods
type Engine interface {
	// Initialize the engine with the given YAML configuration.
	Initialize(config string) error
	// SetResultsFolder sets the output directory for saving backtest results.
	// Each security gets <folder>/<code>/ holding stats.yaml and the parquet journal.
	SetResultsFolder(folder string) error
	// SetDataSource sets the data source for the engine.
	SetDataSource(dataSource datasource.DataSource) error
	// SetReportSink sets where the human readable report lines go.
	SetReportSink(sink stats.Sink) error
	// Run backtests every security of the data source, one after another.
	// The context is checked between securities.
	Run(ctx context.Context, callbacks LifecycleCallbacks) error
	// Scan evaluates the scannable rules on the last bar of every security and
	// returns the reports of the reportable ones.
	Scan(ctx context.Context) ([]rule.Report, error)
	// GetConfigSchema returns the schema of the engine configuration
	GetConfigSchema() (string, error)
}
