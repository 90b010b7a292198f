// Package rule defines the policies that decide when to buy and sell, and the
// registry that builds them from configuration.
package rule

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/trading"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// Context is everything a rule may read while deciding on one bar.
type Context struct {
	Security types.Security
	Series   *series.Series
	Builder  trading.TransactionBuilder
	Logger   *logger.Logger
}

// Rule produces buy and sell transactions. A rule that only sells returns None from TryBuy.
type Rule interface {
	// Name is the registered kind of the rule, e.g. "squeeze".
	Name() string
	// Label identifies this configured instance. It tags the transactions the rule creates.
	Label() string
	// TryBuy returns a buy sized from cash, or None.
	TryBuy(ctx Context, cash float64, index int) optional.Option[types.Transaction]
	// TrySell returns a sell closing position, or None.
	TrySell(ctx Context, position types.Position, index int) optional.Option[types.Transaction]
	// Options returns the rule's current configuration.
	Options() any
	// ShowOptions renders the current configuration as YAML.
	ShowOptions() string
}

// Scannable rules can flag a security without trading it.
type Scannable interface {
	Rule
	Check(ctx Context, index int) optional.Option[types.Signal]
}

// Reportable rules aggregate the signals of a scan.
type Reportable interface {
	Rule
	CreateReports(signals []types.Signal) (Report, error)
}

// Report is a titled table.
type Report struct {
	Title   string
	Headers []string
	Rows    [][]string
}
