package indicator

import (
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// Indicator interface defines methods that any technical indicator must implement
type Indicator interface {
	// Name returns the name of the indicator
	Name() types.IndicatorType
	// Config replaces the indicator parameters. Each indicator documents its own.
	Config(params ...any) error
	// Calculate returns the indicator's lines aligned with the bars of s.
	Calculate(s *series.Series) ([]Output, error)
}
