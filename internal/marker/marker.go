package marker

import "github.com/rxtech-lab/argo-backtest/internal/types"

// Marker records the signals raised while scanning securities.
type Marker interface {
	// Mark records one signal
	Mark(signal types.Signal) error
	// GetSignals returns every recorded signal, ordered by date then security code
	GetSignals() ([]types.Signal, error)
	// GetSignalsByRule returns the signals raised by the rule with the given label
	GetSignalsByRule(label string) ([]types.Signal, error)
}
