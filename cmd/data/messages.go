package main

import (
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// SecuritiesLoadedMsg carries the security list of the data source.
type SecuritiesLoadedMsg struct {
	Securities []types.Security
}

// BarsLoadedMsg carries the normalized bars of the selected security.
type BarsLoadedMsg struct {
	Security types.Security
	Bars     *series.Series
}

// LoadErrorMsg indicates the data source failed.
type LoadErrorMsg struct {
	Err error
}
