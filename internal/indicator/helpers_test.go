package indicator

import (
	"time"

	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// barsFromCloses builds consecutive daily bars with a one point range around each close.
func barsFromCloses(closes []float64) []types.Bar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]types.Bar, len(closes))

	for i, c := range closes {
		preClose := c
		if i > 0 {
			preClose = closes[i-1]
		}

		bars[i] = types.Bar{
			TradeDate: types.NewTradeDate(start.AddDate(0, 0, i)),
			Open:      preClose,
			High:      c + 0.5,
			Low:       c - 0.5,
			Close:     c,
			PreClose:  preClose,
			Change:    c - preClose,
		}
	}

	return bars
}

func seriesFromCloses(closes []float64) *series.Series {
	return series.New(barsFromCloses(closes), series.DefaultPrecision)
}

func rising(n int, start float64) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)
	}

	return values
}
