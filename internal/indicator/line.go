package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/series"
)

// Line is an indicator output aligned index-for-index with its bars.
// Leading bars without enough history hold None.
type Line []optional.Option[float64]

// NewLine returns a line of n undefined values.
func NewLine(n int) Line {
	line := make(Line, n)
	for i := range line {
		line[i] = optional.None[float64]()
	}

	return line
}

// LineOf wraps fully defined values.
func LineOf(values []float64) Line {
	line := make(Line, len(values))
	for i, v := range values {
		line[i] = optional.Some(v)
	}

	return line
}

// At returns the value at index and whether it is defined.
func (l Line) At(index int) (float64, bool) {
	if index < 0 || index >= len(l) || l[index].IsNone() {
		return 0, false
	}

	return l[index].Unwrap(), true
}

// Output is one named line of an indicator.
type Output struct {
	Name string
	Line Line
}

// chronological maps the k-th oldest element to its index.
func chronological(k, length int, order series.Order) int {
	if order == series.Descending {
		return length - 1 - k
	}

	return k
}
