package indicator

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/series"
)

// window returns the inclusive bounds of n values ending at index in time.
// For descending input the older values sit after index.
func window(index, n, length int, order series.Order) (int, int, bool) {
	if n <= 0 || index < 0 || index >= length {
		return 0, 0, false
	}

	start, end := index-n+1, index
	if order == series.Descending {
		start, end = index, index+n-1
	}

	if start < 0 || end >= length {
		return 0, 0, false
	}

	return start, end, true
}

// AverageFunc is the mean of fn over n consecutive items ending at index.
// Partial windows are undefined.
func AverageFunc[T any](items []T, index, n int, order series.Order, fn func(T) float64) optional.Option[float64] {
	start, end, ok := window(index, n, len(items), order)
	if !ok {
		return optional.None[float64]()
	}

	sum := 0.0
	for i := start; i <= end; i++ {
		sum += fn(items[i])
	}

	return optional.Some(sum / float64(n))
}

// Average is the mean of n consecutive values ending at index.
func Average(values []float64, index, n int, order series.Order) optional.Option[float64] {
	return AverageFunc(values, index, n, order, func(v float64) float64 { return v })
}

// StdDev is the population standard deviation of the window Average uses.
func StdDev(values []float64, index, n int, order series.Order) optional.Option[float64] {
	mean := Average(values, index, n, order)
	if mean.IsNone() {
		return optional.None[float64]()
	}

	start, end, _ := window(index, n, len(values), order)
	m := mean.Unwrap()

	sum := 0.0
	for i := start; i <= end; i++ {
		d := values[i] - m
		sum += d * d
	}

	return optional.Some(math.Sqrt(sum / float64(n)))
}

// StdDevLine applies StdDev at every index.
func StdDevLine(values []float64, n int, order series.Order) Line {
	line := make(Line, len(values))
	for i := range values {
		line[i] = StdDev(values, i, n, order)
	}

	return line
}
