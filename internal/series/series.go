// Package series wraps a security's daily bars with the normalization marker and
// the memo cache indicators share during one backtest.
package series

import (
	"fmt"
	"slices"
	"strings"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/cache"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/internal/utils"
)

// DefaultPrecision is the rounding applied to adjusted prices.
const DefaultPrecision = 3

type Order int

const (
	Ascending Order = iota
	Descending
)

// DetectOrder reports descending when the first bar is later than the last one.
func DetectOrder(bars []types.Bar) Order {
	if len(bars) > 1 && bars[0].TradeDate > bars[len(bars)-1].TradeDate {
		return Descending
	}

	return Ascending
}

type Series struct {
	bars     []types.Bar
	adjusted []bool
	cache    *cache.CacheV1
}

// New copies bars and returns a normalized series.
func New(bars []types.Bar, precision int) *Series {
	return Wrap(slices.Clone(bars)).Normalize(precision)
}

// Wrap takes ownership of bars without normalizing them.
func Wrap(bars []types.Bar) *Series {
	return &Series{
		bars:     bars,
		adjusted: make([]bool, len(bars)),
		cache:    cache.NewCacheV1().(*cache.CacheV1),
	}
}

// Normalize puts the bars in ascending order and applies the adjustment factor
// carried by the earliest bar. It mutates the series in place and is a no-op once
// the series is organized.
func (s *Series) Normalize(precision int) *Series {
	if s.cache.Organized.IsSome() {
		return s
	}

	state := cache.OrganizeState{Precision: precision}

	if DetectOrder(s.bars) == Descending {
		slices.Reverse(s.bars)
		slices.Reverse(s.adjusted)
		state.Reversed = true
	}

	if len(s.bars) > 0 && s.bars[0].AdjustmentFactor.IsSome() {
		factor := s.bars[0].AdjustmentFactor.Unwrap()

		for i := range s.bars {
			if s.adjusted[i] {
				continue
			}

			adjust(&s.bars[i], factor, precision)
			s.adjusted[i] = true
		}

		state.Adjusted = true
	}

	s.cache.Organized = optional.Some(state)

	return s
}

func adjust(bar *types.Bar, factor float64, precision int) {
	bar.Open = utils.Round(bar.Open*factor, precision)
	bar.High = utils.Round(bar.High*factor, precision)
	bar.Low = utils.Round(bar.Low*factor, precision)
	bar.Close = utils.Round(bar.Close*factor, precision)
	bar.PreClose = utils.Round(bar.PreClose*factor, precision)
	bar.Change = utils.Round(bar.Change*factor, precision)
}

// IsOrganized reports whether Normalize has run.
func (s *Series) IsOrganized() bool {
	return s.cache.Organized.IsSome()
}

// OrganizeState returns how the series was normalized, if it was.
func (s *Series) OrganizeState() optional.Option[cache.OrganizeState] {
	return s.cache.Organized
}

func (s *Series) Bars() []types.Bar {
	return s.bars
}

func (s *Series) Len() int {
	return len(s.bars)
}

func (s *Series) At(index int) types.Bar {
	return s.bars[index]
}

func (s *Series) Last() (types.Bar, bool) {
	if len(s.bars) == 0 {
		return types.Bar{}, false
	}

	return s.bars[len(s.bars)-1], true
}

func (s *Series) Order() Order {
	return DetectOrder(s.bars)
}

// Values projects every bar through fn.
func (s *Series) Values(fn func(types.Bar) float64) []float64 {
	values := make([]float64, len(s.bars))
	for i, bar := range s.bars {
		values[i] = fn(bar)
	}

	return values
}

// StartIndex returns the index of the first bar on or after date, or Len() if none.
// The series must be ascending.
func (s *Series) StartIndex(date types.TradeDate) int {
	index, _ := slices.BinarySearchFunc(s.bars, date, func(bar types.Bar, target types.TradeDate) int {
		return int(bar.TradeDate) - int(target)
	})

	return index
}

// IndexOf returns the index of the bar on date.
func (s *Series) IndexOf(date types.TradeDate) (int, bool) {
	index := s.StartIndex(date)
	if index < len(s.bars) && s.bars[index].TradeDate == date {
		return index, true
	}

	return -1, false
}

// Key builds a memo key from its parts, e.g. Key("ma", "close", "simple", 20).
func Key(parts ...any) string {
	fields := make([]string, len(parts))
	for i, part := range parts {
		fields[i] = fmt.Sprint(part)
	}

	return strings.Join(fields, ":")
}

// Memo returns the value cached under key, computing and storing it on first use.
func Memo[T any](s *Series, key string, compute func() T) T {
	if cached, ok := s.cache.Get(key); ok {
		if value, ok := cached.(T); ok {
			return value
		}
	}

	value := compute()
	s.cache.Set(key, value)

	return value
}

// MemoSize returns the number of memoized derived series.
func (s *Series) MemoSize() int {
	return s.cache.Len()
}
