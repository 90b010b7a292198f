// Package stats turns a closed-trade log into performance statistics and a text report.
package stats

import (
	"time"

	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/shopspring/decimal"
)

// accumulator collects one bucket of trades in log order.
type accumulator struct {
	summary types.TradeSummary

	totalProfit decimal.Decimal
	winProfit   decimal.Decimal
	lossProfit  decimal.Decimal
	totalCost   decimal.Decimal
	winCost     decimal.Decimal
	lossCost    decimal.Decimal

	winHoldingDays  int
	lossHoldingDays int

	streakWin    bool
	streakLength int
}

func newAccumulator() *accumulator {
	return &accumulator{
		summary: types.TradeSummary{
			EntryMethods: map[string]types.MethodTally{},
			ExitMethods:  map[string]types.MethodTally{},
		},
	}
}

func (a *accumulator) add(trade types.ClosedTrade) {
	s := &a.summary
	profit := decimal.NewFromFloat(trade.Profit)
	cost := decimal.NewFromFloat(trade.Cost())
	win := trade.IsWin()
	holdingDays := trade.HoldingDays()

	s.TradeCount++
	a.totalProfit = a.totalProfit.Add(profit)
	a.totalCost = a.totalCost.Add(cost)

	if win {
		if s.WinCount == 0 || trade.Profit > s.MaxWin {
			s.MaxWin = trade.Profit
		}

		s.WinCount++
		a.winProfit = a.winProfit.Add(profit)
		a.winCost = a.winCost.Add(cost)
		a.winHoldingDays += holdingDays
		s.MaxWinHoldingDays = max(s.MaxWinHoldingDays, holdingDays)
	} else {
		if s.LossCount == 0 || trade.Profit < s.MaxLoss {
			s.MaxLoss = trade.Profit
		}

		s.LossCount++
		a.lossProfit = a.lossProfit.Add(profit)
		a.lossCost = a.lossCost.Add(cost)
		a.lossHoldingDays += holdingDays
		s.MaxLossHoldingDays = max(s.MaxLossHoldingDays, holdingDays)
	}

	if a.streakLength > 0 && a.streakWin != win {
		a.flushStreak()
		a.streakLength = 0
	}

	a.streakWin = win
	a.streakLength++

	s.EntryMethods[trade.Buy.MethodType] = tally(s.EntryMethods[trade.Buy.MethodType], win)
	s.ExitMethods[trade.Sell.MethodType] = tally(s.ExitMethods[trade.Sell.MethodType], win)
}

func (a *accumulator) flushStreak() {
	if a.streakWin {
		a.summary.MaxWinStreak = max(a.summary.MaxWinStreak, a.streakLength)
	} else {
		a.summary.MaxLossStreak = max(a.summary.MaxLossStreak, a.streakLength)
	}
}

func (a *accumulator) finish() types.TradeSummary {
	if a.streakLength > 0 {
		a.flushStreak()
	}

	s := a.summary
	s.TotalProfit = a.totalProfit.InexactFloat64()
	s.WinProfit = a.winProfit.InexactFloat64()
	s.LossProfit = a.lossProfit.InexactFloat64()
	s.TotalCost = a.totalCost.InexactFloat64()
	s.WinCost = a.winCost.InexactFloat64()
	s.LossCost = a.lossCost.InexactFloat64()

	s.WinRate = ratio(decimal.NewFromInt(int64(s.WinCount)), decimal.NewFromInt(int64(s.TradeCount)))
	s.AverageProfit = ratio(a.totalProfit, decimal.NewFromInt(int64(s.TradeCount)))
	s.AverageWin = ratio(a.winProfit, decimal.NewFromInt(int64(s.WinCount)))
	s.AverageLoss = ratio(a.lossProfit, decimal.NewFromInt(int64(s.LossCount)))
	s.WinLossRatio = ratio(decimal.NewFromFloat(s.AverageWin), decimal.NewFromFloat(s.AverageLoss).Abs())

	s.ReturnRatio = ratio(a.totalProfit, a.totalCost)
	s.WinReturnRatio = ratio(a.winProfit, a.winCost)
	s.LossReturnRatio = ratio(a.lossProfit, a.lossCost)

	s.AverageWinHoldingDays = ratio(decimal.NewFromInt(int64(a.winHoldingDays)), decimal.NewFromInt(int64(s.WinCount)))
	s.AverageLossHoldingDays = ratio(decimal.NewFromInt(int64(a.lossHoldingDays)), decimal.NewFromInt(int64(s.LossCount)))

	return s
}

func tally(t types.MethodTally, win bool) types.MethodTally {
	t.Trades++
	if win {
		t.Wins++
	} else {
		t.Losses++
	}

	return t
}

// ratio is numerator / denominator, or 0 when the denominator is zero.
func ratio(numerator, denominator decimal.Decimal) float64 {
	if denominator.IsZero() {
		return 0
	}

	return numerator.DivRound(denominator, 8).InexactFloat64()
}

// Summarize aggregates closed trades in log order. A trade with profit >= 0 is a win.
func Summarize(trades []types.ClosedTrade) types.TradeSummary {
	acc := newAccumulator()
	for _, trade := range trades {
		acc.add(trade)
	}

	return acc.finish()
}

// SummarizeByWeekday aggregates all trades plus one bucket per weekday of the buy date.
// Each bucket computes its streaks from its own trades only.
func SummarizeByWeekday(trades []types.ClosedTrade) types.WeekdaySummary {
	overall := newAccumulator()
	days := map[time.Weekday]*accumulator{}

	for _, day := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday} {
		days[day] = newAccumulator()
	}

	for _, trade := range trades {
		overall.add(trade)

		if acc, ok := days[trade.Buy.Date.Weekday()]; ok {
			acc.add(trade)
		}
	}

	result := types.WeekdaySummary{Overall: overall.finish()}
	for day, acc := range days {
		*result.Bucket(day) = acc.finish()
	}

	return result
}
