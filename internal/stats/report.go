package stats

import (
	"fmt"
	"maps"
	"slices"

	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// Sink receives one report line at a time.
type Sink func(line string)

// ReportInput is what a security's report is written from.
type ReportInput struct {
	Security       types.Security
	InitialBalance float64
	FinalBalance   float64
	AccountValue   float64
	Summary        types.TradeSummary
}

// Report writes a human readable summary of one security's backtest to sink.
func Report(sink Sink, input ReportInput) {
	s := input.Summary

	sink(fmt.Sprintf("%s %s (%s)", input.Security.Code, input.Security.Name, input.Security.Exchange))
	sink(fmt.Sprintf("Account value: %.2f, balance: %.2f, initial: %.2f", input.AccountValue, input.FinalBalance, input.InitialBalance))
	sink(fmt.Sprintf("Net profit: %.2f (%.2f%%)", s.TotalProfit, percent(s.ReturnRatio)))
	sink(fmt.Sprintf("Gross profit: %.2f (%.2f%%)", s.WinProfit, percent(s.WinReturnRatio)))
	sink(fmt.Sprintf("Gross loss: %.2f (%.2f%%)", s.LossProfit, percent(s.LossReturnRatio)))
	sink(fmt.Sprintf("Trades: %d, wins: %d, losses: %d, win rate: %.2f%%", s.TradeCount, s.WinCount, s.LossCount, percent(s.WinRate)))
	sink(fmt.Sprintf("Max win: %.2f, max loss: %.2f", s.MaxWin, s.MaxLoss))
	sink(fmt.Sprintf("Average win: %.2f, average loss: %.2f, win/loss ratio: %.2f", s.AverageWin, s.AverageLoss, s.WinLossRatio))
	sink(fmt.Sprintf("Average profit per trade: %.2f", s.AverageProfit))
	sink(fmt.Sprintf("Max consecutive wins: %d, max consecutive losses: %d", s.MaxWinStreak, s.MaxLossStreak))
	sink(fmt.Sprintf("Win holding days: average %.1f, max %d", s.AverageWinHoldingDays, s.MaxWinHoldingDays))
	sink(fmt.Sprintf("Loss holding days: average %.1f, max %d", s.AverageLossHoldingDays, s.MaxLossHoldingDays))

	writeTallies(sink, "Entry", s.EntryMethods)
	writeTallies(sink, "Exit", s.ExitMethods)
}

// ReportWeekdays writes one line per weekday bucket.
func ReportWeekdays(sink Sink, summary types.WeekdaySummary) {
	buckets := []struct {
		name    string
		summary types.TradeSummary
	}{
		{"Overall", summary.Overall},
		{"Monday", summary.Monday},
		{"Tuesday", summary.Tuesday},
		{"Wednesday", summary.Wednesday},
		{"Thursday", summary.Thursday},
		{"Friday", summary.Friday},
	}

	for _, bucket := range buckets {
		s := bucket.summary
		sink(fmt.Sprintf("%s: trades %d, win rate %.2f%%, net profit %.2f, average profit %.2f, max streaks %d/%d",
			bucket.name, s.TradeCount, percent(s.WinRate), s.TotalProfit, s.AverageProfit, s.MaxWinStreak, s.MaxLossStreak))
	}
}

func writeTallies(sink Sink, kind string, tallies map[string]types.MethodTally) {
	for _, method := range slices.Sorted(maps.Keys(tallies)) {
		t := tallies[method]
		sink(fmt.Sprintf("%s method %s: trades %d, wins %d, losses %d", kind, method, t.Trades, t.Wins, t.Losses))
	}
}

func percent(ratio float64) float64 {
	return ratio * 100
}
