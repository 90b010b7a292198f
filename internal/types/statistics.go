package types

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// MethodTally counts trades attributed to one rule.
type MethodTally struct {
	Trades int `yaml:"trades" json:"trades"`
	Wins   int `yaml:"wins" json:"wins"`
	Losses int `yaml:"losses" json:"losses"`
}

// TradeSummary aggregates a list of closed trades.
type TradeSummary struct {
	TradeCount int     `yaml:"trade_count" json:"trade_count"`
	WinCount   int     `yaml:"win_count" json:"win_count"`
	LossCount  int     `yaml:"loss_count" json:"loss_count"`
	WinRate    float64 `yaml:"win_rate" json:"win_rate"`
	// TotalProfit is the net profit of all trades.
	TotalProfit float64 `yaml:"total_profit" json:"total_profit"`
	// WinProfit is the gross profit of winning trades.
	WinProfit float64 `yaml:"win_profit" json:"win_profit"`
	// LossProfit is the gross loss of losing trades (negative).
	LossProfit    float64 `yaml:"loss_profit" json:"loss_profit"`
	AverageProfit float64 `yaml:"average_profit" json:"average_profit"`
	AverageWin    float64 `yaml:"average_win" json:"average_win"`
	AverageLoss   float64 `yaml:"average_loss" json:"average_loss"`
	// WinLossRatio is AverageWin / |AverageLoss|.
	WinLossRatio float64 `yaml:"win_loss_ratio" json:"win_loss_ratio"`
	MaxWin       float64 `yaml:"max_win" json:"max_win"`
	MaxLoss      float64 `yaml:"max_loss" json:"max_loss"`

	MaxWinStreak  int `yaml:"max_win_streak" json:"max_win_streak"`
	MaxLossStreak int `yaml:"max_loss_streak" json:"max_loss_streak"`

	AverageWinHoldingDays  float64 `yaml:"average_win_holding_days" json:"average_win_holding_days"`
	MaxWinHoldingDays      int     `yaml:"max_win_holding_days" json:"max_win_holding_days"`
	AverageLossHoldingDays float64 `yaml:"average_loss_holding_days" json:"average_loss_holding_days"`
	MaxLossHoldingDays     int     `yaml:"max_loss_holding_days" json:"max_loss_holding_days"`

	// Cost is the sum of negated buy totals.
	TotalCost float64 `yaml:"total_cost" json:"total_cost"`
	WinCost   float64 `yaml:"win_cost" json:"win_cost"`
	LossCost  float64 `yaml:"loss_cost" json:"loss_cost"`

	ReturnRatio     float64 `yaml:"return_ratio" json:"return_ratio"`
	WinReturnRatio  float64 `yaml:"win_return_ratio" json:"win_return_ratio"`
	LossReturnRatio float64 `yaml:"loss_return_ratio" json:"loss_return_ratio"`

	// EntryMethods is keyed by the buy transaction's method type.
	EntryMethods map[string]MethodTally `yaml:"entry_methods" json:"entry_methods"`
	// ExitMethods is keyed by the sell transaction's method type.
	ExitMethods map[string]MethodTally `yaml:"exit_methods" json:"exit_methods"`
}

// WeekdaySummary splits trades by the weekday of their buy date.
type WeekdaySummary struct {
	Overall   TradeSummary `yaml:"overall" json:"overall"`
	Monday    TradeSummary `yaml:"monday" json:"monday"`
	Tuesday   TradeSummary `yaml:"tuesday" json:"tuesday"`
	Wednesday TradeSummary `yaml:"wednesday" json:"wednesday"`
	Thursday  TradeSummary `yaml:"thursday" json:"thursday"`
	Friday    TradeSummary `yaml:"friday" json:"friday"`
}

// Bucket returns the summary for a weekday, or nil for weekends.
func (w *WeekdaySummary) Bucket(day time.Weekday) *TradeSummary {
	switch day {
	case time.Monday:
		return &w.Monday
	case time.Tuesday:
		return &w.Tuesday
	case time.Wednesday:
		return &w.Wednesday
	case time.Thursday:
		return &w.Thursday
	case time.Friday:
		return &w.Friday
	default:
		return nil
	}
}

type TradeStats struct {
	// ID is the unique identifier for this backtest run.
	ID string `yaml:"id" json:"id"`
	// Timestamp is when this backtest run was executed.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	Security  Security  `yaml:"security" json:"security"`
	// FirstDate and LastDate bound the simulated bars.
	FirstDate      TradeDate `yaml:"first_date" json:"first_date"`
	LastDate       TradeDate `yaml:"last_date" json:"last_date"`
	InitialBalance float64   `yaml:"initial_balance" json:"initial_balance"`
	FinalBalance   float64   `yaml:"final_balance" json:"final_balance"`
	// AccountValue is the balance plus open lots valued at the last close.
	AccountValue  float64        `yaml:"account_value" json:"account_value"`
	OpenPositions int            `yaml:"open_positions" json:"open_positions"`
	Summary       TradeSummary   `yaml:"summary" json:"summary"`
	Weekdays      WeekdaySummary `yaml:"weekdays" json:"weekdays"`
	// TransactionsFilePath is the path to the transactions parquet file.
	TransactionsFilePath string `yaml:"transactions_file_path" json:"transactions_file_path"`
	// ClosedTradesFilePath is the path to the closed trades parquet file.
	ClosedTradesFilePath string `yaml:"closed_trades_file_path" json:"closed_trades_file_path"`
}

func WriteTradeStats(path string, stats []TradeStats) error {
	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal trade stats to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write trade stats to file: %w", err)
	}

	return nil
}
