package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	backtest "github.com/rxtech-lab/argo-backtest/internal/backtest/engine"
	engine "github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
)

// skippedSecurity is a security the engine left out of the run.
type skippedSecurity struct {
	Security types.Security
	Reason   string
}

func newEngine(cmd *cli.Command) (*engine.BacktestEngineV1, func(), error) {
	log, err := newLogger(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	config, err := os.ReadFile(cmd.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config: %w", err)
	}

	backtester := engine.NewBacktestEngineV1(engine.WithLogger(log))
	if err := backtester.Initialize(string(config)); err != nil {
		_ = backtester.Close()

		return nil, nil, err
	}

	source, err := openDataSource(cmd, log)
	if err != nil {
		_ = backtester.Close()

		return nil, nil, err
	}

	closeAll := func() {
		if err := backtester.Close(); err != nil {
			log.Warn("Failed to close engine", zap.Error(err))
		}

		if err := source.Close(); err != nil {
			log.Warn("Failed to close data source", zap.Error(err))
		}

		_ = log.Sync()
	}

	if err := backtester.SetDataSource(source); err != nil {
		closeAll()

		return nil, nil, err
	}

	if err := backtester.SetResultsFolder(cmd.String("results")); err != nil {
		closeAll()

		return nil, nil, err
	}

	if cmd.Root().Bool("quiet") {
		_ = backtester.SetReportSink(func(string) {})
	}

	return backtester, closeAll, nil
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	backtester, closeAll, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer closeAll()

	var (
		bar     *progressbar.ProgressBar
		results []types.TradeStats
		skipped []skippedSecurity
	)

	onStart := backtest.OnBacktestStartCallback(func(total int) error {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("Backtesting"),
			progressbar.OptionSetWriter(cmd.Root().ErrWriter),
			progressbar.OptionShowCount(),
		)

		return nil
	})
	onSecurityEnd := backtest.OnSecurityEndCallback(func(_ int, _ types.Security, result types.TradeStats) {
		results = append(results, result)
		_ = bar.Add(1)
	})
	onSkipped := backtest.OnSecuritySkippedCallback(func(_ int, security types.Security, reason string) {
		skipped = append(skipped, skippedSecurity{Security: security, Reason: reason})
		_ = bar.Add(1)
	})
	onEnd := backtest.OnBacktestEndCallback(func(error) {
		if bar != nil {
			_ = bar.Finish()
		}
	})

	err = backtester.Run(ctx, backtest.LifecycleCallbacks{
		OnBacktestStart:   &onStart,
		OnSecurityEnd:     &onSecurityEnd,
		OnSecuritySkipped: &onSkipped,
		OnBacktestEnd:     &onEnd,
	})
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Backtest results"))
	fmt.Fprintln(out, resultsTable(results))

	if len(skipped) > 0 {
		fmt.Fprintln(out, titleStyle.Render("Skipped"))
		fmt.Fprintln(out, skippedTable(skipped))
	}

	fmt.Fprintf(out, "Results written to %s\n", cmd.String("results"))

	return nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
}

func resultsTable(results []types.TradeStats) string {
	t := newTable("Code", "Name", "From", "To", "Trades", "Win Rate", "Profit", "Balance", "Account Value", "Open")

	for _, r := range results {
		t.Row(
			r.Security.Code,
			r.Security.Name,
			r.FirstDate.String(),
			r.LastDate.String(),
			strconv.Itoa(r.Summary.TradeCount),
			fmt.Sprintf("%.2f%%", r.Summary.WinRate*100),
			fmt.Sprintf("%.2f", r.Summary.TotalProfit),
			fmt.Sprintf("%.2f", r.FinalBalance),
			fmt.Sprintf("%.2f", r.AccountValue),
			strconv.Itoa(r.OpenPositions),
		)
	}

	return t.Render()
}

func skippedTable(skipped []skippedSecurity) string {
	t := newTable("Code", "Name", "Reason")
	for _, s := range skipped {
		t.Row(s.Security.Code, s.Security.Name, s.Reason)
	}

	return t.Render()
}
