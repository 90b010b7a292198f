package main

import (
	"context"
	"fmt"

	"github.com/rxtech-lab/argo-backtest/internal/rule"
	"github.com/urfave/cli/v3"
)

func scanAction(ctx context.Context, cmd *cli.Command) error {
	backtester, closeAll, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer closeAll()

	reports, err := backtester.Scan(ctx)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	if len(reports) == 0 {
		fmt.Fprintln(out, "No reports")

		return nil
	}

	for _, report := range reports {
		fmt.Fprintln(out, titleStyle.Render(report.Title))
		fmt.Fprintln(out, reportTable(report))
	}

	return nil
}

func reportTable(report rule.Report) string {
	return newTable(report.Headers...).Rows(report.Rows...).Render()
}
