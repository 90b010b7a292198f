package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/urfave/cli/v3"
)

func browseAction(ctx context.Context, cmd *cli.Command) error {
	source, err := datasource.Open(datasource.OpenConfig{
		DuckDBDir:  cmd.String("duckdb"),
		SQLitePath: cmd.String("sqlite"),
		RedisAddr:  cmd.String("redis"),
	}, logger.NewNopLogger())
	if err != nil {
		return fmt.Errorf("failed to open data source: %w", err)
	}
	defer source.Close()

	p := tea.NewProgram(NewModel(source, int(cmd.Int("precision"))), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "data",
		Usage: "Browse the daily bars of a data source",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "duckdb",
				Usage: "Directory holding securities.parquet and daily_bars.parquet",
			},
			&cli.StringFlag{
				Name:  "sqlite",
				Usage: "Path to a sqlite database with the securities and daily_bars tables",
			},
			&cli.StringFlag{
				Name:  "redis",
				Usage: "Redis address used to cache daily bars",
			},
			&cli.IntFlag{
				Name:  "precision",
				Usage: "Decimal digits kept when adjusting prices",
				Value: series.DefaultPrecision,
			},
		},
		Action: browseAction,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
