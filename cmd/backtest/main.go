package main

import (
	"context"
	"log"
	"os"

	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap/zapcore"
)

// dataSourceFlags select where the daily bars come from.
func dataSourceFlags() []cli.Flag {
	return []cli.Flag{
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
		&cli.DurationFlag{
			Name:  "cache-ttl",
			Usage: "How long cached daily bars stay in redis",
			Value: datasource.DefaultCacheTTL,
		},
	}
}

// engineFlags configure a backtest engine on top of a data source.
func engineFlags() []cli.Flag {
	return append(dataSourceFlags(),
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    "Path to the backtest engine YAML config",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "results",
			Aliases: []string{"o"},
			Usage:   "Directory the results are written to",
			Value:   "./results",
		},
	)
}

func openDataSource(cmd *cli.Command, log *logger.Logger) (datasource.DataSource, error) {
	return datasource.Open(datasource.OpenConfig{
		DuckDBDir:      cmd.String("duckdb"),
		SQLitePath:     cmd.String("sqlite"),
		RedisAddr:      cmd.String("redis"),
		CacheTTL:       cmd.Duration("cache-ttl"),
		CacheNamespace: "backtest",
	}, log)
}

func newLogger(cmd *cli.Command) (*logger.Logger, error) {
	if cmd.Root().Bool("quiet") {
		return logger.NewNopLogger(), nil
	}

	level := zapcore.InfoLevel
	if cmd.Root().Bool("verbose") {
		level = zapcore.DebugLevel
	}

	return logger.NewLoggerWithLevel(level)
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "backtest",
		Usage: "Backtest rule based strategies on daily bars",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log at debug level",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "Disable logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Simulate every security of the data source",
				Flags:  engineFlags(),
				Action: runAction,
			},
			{
				Name:   "scan",
				Usage:  "Evaluate the configured rules on the latest bar of every security",
				Flags:  engineFlags(),
				Action: scanAction,
			},
			{
				Name:   "seed",
				Usage:  "Fill a sqlite database with generated daily bars",
				Action: seedAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "sqlite",
						Usage:    "Path to the sqlite database to fill",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "security",
						Usage: "Security to generate, as CODE:EXCHANGE",
						Value: []string{"600000:SSE", "000001:SZSE"},
					},
					&cli.IntFlag{
						Name:  "bars",
						Usage: "Number of daily bars per security",
						Value: 250,
					},
					&cli.IntFlag{
						Name:  "seed",
						Usage: "Random seed",
						Value: 42,
					},
				},
			},
			{
				Name:   "indicators",
				Usage:  "List the available indicators, or their latest values for one security",
				Action: indicatorsAction,
				Flags: append(dataSourceFlags(),
					&cli.StringFlag{
						Name:  "code",
						Usage: "Security whose latest indicator values are printed",
					},
					&cli.IntFlag{
						Name:  "precision",
						Usage: "Decimal digits kept when adjusting prices",
						Value: series.DefaultPrecision,
					},
				),
			},
			{
				Name:   "rules",
				Usage:  "List the available rules with their default options",
				Action: rulesAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the engine config or of a rule's options",
				Action: schemaAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "rule",
						Usage: "Print the options schema of this rule instead",
					},
				},
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
