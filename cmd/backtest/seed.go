package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/mocks"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// parseSecurity reads CODE:EXCHANGE.
func parseSecurity(value string) (types.Security, error) {
	code, exchange, found := strings.Cut(value, ":")
	if !found || code == "" {
		return types.Security{}, errors.Newf(errors.ErrCodeInvalidParameter, "invalid security %q, expected CODE:EXCHANGE", value)
	}

	security := types.Security{Code: code, Name: code, Exchange: types.Exchange(strings.ToUpper(exchange))}
	if security.Exchange != types.ExchangeSSE && security.Exchange != types.ExchangeSZSE {
		return types.Security{}, errors.Newf(errors.ErrCodeInvalidParameter, "unknown exchange %q", exchange)
	}

	return security, nil
}

func seedAction(ctx context.Context, cmd *cli.Command) error {
	log, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	securities := make([]types.Security, 0, len(cmd.StringSlice("security")))
	for _, value := range cmd.StringSlice("security") {
		security, err := parseSecurity(value)
		if err != nil {
			return err
		}

		securities = append(securities, security)
	}

	source, err := datasource.NewSQLiteDataSource(cmd.String("sqlite"), log)
	if err != nil {
		return err
	}
	defer source.Close()

	config := mocks.DefaultConfig()
	config.Count = int(cmd.Int("bars"))

	generated := mocks.NewDataGenerator(int64(cmd.Int("seed"))).GenerateSecurities(securities, config)

	for _, security := range securities {
		data := types.BarData{UpdateTime: time.Now(), Data: generated[security.Code]}
		if err := source.Store(ctx, security, data); err != nil {
			return err
		}

		log.Info("Seeded security", zap.String("code", security.Code), zap.Int("bars", len(data.Data)))
	}

	fmt.Fprintf(cmd.Root().Writer, "Seeded %d securities into %s\n", len(securities), cmd.String("sqlite"))

	return nil
}
