package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	engine "github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1"
	"github.com/rxtech-lab/argo-backtest/internal/indicator"
	"github.com/rxtech-lab/argo-backtest/internal/rule"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/rxtech-lab/argo-backtest/pkg/utils"
	"github.com/urfave/cli/v3"
)

func indicatorsAction(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer
	registry := indicator.NewDefaultIndicatorRegistry()

	code := cmd.String("code")
	if code == "" {
		for _, name := range registry.ListIndicators() {
			fmt.Fprintln(out, name)
		}

		return nil
	}

	log, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	source, err := openDataSource(cmd, log)
	if err != nil {
		return err
	}
	defer source.Close()

	data, err := source.LoadDailyBars(ctx, code)
	if err != nil {
		return err
	}

	if len(data.Data) == 0 {
		return errors.Newf(errors.ErrCodeNoBarData, "no daily bars for %s", code)
	}

	bars := series.New(data.Data, int(cmd.Int("precision")))
	last := bars.Len() - 1
	t := newTable("Indicator", "Output", "Value")

	for _, name := range registry.ListIndicators() {
		ind, err := registry.GetIndicator(name)
		if err != nil {
			return err
		}

		outputs, err := ind.Calculate(bars)
		if err != nil {
			return err
		}

		for _, output := range outputs {
			value := "-"
			if v, ok := output.Line.At(last); ok {
				value = strconv.FormatFloat(v, 'f', 3, 64)
			}

			t.Row(string(name), output.Name, value)
		}
	}

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%s on %s", code, bars.At(last).TradeDate)))
	fmt.Fprintln(out, t.Render())

	return nil
}

func rulesAction(_ context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer
	registry := rule.NewDefaultRegistry()

	for _, name := range registry.Names() {
		r, err := registry.Build(name, name, nil)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, titleStyle.Render(name))

		for _, line := range strings.Split(strings.TrimRight(r.ShowOptions(), "\n"), "\n") {
			fmt.Fprintln(out, "  "+line)
		}
	}

	return nil
}

func schemaAction(_ context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer

	name := cmd.String("rule")
	if name == "" {
		config := engine.EmptyConfig()

		schema, err := config.GenerateSchemaJSON()
		if err != nil {
			return err
		}

		fmt.Fprintln(out, schema)

		return nil
	}

	r, err := rule.NewDefaultRegistry().Build(name, name, nil)
	if err != nil {
		return err
	}

	schema, err := utils.GetSchemaFromConfig(r.Options())
	if err != nil {
		return fmt.Errorf("failed to generate schema of rule %s: %w", name, err)
	}

	fmt.Fprintln(out, schema)

	return nil
}
