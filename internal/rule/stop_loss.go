package rule

import (
	"fmt"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

const StopLossRuleName = "stop_loss"

type StopLossOptions struct {
	// LossRate is the drop below the buy price that triggers the sell, e.g. 0.08.
	LossRate float64 `yaml:"loss_rate" json:"loss_rate" validate:"gt=0,lt=1" jsonschema:"default=0.08"`
}

// StopLossRule only sells.
type StopLossRule struct {
	label   string
	options StopLossOptions
}

func NewStopLossRule(label string, options map[string]any) (Rule, error) {
	opts := StopLossOptions{LossRate: 0.08}
	if err := decodeOptions(label, options, &opts); err != nil {
		return nil, err
	}

	return &StopLossRule{label: label, options: opts}, nil
}

func (r *StopLossRule) Name() string {
	return StopLossRuleName
}

func (r *StopLossRule) Label() string {
	return r.label
}

func (r *StopLossRule) Options() any {
	return r.options
}

func (r *StopLossRule) ShowOptions() string {
	return showOptions(r.options)
}

func (r *StopLossRule) TryBuy(ctx Context, cash float64, index int) optional.Option[types.Transaction] {
	return optional.None[types.Transaction]()
}

func (r *StopLossRule) TrySell(ctx Context, position types.Position, index int) optional.Option[types.Transaction] {
	if index <= position.Buy.DateIndex {
		return optional.None[types.Transaction]()
	}

	bar := ctx.Series.At(index)

	stop := position.Price * (1 - r.options.LossRate)
	if bar.Close > stop {
		return optional.None[types.Transaction]()
	}

	return optional.Some(ctx.Builder.CreateSellTransaction(ctx.Security, bar.TradeDate, index, position.Count, bar.Close, r.label,
		fmt.Sprintf("close %.3f at or below stop %.3f", bar.Close, stop)))
}
