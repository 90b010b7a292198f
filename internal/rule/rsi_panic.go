package rule

import (
	"fmt"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/indicator"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

const RSIPanicRuleName = "rsi_panic"

type RSIPanicOptions struct {
	Period    int `yaml:"period" json:"period" validate:"gt=0" jsonschema:"default=14"`
	WVFPeriod int `yaml:"wvf_period" json:"wvf_period" validate:"gt=0" jsonschema:"default=22"`
	// Threshold is the RSI below which the market is oversold.
	Threshold float64 `yaml:"threshold" json:"threshold" validate:"gt=0,lt=100" jsonschema:"default=30"`
	// WVFThreshold is the VIX fix reading that confirms panic selling.
	WVFThreshold float64 `yaml:"wvf_threshold" json:"wvf_threshold" validate:"gte=0" jsonschema:"default=10"`
	// ExitThreshold is the RSI above which the position is sold.
	ExitThreshold float64 `yaml:"exit_threshold" json:"exit_threshold" validate:"gtfield=Threshold,lte=100" jsonschema:"default=60"`
}

// RSIPanicRule buys oversold panics and sells the rebound.
type RSIPanicRule struct {
	label   string
	options RSIPanicOptions
}

func NewRSIPanicRule(label string, options map[string]any) (Rule, error) {
	opts := RSIPanicOptions{Period: 14, WVFPeriod: 22, Threshold: 30, WVFThreshold: 10, ExitThreshold: 60}
	if err := decodeOptions(label, options, &opts); err != nil {
		return nil, err
	}

	return &RSIPanicRule{label: label, options: opts}, nil
}

func (r *RSIPanicRule) Name() string {
	return RSIPanicRuleName
}

func (r *RSIPanicRule) Label() string {
	return r.label
}

func (r *RSIPanicRule) Options() any {
	return r.options
}

func (r *RSIPanicRule) ShowOptions() string {
	return showOptions(r.options)
}

// oversold returns the RSI and WVF readings when both are defined and in panic territory.
func (r *RSIPanicRule) oversold(ctx Context, index int) (float64, float64, bool) {
	rsi, okRSI := indicator.CalculateRSI(ctx.Series, r.options.Period).At(index)
	wvf, okWVF := indicator.CalculateWVF(ctx.Series, r.options.WVFPeriod).At(index)

	if !okRSI || !okWVF {
		return 0, 0, false
	}

	return rsi, wvf, rsi < r.options.Threshold && wvf >= r.options.WVFThreshold
}

func (r *RSIPanicRule) TryBuy(ctx Context, cash float64, index int) optional.Option[types.Transaction] {
	rsi, wvf, ok := r.oversold(ctx, index)
	if !ok {
		return optional.None[types.Transaction]()
	}

	bar := ctx.Series.At(index)

	return ctx.Builder.CreateBuyTransaction(ctx.Security, bar.TradeDate, index, cash, bar.Close, r.label,
		fmt.Sprintf("rsi %.2f wvf %.2f", rsi, wvf))
}

func (r *RSIPanicRule) TrySell(ctx Context, position types.Position, index int) optional.Option[types.Transaction] {
	if index <= position.Buy.DateIndex {
		return optional.None[types.Transaction]()
	}

	rsi, ok := indicator.CalculateRSI(ctx.Series, r.options.Period).At(index)
	if !ok || rsi <= r.options.ExitThreshold {
		return optional.None[types.Transaction]()
	}

	bar := ctx.Series.At(index)

	return optional.Some(ctx.Builder.CreateSellTransaction(ctx.Security, bar.TradeDate, index, position.Count, bar.Close, r.label,
		fmt.Sprintf("rsi %.2f above %.2f", rsi, r.options.ExitThreshold)))
}

func (r *RSIPanicRule) Check(ctx Context, index int) optional.Option[types.Signal] {
	rsi, wvf, ok := r.oversold(ctx, index)
	if !ok {
		return optional.None[types.Signal]()
	}

	return optional.Some(types.Signal{
		Date:      ctx.Series.At(index).TradeDate,
		Index:     index,
		Type:      types.SignalTypeBuy,
		Name:      r.label,
		Reason:    "oversold with panic volatility",
		RawValue:  map[string]float64{"rsi": rsi, "wvf": wvf},
		Security:  ctx.Security,
		Indicator: types.IndicatorTypeRSI,
	})
}
