package rule

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/indicator"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

const SqueezeRuleName = "squeeze"

type SqueezeOptions struct {
	indicator.SqueezeConfig `yaml:",inline"`
}

// SqueezeRule buys when a squeeze fires long and sells once the state leaves BUY.
type SqueezeRule struct {
	label   string
	options SqueezeOptions
}

func NewSqueezeRule(label string, options map[string]any) (Rule, error) {
	opts := SqueezeOptions{SqueezeConfig: indicator.DefaultSqueezeConfig()}
	if err := decodeOptions(label, options, &opts); err != nil {
		return nil, err
	}

	if err := indicator.NewSqueeze().Config(opts.SqueezeConfig); err != nil {
		return nil, errors.Wrapf(errors.ErrCodeRuleConfigError, err, "invalid options of rule %s", label)
	}

	return &SqueezeRule{label: label, options: opts}, nil
}

func (r *SqueezeRule) Name() string {
	return SqueezeRuleName
}

func (r *SqueezeRule) Label() string {
	return r.label
}

func (r *SqueezeRule) Options() any {
	return r.options
}

func (r *SqueezeRule) ShowOptions() string {
	return showOptions(r.options)
}

// fired reports the state the machine just entered at index, if it changed.
func (r *SqueezeRule) fired(ctx Context, index int) (indicator.SqueezeResult, optional.Option[indicator.SqueezeState]) {
	result := indicator.CalculateSqueeze(ctx.Series, r.options.SqueezeConfig)
	if index < 1 || index >= len(result.States) {
		return result, optional.None[indicator.SqueezeState]()
	}

	state := result.States[index]
	if state == result.States[index-1] {
		return result, optional.None[indicator.SqueezeState]()
	}

	return result, optional.Some(state)
}

func (r *SqueezeRule) TryBuy(ctx Context, cash float64, index int) optional.Option[types.Transaction] {
	result, state := r.fired(ctx, index)
	if state.IsNone() || state.Unwrap() != indicator.SqueezeBuy {
		return optional.None[types.Transaction]()
	}

	bar := ctx.Series.At(index)
	momentum, _ := result.Momentum.At(index)

	return ctx.Builder.CreateBuyTransaction(ctx.Security, bar.TradeDate, index, cash, bar.Close, r.label,
		fmt.Sprintf("squeeze fired long, momentum %.3f", momentum))
}

func (r *SqueezeRule) TrySell(ctx Context, position types.Position, index int) optional.Option[types.Transaction] {
	if index <= position.Buy.DateIndex {
		return optional.None[types.Transaction]()
	}

	result := indicator.CalculateSqueeze(ctx.Series, r.options.SqueezeConfig)
	if result.States[index] == indicator.SqueezeBuy {
		return optional.None[types.Transaction]()
	}

	bar := ctx.Series.At(index)

	return optional.Some(ctx.Builder.CreateSellTransaction(ctx.Security, bar.TradeDate, index, position.Count, bar.Close, r.label,
		fmt.Sprintf("squeeze turned %s", result.States[index])))
}

func (r *SqueezeRule) Check(ctx Context, index int) optional.Option[types.Signal] {
	result, state := r.fired(ctx, index)

	var signalType types.SignalType

	switch {
	case state.IsNone():
		if index < 0 || index >= len(result.States) || result.States[index] != indicator.SqueezeReady {
			return optional.None[types.Signal]()
		}

		signalType = types.SignalTypeWatch
	case state.Unwrap() == indicator.SqueezeBuy:
		signalType = types.SignalTypeBuy
	case state.Unwrap() == indicator.SqueezeSell:
		signalType = types.SignalTypeSell
	case state.Unwrap() == indicator.SqueezeReady:
		signalType = types.SignalTypeWatch
	default:
		return optional.None[types.Signal]()
	}

	raw := map[string]float64{}
	if v, ok := result.Bollinger.Upper.At(index); ok {
		raw["bollinger_upper"] = v
	}

	if v, ok := result.Keltner.Upper.At(index); ok {
		raw["keltner_upper"] = v
	}

	if v, ok := result.Momentum.At(index); ok {
		raw["momentum"] = v
	}

	return optional.Some(types.Signal{
		Date:      ctx.Series.At(index).TradeDate,
		Index:     index,
		Type:      signalType,
		Name:      r.label,
		Reason:    fmt.Sprintf("squeeze %s", result.States[index]),
		RawValue:  raw,
		Security:  ctx.Security,
		Indicator: types.IndicatorTypeSqueeze,
	})
}

// CreateReports lists fired squeezes first, strongest momentum first.
func (r *SqueezeRule) CreateReports(signals []types.Signal) (Report, error) {
	sorted := slices.Clone(signals)
	slices.SortStableFunc(sorted, func(a, b types.Signal) int {
		if c := cmp.Compare(signalRank(a.Type), signalRank(b.Type)); c != 0 {
			return c
		}

		return cmp.Compare(b.RawValue["momentum"], a.RawValue["momentum"])
	})

	report := Report{
		Title:   r.label,
		Headers: []string{"Code", "Name", "Date", "Signal", "Momentum"},
		Rows:    make([][]string, 0, len(sorted)),
	}

	for _, signal := range sorted {
		report.Rows = append(report.Rows, []string{
			signal.Security.Code,
			signal.Security.Name,
			signal.Date.String(),
			string(signal.Type),
			strconv.FormatFloat(signal.RawValue["momentum"], 'f', 3, 64),
		})
	}

	return report, nil
}

func signalRank(signalType types.SignalType) int {
	switch signalType {
	case types.SignalTypeBuy:
		return 0
	case types.SignalTypeSell:
		return 1
	case types.SignalTypeWatch:
		return 2
	default:
		return 3
	}
}
