package types

type SignalType string

const (
	// SignalTypeBuy tells the scanner the security looks like an entry
	SignalTypeBuy SignalType = "buy"
	// SignalTypeSell tells the scanner the security looks like an exit
	SignalTypeSell SignalType = "sell"
	// SignalTypeWatch flags a setup that is not yet actionable
	SignalTypeWatch SignalType = "watch"
	// SignalTypeNoAction is a signal that tells the scanner to take no action
	SignalTypeNoAction SignalType = "no_action"
)

type Signal struct {
	// Date is the trading day the signal was raised on
	Date TradeDate `json:"date" yaml:"date"`
	// Index is the bar index the signal was raised on
	Index int `json:"index" yaml:"index"`
	Type  SignalType `json:"type" yaml:"type"`
	// Name is the label of the rule that raised the signal
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
	// RawValue holds the indicator readings behind the signal
	RawValue map[string]float64 `json:"raw_value" yaml:"raw_value"`
	Security Security           `json:"security" yaml:"security"`
	// Indicator is the indicator that generated the signal
	Indicator IndicatorType `json:"indicator" yaml:"indicator"`
}
