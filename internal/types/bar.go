package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/moznion/go-optional"
)

const tradeDateLayout = "20060102"

// TradeDate is a trading day encoded as YYYYMMDD.
type TradeDate int

// NewTradeDate converts a time to its trading day.
func NewTradeDate(t time.Time) TradeDate {
	return TradeDate(t.Year()*10000 + int(t.Month())*100 + t.Day())
}

// ParseTradeDate parses a YYYYMMDD string.
func ParseTradeDate(value string) (TradeDate, error) {
	value = strings.TrimSpace(value)

	t, err := time.Parse(tradeDateLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid trade date %q: %w", value, err)
	}

	return NewTradeDate(t), nil
}

// Time returns midnight UTC of the trading day.
func (d TradeDate) Time() time.Time {
	v := int(d)

	return time.Date(v/10000, time.Month(v/100%100), v%100, 0, 0, 0, 0, time.UTC)
}

func (d TradeDate) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d TradeDate) String() string {
	return strconv.Itoa(int(d))
}

// UnmarshalJSON accepts both 20240102 and "20240102".
func (d *TradeDate) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := tradeDateFromAny(raw)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// UnmarshalYAML accepts both 20240102 and "20240102".
func (d *TradeDate) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	parsed, err := tradeDateFromAny(raw)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

func tradeDateFromAny(raw any) (TradeDate, error) {
	switch v := raw.(type) {
	case float64:
		return ParseTradeDate(strconv.Itoa(int(v)))
	case int:
		return ParseTradeDate(strconv.Itoa(v))
	case string:
		return ParseTradeDate(v)
	default:
		return 0, fmt.Errorf("unsupported trade date value %v (%T)", raw, raw)
	}
}

// Bar is one trading day of a security.
type Bar struct {
	TradeDate TradeDate `json:"trade_date" yaml:"trade_date"`
	Open      float64   `json:"open" yaml:"open"`
	High      float64   `json:"high" yaml:"high"`
	Low       float64   `json:"low" yaml:"low"`
	Close     float64   `json:"close" yaml:"close"`
	PreClose  float64   `json:"pre_close" yaml:"pre_close"`
	Change    float64   `json:"change" yaml:"change"`
	Volume    float64   `json:"vol" yaml:"vol"`
	// AdjustmentFactor is set when prices still need a split/dividend adjustment.
	AdjustmentFactor optional.Option[float64] `json:"adj_factor,omitempty" yaml:"-"`
}

// OHLCAverage is the mean of open, high, low and close.
func (b Bar) OHLCAverage() float64 {
	return (b.Open + b.High + b.Low + b.Close) / 4
}

// MidPoint is the mean of high and low.
func (b Bar) MidPoint() float64 {
	return (b.High + b.Low) / 2
}

// BarData is what a data source returns for one security.
type BarData struct {
	UpdateTime time.Time `json:"update_time"`
	Data       []Bar     `json:"data"`
}
