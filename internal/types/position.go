package types

// Position is one open lot created by a settled buy. Lots are never merged.
type Position struct {
	SequenceID int         `json:"sequence_id" yaml:"sequence_id"`
	Count      int         `json:"count" yaml:"count"`
	Price      float64     `json:"price" yaml:"price"`
	Buy        Transaction `json:"buy" yaml:"buy"`
}

// ClosedTrade is emitted once when a sell settles against its open position.
type ClosedTrade struct {
	SequenceID int         `json:"sequence_id" yaml:"sequence_id"`
	TradeDate  TradeDate   `json:"trade_date" yaml:"trade_date"`
	Profit     float64     `json:"profit" yaml:"profit"`
	Income     float64     `json:"income" yaml:"income"`
	Buy        Transaction `json:"buy" yaml:"buy"`
	Sell       Transaction `json:"sell" yaml:"sell"`
}

// IsWin reports whether the trade broke even or better.
func (c ClosedTrade) IsWin() bool {
	return c.Profit >= 0
}

// Cost is the cash spent on the buy leg, fees included.
func (c ClosedTrade) Cost() float64 {
	return -c.Buy.Total
}

// HoldingDays counts trading days between the buy and the sell.
func (c ClosedTrade) HoldingDays() int {
	return c.Sell.DateIndex - c.Buy.DateIndex
}
