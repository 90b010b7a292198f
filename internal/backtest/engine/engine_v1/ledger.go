package engine

import (
	"slices"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/internal/utils"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"github.com/shopspring/decimal"
)

type SettlementStatus string

const (
	SettlementSettled            SettlementStatus = "settled"
	SettlementEmpty              SettlementStatus = "empty"
	SettlementInsufficientFunds  SettlementStatus = "insufficient_funds"
	SettlementNoMatchingPosition SettlementStatus = "no_matching_position"
	SettlementPartialLot         SettlementStatus = "partial_lot"
)

// SettlementResult is the outcome of applying one transaction to a ledger.
// Err is set for every rejection status.
type SettlementResult struct {
	Status      SettlementStatus
	Err         error
	ClosedTrade optional.Option[types.ClosedTrade]
}

func (r SettlementResult) Settled() bool {
	return r.Status == SettlementSettled
}

// Ledger is the capital and position book of one security during one run.
type Ledger struct {
	Security          types.Security
	Balance           float64
	FixedPositionMode bool
	Positions         []types.Position
	ClosedTrades      []types.ClosedTrade
	// Transactions holds every settled transaction in settlement order.
	Transactions   []types.Transaction
	nextSequenceID int
}

func NewLedger(security types.Security, balance float64, fixedPositionMode bool) *Ledger {
	return &Ledger{
		Security:          security,
		Balance:           balance,
		FixedPositionMode: fixedPositionMode,
		nextSequenceID:    1,
	}
}

// NextSequenceID hands out the id that pairs a buy with its eventual sell.
func (l *Ledger) NextSequenceID() int {
	id := l.nextSequenceID
	l.nextSequenceID++

	return id
}

// Settle applies tx to the ledger. Counts that are not whole lots are rejected. A sell is matched to its position by sequence id
// before the balance is checked, so a rejected transaction never changes anything.
// Outside fixed-position mode a transaction that would take the balance below zero
// is rejected.
func (l *Ledger) Settle(tx optional.Option[types.Transaction]) SettlementResult {
	if tx.IsNone() {
		return SettlementResult{Status: SettlementEmpty}
	}

	transaction := tx.Unwrap()

	if !utils.IsWholeLot(transaction.Count) {
		return SettlementResult{
			Status: SettlementPartialLot,
			Err:    errors.Newf(errors.ErrCodeInvalidTransaction, "%s count %d is not a whole number of lots", transaction.Kind, transaction.Count),
		}
	}

	positionIndex := -1
	if !transaction.IsBuy() {
		positionIndex = slices.IndexFunc(l.Positions, func(p types.Position) bool {
			return p.SequenceID == transaction.SequenceID
		})
		if positionIndex < 0 {
			return SettlementResult{
				Status: SettlementNoMatchingPosition,
				Err:    errors.Newf(errors.ErrCodeSequenceMismatch, "no open position with sequence id %d", transaction.SequenceID),
			}
		}
	}

	balance := decimal.NewFromFloat(l.Balance).Add(decimal.NewFromFloat(transaction.Total))
	if !l.FixedPositionMode && balance.IsNegative() {
		return SettlementResult{
			Status: SettlementInsufficientFunds,
			Err: errors.Newf(errors.ErrCodeInsufficientFunds, "balance %.3f cannot cover %s total %.3f",
				l.Balance, transaction.Kind, transaction.Total),
		}
	}

	l.Balance = balance.InexactFloat64()
	l.Transactions = append(l.Transactions, transaction)

	if transaction.IsBuy() {
		l.Positions = append(l.Positions, types.Position{
			SequenceID: transaction.SequenceID,
			Count:      transaction.Count,
			Price:      transaction.Price,
			Buy:        transaction,
		})

		return SettlementResult{Status: SettlementSettled}
	}

	position := l.Positions[positionIndex]
	l.Positions = slices.Delete(l.Positions, positionIndex, positionIndex+1)

	closed := closeTrade(position, transaction)
	l.ClosedTrades = append(l.ClosedTrades, closed)

	return SettlementResult{Status: SettlementSettled, ClosedTrade: optional.Some(closed)}
}

func closeTrade(position types.Position, sell types.Transaction) types.ClosedTrade {
	profit := decimal.NewFromFloat(position.Buy.Total).Add(decimal.NewFromFloat(sell.Total))

	proceeds := decimal.NewFromInt(int64(sell.Count)).Mul(decimal.NewFromFloat(sell.Price))
	cost := decimal.NewFromInt(int64(position.Count)).Mul(decimal.NewFromFloat(position.Price))

	return types.ClosedTrade{
		SequenceID: position.SequenceID,
		TradeDate:  sell.Date,
		Profit:     profit.InexactFloat64(),
		Income:     proceeds.Sub(cost).InexactFloat64(),
		Buy:        position.Buy,
		Sell:       sell,
	}
}

// AccountValue is the balance plus every open lot valued at price.
func (l *Ledger) AccountValue(price float64) float64 {
	value := decimal.NewFromFloat(l.Balance)
	for _, position := range l.Positions {
		value = value.Add(decimal.NewFromInt(int64(position.Count)).Mul(decimal.NewFromFloat(price)))
	}

	return value.InexactFloat64()
}
