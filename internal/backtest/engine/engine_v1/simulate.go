package engine

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/rule"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"go.uber.org/zap"
)

// SettleHook observes every settlement attempt made by a simulation.
type SettleHook func(tx types.Transaction, result SettlementResult)

// Simulation drives one security's ledger through its bars.
type Simulation struct {
	Ledger    *Ledger
	Context   rule.Context
	BuyRules  []rule.Rule
	SellRules []rule.Rule
	// InitialBalance sizes every buy in fixed-position mode.
	InitialBalance float64
	OnSettle       SettleHook
}

// Step processes one bar: sells first, then buys.
//
// Each open position is offered to the sell rules in order and the first sell that
// settles closes it. Outside fixed-position mode no buy is attempted while any
// position is still open. Every buy rule is then asked in order and each settled
// buy opens its own lot.
func (s *Simulation) Step(index int) {
	ledger := s.Ledger

	// positions shrink as they close, so only advance past the ones that stay open
	for i := 0; i < len(ledger.Positions); {
		if !s.sellPosition(ledger.Positions[i], index) {
			i++
		}
	}

	if !ledger.FixedPositionMode && len(ledger.Positions) > 0 {
		return
	}

	cash := ledger.Balance
	if ledger.FixedPositionMode {
		cash = s.InitialBalance
	}

	for _, buyRule := range s.BuyRules {
		tx := buyRule.TryBuy(s.Context, cash, index)
		if tx.IsNone() {
			continue
		}

		buy := tx.Unwrap()
		buy.SequenceID = ledger.NextSequenceID()
		s.settle(buy)
	}
}

func (s *Simulation) sellPosition(position types.Position, index int) bool {
	for _, sellRule := range s.SellRules {
		tx := sellRule.TrySell(s.Context, position, index)
		if tx.IsNone() {
			continue
		}

		sell := tx.Unwrap()
		sell.SequenceID = position.SequenceID

		if s.settle(sell).Settled() {
			return true
		}
	}

	return false
}

func (s *Simulation) settle(tx types.Transaction) SettlementResult {
	result := s.Ledger.Settle(optional.Some(tx))

	if !result.Settled() && s.Context.Logger != nil {
		s.Context.Logger.Debug("Settlement rejected",
			zap.String("code", tx.Code),
			zap.Int("date", int(tx.Date)),
			zap.String("kind", string(tx.Kind)),
			zap.String("method", tx.MethodType),
			zap.String("reason", string(result.Status)),
			zap.Error(result.Err),
		)
	}

	if s.OnSettle != nil {
		s.OnSettle(tx, result)
	}

	return result
}
