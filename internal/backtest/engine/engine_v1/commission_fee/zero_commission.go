package commission_fee

import (
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/shopspring/decimal"
)

// ZeroCommissionFee implements CommissionFee interface with zero commission.
type ZeroCommissionFee struct{}

// NewZeroCommissionFee creates a new zero commission fee.
func NewZeroCommissionFee() CommissionFee {
	return &ZeroCommissionFee{}
}

// Calculate charges nothing, so the total is the signed gross amount.
func (c *ZeroCommissionFee) Calculate(isBuy bool, security types.Security, count int, price float64) types.Fee {
	return buildFee(isBuy, grossAmount(count, price), decimal.Zero, decimal.Zero, decimal.Zero)
}
