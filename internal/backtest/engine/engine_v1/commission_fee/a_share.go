package commission_fee

import (
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/shopspring/decimal"
)

var (
	aShareCommissionRate  = decimal.RequireFromString("0.00025")
	aShareTransferFeeRate = decimal.RequireFromString("0.00002")
	aShareStampDutyRate   = decimal.RequireFromString("0.001")
)

// AShareCommissionFee charges commission on every trade, a transfer fee on
// Shanghai listings and stamp duty on sells.
type AShareCommissionFee struct{}

func NewAShareCommissionFee() CommissionFee {
	return &AShareCommissionFee{}
}

func (c *AShareCommissionFee) Calculate(isBuy bool, security types.Security, count int, price float64) types.Fee {
	gross := grossAmount(count, price)
	commission := gross.Mul(aShareCommissionRate)

	transferFee := decimal.Zero
	if security.Exchange == types.ExchangeSSE {
		transferFee = gross.Mul(aShareTransferFeeRate)
	}

	stampDuty := decimal.Zero
	if !isBuy {
		stampDuty = gross.Mul(aShareStampDutyRate)
	}

	return buildFee(isBuy, gross, commission, transferFee, stampDuty)
}
