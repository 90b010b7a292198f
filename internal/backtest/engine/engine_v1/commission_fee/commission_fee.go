package commission_fee

import (
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/shopspring/decimal"
)

type CommissionFee interface {
	// Calculate returns the fee breakdown of trading count shares at price.
	// Total is negative for buys and positive for sells.
	Calculate(isBuy bool, security types.Security, count int, price float64) types.Fee
}

type Broker string

const (
	BrokerAShare Broker = "a_share"
	BrokerZero   Broker = "zero"
)

var AllBrokers = []any{
	BrokerAShare,
	BrokerZero,
}

func GetCommissionFeeHandler(broker Broker) CommissionFee {
	switch broker {
	case BrokerAShare:
		return NewAShareCommissionFee()
	case BrokerZero:
		return NewZeroCommissionFee()
	default:
		return NewAShareCommissionFee()
	}
}

// buildFee signs the total from the gross amount and the charges.
func buildFee(isBuy bool, gross decimal.Decimal, commission, transferFee, stampDuty decimal.Decimal) types.Fee {
	charges := commission.Add(transferFee).Add(stampDuty)

	total := gross.Sub(charges)
	if isBuy {
		total = gross.Add(charges).Neg()
	}

	return types.Fee{
		Total:       total.InexactFloat64(),
		GrossAmount: gross.InexactFloat64(),
		Commission:  commission.InexactFloat64(),
		TransferFee: transferFee.InexactFloat64(),
		StampDuty:   stampDuty.InexactFloat64(),
	}
}

func grossAmount(count int, price float64) decimal.Decimal {
	return decimal.NewFromInt(int64(count)).Mul(decimal.NewFromFloat(price))
}
