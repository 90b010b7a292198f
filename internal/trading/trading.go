package trading

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

// TransactionBuilder prices and sizes transactions for rules. It never touches the ledger.
type TransactionBuilder interface {
	// CalculateFee returns the fee breakdown of trading count shares at price.
	CalculateFee(isBuy bool, security types.Security, count int, price float64) types.Fee
	// CreateBuyTransaction spends as much of cash as whole lots allow, fees included.
	// It returns None when not even one lot is affordable.
	CreateBuyTransaction(security types.Security, date types.TradeDate, index int, cash float64, price float64, methodType string, memo string) optional.Option[types.Transaction]
	// CreateSellTransaction sells exactly count shares.
	CreateSellTransaction(security types.Security, date types.TradeDate, index int, count int, price float64, methodType string, memo string) types.Transaction
}
