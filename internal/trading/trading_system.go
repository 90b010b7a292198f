package trading

import (
	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/internal/utils"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"go.uber.org/zap"
)

// TradingSystem builds transactions priced by a commission schedule.
type TradingSystem struct {
	commission commission_fee.CommissionFee
	validate   *validator.Validate
	logger     *logger.Logger
}

type Option func(*TradingSystem)

// WithLogger reports buys the builder had to drop because they were malformed.
func WithLogger(log *logger.Logger) Option {
	return func(t *TradingSystem) {
		t.logger = log
	}
}

// NewTradingSystem creates a new TradingSystem with the given commission schedule.
func NewTradingSystem(commission commission_fee.CommissionFee, opts ...Option) *TradingSystem {
	t := &TradingSystem{
		commission: commission,
		validate:   validator.New(),
		logger:     logger.NewNopLogger(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *TradingSystem) CalculateFee(isBuy bool, security types.Security, count int, price float64) types.Fee {
	return t.commission.Calculate(isBuy, security, count, price)
}

func (t *TradingSystem) CreateBuyTransaction(
	security types.Security,
	date types.TradeDate,
	index int,
	cash float64,
	price float64,
	methodType string,
	memo string,
) optional.Option[types.Transaction] {
	count := utils.MaxLotCount(cash, price)
	if count < utils.LotSize {
		return optional.None[types.Transaction]()
	}

	fee := t.CalculateFee(true, security, count, price)
	for fee.Total+cash < 0 {
		count -= utils.LotSize
		if count < utils.LotSize {
			return optional.None[types.Transaction]()
		}

		fee = t.CalculateFee(true, security, count, price)
	}

	transaction := t.newTransaction(security, date, index, types.TransactionKindBuy, count, price, fee, methodType, memo)
	if err := t.validate.Struct(transaction); err != nil {
		t.logger.Warn("Dropped invalid buy transaction",
			zap.String("code", security.Code),
			zap.Int("date", int(date)),
			zap.String("method", methodType),
			zap.Error(errors.Wrap(errors.ErrCodeInvalidTransaction, "buy transaction failed validation", err)),
		)

		return optional.None[types.Transaction]()
	}

	return optional.Some(transaction)
}

func (t *TradingSystem) CreateSellTransaction(
	security types.Security,
	date types.TradeDate,
	index int,
	count int,
	price float64,
	methodType string,
	memo string,
) types.Transaction {
	fee := t.CalculateFee(false, security, count, price)

	return t.newTransaction(security, date, index, types.TransactionKindSell, count, price, fee, methodType, memo)
}

func (t *TradingSystem) newTransaction(
	security types.Security,
	date types.TradeDate,
	index int,
	kind types.TransactionKind,
	count int,
	price float64,
	fee types.Fee,
	methodType string,
	memo string,
) types.Transaction {
	return types.Transaction{
		Code:       security.Code,
		Date:       date,
		DateIndex:  index,
		Kind:       kind,
		Count:      count,
		Price:      price,
		Fee:        fee,
		MethodType: methodType,
		Memo:       memo,
	}
}
