package rule

import (
	"time"

	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/trading"
	"github.com/rxtech-lab/argo-backtest/internal/types"
)

var testSecurity = types.Security{Code: "000001", Name: "Ping An Bank", Exchange: types.ExchangeSZSE}

func contextFromCloses(closes []float64) Context {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]types.Bar, len(closes))

	for i, c := range closes {
		preClose := c
		if i > 0 {
			preClose = closes[i-1]
		}

		bars[i] = types.Bar{
			TradeDate: types.NewTradeDate(start.AddDate(0, 0, i)),
			Open:      preClose,
			High:      c + 0.5,
			Low:       c - 0.5,
			Close:     c,
			PreClose:  preClose,
			Change:    c - preClose,
		}
	}

	return Context{
		Security: testSecurity,
		Series:   series.New(bars, series.DefaultPrecision),
		Builder:  trading.NewTradingSystem(commission_fee.NewAShareCommissionFee()),
		Logger:   logger.NewNopLogger(),
	}
}

func breakoutCloses() []float64 {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 10
	}

	return append(closes, 12, 14, 16, 15)
}

func positionAt(ctx Context, index int, count int) types.Position {
	bar := ctx.Series.At(index)
	buy := ctx.Builder.CreateBuyTransaction(ctx.Security, bar.TradeDate, index, float64(count)*bar.Close*2, bar.Close, "test", "").Unwrap()
	buy.Count = count
	buy.SequenceID = 1

	return types.Position{SequenceID: 1, Count: count, Price: bar.Close, Buy: buy}
}
