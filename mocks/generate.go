package mocks

//go:generate mockgen -destination=./mock_datasource.go -package=mocks github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/datasource DataSource
//go:generate mockgen -destination=./mock_rule.go -package=mocks github.com/rxtech-lab/argo-backtest/internal/rule Rule,Scannable,Reportable
//go:generate mockgen -destination=./mock_marker.go -package=mocks github.com/rxtech-lab/argo-backtest/internal/marker Marker
//go:generate mockgen -destination=./mock_trading.go -package=mocks github.com/rxtech-lab/argo-backtest/internal/trading TransactionBuilder
