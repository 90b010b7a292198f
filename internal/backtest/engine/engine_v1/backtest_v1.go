package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/commission_fee"
	"github.com/rxtech-lab/argo-backtest/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/argo-backtest/internal/logger"
	"github.com/rxtech-lab/argo-backtest/internal/marker"
	"github.com/rxtech-lab/argo-backtest/internal/metrics"
	"github.com/rxtech-lab/argo-backtest/internal/rule"
	"github.com/rxtech-lab/argo-backtest/internal/series"
	"github.com/rxtech-lab/argo-backtest/internal/stats"
	"github.com/rxtech-lab/argo-backtest/internal/trading"
	"github.com/rxtech-lab/argo-backtest/internal/types"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

var _ engine.Engine = (*BacktestEngineV1)(nil)

type BacktestEngineV1 struct {
	config        BacktestEngineV1Config
	resultsFolder string
	log           *logger.Logger
	ruleRegistry  *rule.Registry
	buyRules      []rule.Rule
	sellRules     []rule.Rule
	builder       trading.TransactionBuilder
	state         *BacktestState
	marker        marker.Marker
	metrics       *metrics.Metrics
	datasource    datasource.DataSource
	sink          stats.Sink
}

type Option func(*BacktestEngineV1)

// WithLogger replaces the production logger created by Initialize.
func WithLogger(log *logger.Logger) Option {
	return func(b *BacktestEngineV1) {
		b.log = log
	}
}

// WithRuleRegistry replaces the registry of bundled rules.
func WithRuleRegistry(registry *rule.Registry) Option {
	return func(b *BacktestEngineV1) {
		b.ruleRegistry = registry
	}
}

// WithMarker replaces the DuckDB signal store used by Scan.
func WithMarker(m marker.Marker) Option {
	return func(b *BacktestEngineV1) {
		b.marker = m
	}
}

func NewBacktestEngineV1(opts ...Option) *BacktestEngineV1 {
	b := &BacktestEngineV1{
		config:       EmptyConfig(),
		ruleRegistry: rule.NewDefaultRegistry(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Initialize implements engine.Engine.
func (b *BacktestEngineV1) Initialize(config string) error {
	b.config = EmptyConfig()
	if err := yaml.Unmarshal([]byte(config), &b.config); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestConfigError, "failed to parse config", err)
	}

	if err := b.config.Validate(); err != nil {
		return err
	}

	if b.log == nil {
		log, err := logger.NewLogger()
		if err != nil {
			return errors.Wrap(errors.ErrCodeBacktestInitFailed, "failed to create logger", err)
		}

		b.log = log
	}

	b.log.Debug("Backtest engine initialized",
		zap.String("config", config),
	)

	var err error

	b.buyRules, err = b.buildRules(b.config.Rules.Buy)
	if err != nil {
		return err
	}

	b.sellRules, err = b.buildRules(b.config.Rules.Sell)
	if err != nil {
		return err
	}

	b.builder = trading.NewTradingSystem(
		commission_fee.GetCommissionFeeHandler(b.config.FeeSchedule),
		trading.WithLogger(b.log),
	)

	b.state = NewBacktestState(b.log)
	if b.state == nil {
		return errors.New(errors.ErrCodeBacktestStateNil, "failed to create backtest state")
	}

	if err := b.state.Initialize(); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestInitFailed, "failed to initialize state", err)
	}

	if b.marker == nil {
		b.marker, err = NewBacktestMarker(b.log)
		if err != nil {
			return errors.Wrap(errors.ErrCodeBacktestInitFailed, "failed to create backtest marker", err)
		}
	}

	b.metrics = metrics.NewMetrics()

	if b.sink == nil {
		b.sink = b.log.LineSink("backtest")
	}

	return nil
}

func (b *BacktestEngineV1) buildRules(entries []string) ([]rule.Rule, error) {
	rules := make([]rule.Rule, 0, len(entries))

	for _, entry := range entries {
		name, label := ParseRuleEntry(entry)

		r, err := b.ruleRegistry.Build(name, label, b.config.RuleOptions(label))
		if err != nil {
			return nil, err
		}

		rules = append(rules, r)
	}

	return rules, nil
}

// SetResultsFolder implements engine.Engine.
func (b *BacktestEngineV1) SetResultsFolder(folder string) error {
	b.resultsFolder = folder

	return nil
}

// SetDataSource implements engine.Engine.
func (b *BacktestEngineV1) SetDataSource(datasource datasource.DataSource) error {
	b.datasource = datasource

	return nil
}

// SetReportSink implements engine.Engine.
func (b *BacktestEngineV1) SetReportSink(sink stats.Sink) error {
	b.sink = sink

	return nil
}

// Metrics returns the counters of the runs made so far.
func (b *BacktestEngineV1) Metrics() *metrics.Metrics {
	return b.metrics
}

// Run implements engine.Engine.
func (b *BacktestEngineV1) Run(ctx context.Context, callbacks engine.LifecycleCallbacks) (err error) {
	if callbacks.OnBacktestEnd != nil {
		defer func() {
			(*callbacks.OnBacktestEnd)(err)
		}()
	}

	if err := b.preRunCheck(); err != nil {
		return err
	}

	// start from an empty results folder
	if _, err := os.Stat(b.resultsFolder); err == nil {
		os.RemoveAll(b.resultsFolder)
	}

	if err := os.MkdirAll(b.resultsFolder, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestWriteFailed, "failed to create results folder", err)
	}

	securities, err := b.datasource.ListSecurities(ctx)
	if err != nil {
		return err
	}

	if callbacks.OnBacktestStart != nil {
		if err := (*callbacks.OnBacktestStart)(len(securities)); err != nil {
			return errors.Wrap(errors.ErrCodeCallbackFailed, "backtest start callback failed", err)
		}
	}

	for i, security := range securities {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := b.runSecurity(ctx, i, security, callbacks); err != nil {
			b.metrics.ObserveSecurity(metrics.SecurityFailed)
			b.log.Error("Backtest failed",
				zap.String("code", security.Code),
				zap.Error(err),
			)

			return err
		}
	}

	return b.metrics.WriteToTextfile(filepath.Join(b.resultsFolder, "metrics.prom"))
}

func (b *BacktestEngineV1) runSecurity(ctx context.Context, securityIndex int, security types.Security, callbacks engine.LifecycleCallbacks) error {
	data, err := b.datasource.LoadDailyBars(ctx, security.Code)
	if err != nil {
		return err
	}

	if len(data.Data) == 0 {
		b.skip(securityIndex, security, errors.Newf(errors.ErrCodeNoBarData, "no daily bar data for %s", security.Code), callbacks)

		return nil
	}

	bars := series.New(data.Data, b.config.Precision)

	start := 0
	if b.config.StartDate.IsSome() {
		start = bars.StartIndex(b.config.StartDate.Unwrap())
	}

	if start >= bars.Len() {
		b.skip(securityIndex, security, errors.Newf(errors.ErrCodeNoBarData, "no daily bar data for %s on or after %s",
			security.Code, b.config.StartDate.Unwrap()), callbacks)

		return nil
	}

	total := bars.Len() - start

	if callbacks.OnSecurityStart != nil {
		if err := (*callbacks.OnSecurityStart)(securityIndex, security, total); err != nil {
			return errors.Wrap(errors.ErrCodeCallbackFailed, "security start callback failed", err)
		}
	}

	b.log.Info("Running backtest",
		zap.String("code", security.Code),
		zap.Int("bars", total),
	)

	if err := b.cleanUpRun(); err != nil {
		return err
	}

	ledger := NewLedger(security, b.config.InitialBalance, b.config.FixedPositionMode)

	var journalErr error

	simulation := &Simulation{
		Ledger: ledger,
		Context: rule.Context{
			Security: security,
			Series:   bars,
			Builder:  b.builder,
			Logger:   b.log,
		},
		BuyRules:       b.buyRules,
		SellRules:      b.sellRules,
		InitialBalance: b.config.InitialBalance,
		OnSettle: func(tx types.Transaction, result SettlementResult) {
			b.metrics.ObserveSettlement(string(result.Status))

			if !result.Settled() {
				return
			}

			b.metrics.ObserveTransaction(string(tx.Kind))

			if err := b.state.Record(tx, result); err != nil && journalErr == nil {
				journalErr = err
			}
		},
	}

	for index := start; index < bars.Len(); index++ {
		simulation.Step(index)

		if journalErr != nil {
			return errors.Wrap(errors.ErrCodeBacktestWriteFailed, "failed to journal settlement", journalErr)
		}

		if callbacks.OnProcessData != nil {
			if err := (*callbacks.OnProcessData)(index-start+1, total); err != nil {
				return errors.Wrap(errors.ErrCodeCallbackFailed, "process data callback failed", err)
			}
		}
	}

	result, err := b.writeResults(security, bars, start, ledger)
	if err != nil {
		return err
	}

	b.metrics.ObserveSecurity(metrics.SecurityCompleted)

	if callbacks.OnSecurityEnd != nil {
		(*callbacks.OnSecurityEnd)(securityIndex, security, result)
	}

	return nil
}

func (b *BacktestEngineV1) skip(securityIndex int, security types.Security, reason error, callbacks engine.LifecycleCallbacks) {
	b.log.Warn("Skipping security",
		zap.String("code", security.Code),
		zap.Error(reason),
	)
	b.sink(fmt.Sprintf("Skipping %s %s: %s", security.Code, security.Name, reason.Error()))
	b.metrics.ObserveSecurity(metrics.SecuritySkipped)

	if callbacks.OnSecuritySkipped != nil {
		(*callbacks.OnSecuritySkipped)(securityIndex, security, reason.Error())
	}
}

func (b *BacktestEngineV1) writeResults(security types.Security, bars *series.Series, start int, ledger *Ledger) (types.TradeStats, error) {
	resultFolderPath := getResultFolder(b.resultsFolder, security)

	transactionsPath, closedTradesPath, err := b.state.Write(resultFolderPath)
	if err != nil {
		return types.TradeStats{}, errors.Wrap(errors.ErrCodeBacktestWriteFailed, "failed to write journal", err)
	}

	last, _ := bars.Last()
	summary := stats.Summarize(ledger.ClosedTrades)
	weekdays := stats.SummarizeByWeekday(ledger.ClosedTrades)

	result := types.TradeStats{
		ID:                   uuid.New().String(),
		Timestamp:            time.Now(),
		Security:             security,
		FirstDate:            bars.At(start).TradeDate,
		LastDate:             last.TradeDate,
		InitialBalance:       b.config.InitialBalance,
		FinalBalance:         ledger.Balance,
		AccountValue:         ledger.AccountValue(last.Close),
		OpenPositions:        len(ledger.Positions),
		Summary:              summary,
		Weekdays:             weekdays,
		TransactionsFilePath: transactionsPath,
		ClosedTradesFilePath: closedTradesPath,
	}

	if err := types.WriteTradeStats(filepath.Join(resultFolderPath, "stats.yaml"), []types.TradeStats{result}); err != nil {
		return types.TradeStats{}, errors.Wrap(errors.ErrCodeBacktestWriteFailed, "failed to write stats", err)
	}

	stats.Report(b.sink, stats.ReportInput{
		Security:       security,
		InitialBalance: result.InitialBalance,
		FinalBalance:   result.FinalBalance,
		AccountValue:   result.AccountValue,
		Summary:        summary,
	})
	stats.ReportWeekdays(b.sink, weekdays)

	b.log.Info("Backtest results written",
		zap.String("code", security.Code),
		zap.String("folder", resultFolderPath),
		zap.Int("trades", summary.TradeCount),
	)

	return result, nil
}

// Scan implements engine.Engine.
func (b *BacktestEngineV1) Scan(ctx context.Context) ([]rule.Report, error) {
	if b.datasource == nil {
		return nil, errors.New(errors.ErrCodeBacktestNoDatasource, "no datasource set")
	}

	if b.marker == nil {
		return nil, errors.New(errors.ErrCodeBacktestInitFailed, "engine is not initialized")
	}

	backtestMarker, isBacktestMarker := b.marker.(*BacktestMarker)
	if isBacktestMarker {
		if err := backtestMarker.Cleanup(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeBacktestInitFailed, "failed to reset marker", err)
		}
	}

	rules := b.uniqueRules()

	securities, err := b.datasource.ListSecurities(ctx)
	if err != nil {
		return nil, err
	}

	for _, security := range securities {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := b.datasource.LoadDailyBars(ctx, security.Code)
		if err != nil {
			return nil, err
		}

		if len(data.Data) == 0 {
			b.log.Warn("Skipping security without bars", zap.String("code", security.Code))

			continue
		}

		bars := series.New(data.Data, b.config.Precision)
		ruleContext := rule.Context{Security: security, Series: bars, Builder: b.builder, Logger: b.log}

		for _, r := range rules {
			scannable, ok := r.(rule.Scannable)
			if !ok {
				continue
			}

			signal := scannable.Check(ruleContext, bars.Len()-1)
			if signal.IsNone() {
				continue
			}

			if err := b.marker.Mark(signal.Unwrap()); err != nil {
				return nil, errors.Wrap(errors.ErrCodeBacktestWriteFailed, "failed to record signal", err)
			}
		}
	}

	var reports []rule.Report

	for _, r := range rules {
		reportable, ok := r.(rule.Reportable)
		if !ok {
			continue
		}

		signals, err := b.marker.GetSignalsByRule(r.Label())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to read signals", err)
		}

		report, err := reportable.CreateReports(signals)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeRuleReportFailed, err, "rule %s failed to report", r.Label())
		}

		reports = append(reports, report)
	}

	if isBacktestMarker && b.resultsFolder != "" {
		if err := backtestMarker.Write(b.resultsFolder); err != nil {
			return nil, errors.Wrap(errors.ErrCodeBacktestWriteFailed, "failed to write signals", err)
		}
	}

	return reports, nil
}

// uniqueRules returns the configured rules once per label, buy rules first.
func (b *BacktestEngineV1) uniqueRules() []rule.Rule {
	seen := make(map[string]bool)

	var rules []rule.Rule

	for _, r := range append(append([]rule.Rule{}, b.buyRules...), b.sellRules...) {
		if seen[r.Label()] {
			continue
		}

		seen[r.Label()] = true
		rules = append(rules, r)
	}

	return rules
}

// GetConfigSchema implements engine.Engine.
func (b *BacktestEngineV1) GetConfigSchema() (string, error) {
	config := b.config

	schema, err := config.GenerateSchemaJSON()
	if err != nil {
		return "", fmt.Errorf("failed to generate schema: %w", err)
	}

	return schema, nil
}

// Close releases the journal and marker databases.
func (b *BacktestEngineV1) Close() error {
	if err := b.state.Close(); err != nil {
		return err
	}

	if backtestMarker, ok := b.marker.(*BacktestMarker); ok {
		return backtestMarker.Close()
	}

	return nil
}

func (b *BacktestEngineV1) cleanUpRun() error {
	if b.state == nil {
		return errors.New(errors.ErrCodeBacktestStateNil, "backtest state is nil")
	}

	if err := b.state.Cleanup(); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestInitFailed, "failed to cleanup state", err)
	}

	return nil
}

func (b *BacktestEngineV1) preRunCheck() error {
	if b.state == nil {
		return errors.New(errors.ErrCodeBacktestStateNil, "engine is not initialized")
	}

	if len(b.buyRules) == 0 && len(b.sellRules) == 0 {
		b.log.Error("No rules loaded")

		return errors.New(errors.ErrCodeBacktestNoRules, "no rules loaded")
	}

	if b.resultsFolder == "" {
		b.log.Error("No results folder set")

		return errors.New(errors.ErrCodeBacktestNoResultsDir, "no results folder set")
	}

	if b.datasource == nil {
		b.log.Error("No datasource set")

		return errors.New(errors.ErrCodeBacktestNoDatasource, "no datasource set")
	}

	return nil
}
