// Package metrics counts what a backtest run did.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rxtech-lab/argo-backtest/pkg/errors"
)

// Metrics holds the Prometheus counters of one engine. Each engine owns its registry.
type Metrics struct {
	Registry *prometheus.Registry

	SettlementsTotal  *prometheus.CounterVec // labels: outcome
	TransactionsTotal *prometheus.CounterVec // labels: kind
	SecuritiesTotal   *prometheus.CounterVec // labels: status
}

// Security statuses.
const (
	SecurityCompleted = "completed"
	SecuritySkipped   = "skipped"
	SecurityFailed    = "failed"
)

// NewMetrics registers and returns all counters on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		SettlementsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backtest_settlements_total",
			Help: "Settlement attempts by outcome",
		}, []string{"outcome"}),
		TransactionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backtest_transactions_total",
			Help: "Settled transactions by kind",
		}, []string{"kind"}),
		SecuritiesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backtest_securities_total",
			Help: "Securities processed by status",
		}, []string{"status"}),
	}

	m.Registry.MustRegister(m.SettlementsTotal, m.TransactionsTotal, m.SecuritiesTotal)

	return m
}

func (m *Metrics) ObserveSettlement(outcome string) {
	m.SettlementsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveTransaction(kind string) {
	m.TransactionsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveSecurity(status string) {
	m.SecuritiesTotal.WithLabelValues(status).Inc()
}

// WriteToTextfile writes the registry in the text exposition format.
func (m *Metrics) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestWriteFailed, "failed to write metrics", err)
	}

	return nil
}
