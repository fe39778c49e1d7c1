// Package metrics exposes executor outcomes to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campus-roster/pkg/db"
)

// Default histogram buckets for transaction duration (in milliseconds)
var defaultBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000}

// TransactionMetrics wraps the collectors fed by the executor.
type TransactionMetrics struct {
	registry *prometheus.Registry

	transactionsTotal   *prometheus.CounterVec
	transactionDuration *prometheus.HistogramVec
}

// New creates the collectors on a private registry under namespace.
func New(namespace string) *TransactionMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	m := &TransactionMetrics{
		registry: registry,
		transactionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_total",
				Help:      "Total number of executor invocations by operation and outcome",
			},
			[]string{"op", "outcome"},
		),
		transactionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "transaction_duration_ms",
				Help:      "Executor invocation duration in milliseconds",
				Buckets:   defaultBuckets,
			},
			[]string{"op"},
		),
	}
	registry.MustRegister(m.transactionsTotal, m.transactionDuration)
	return m
}

// ObserveTransaction implements db.Observer.
func (m *TransactionMetrics) ObserveTransaction(op string, outcome db.Outcome, elapsed time.Duration) {
	m.transactionsTotal.WithLabelValues(op, string(outcome)).Inc()
	m.transactionDuration.WithLabelValues(op).Observe(float64(elapsed.Microseconds()) / 1000)
}

// Handler serves the registry in the Prometheus text format.
func (m *TransactionMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *TransactionMetrics) Registry() *prometheus.Registry {
	return m.registry
}

var _ db.Observer = (*TransactionMetrics)(nil)
