// Package metrics holds the Prometheus collectors of the service.
//
// All methods are safe on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/models"
)

const namespace = "settleup"

// Metrics is a registry plus the collectors registered on it.
type Metrics struct {
	registry    *prometheus.Registry
	rpcRequests *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
	appends     *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	planSize    prometheus.Histogram
}

// New creates a registry with the service collectors and the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPCs handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		appends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_appends_total",
			Help:      "Transactions appended to ledgers, by kind.",
		}, []string{"kind"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_rejections_total",
			Help:      "Transactions rejected by ledger validation, by reason.",
		}, []string{"reason"}),
		planSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_plan_instructions",
			Help:      "Number of instructions in computed settlement plans.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21, 34},
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rpcRequests,
		m.rpcDuration,
		m.appends,
		m.rejections,
		m.planSize,
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRPC records one finished RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// ObserveAppend counts a transaction accepted by a ledger.
func (m *Metrics) ObserveAppend(kind models.TransactionKind) {
	if m == nil {
		return
	}
	m.appends.WithLabelValues(string(kind)).Inc()
}

// ObserveRejection counts a ledger validation failure. Errors that are not
// validation failures are ignored.
func (m *Metrics) ObserveRejection(err error) {
	if m == nil {
		return
	}
	if reason := ledger.Reason(err); reason != "" {
		m.rejections.WithLabelValues(reason).Inc()
	}
}

// ObservePlan records the size of a computed settlement plan.
func (m *Metrics) ObservePlan(instructions int) {
	if m == nil {
		return
	}
	m.planSize.Observe(float64(instructions))
}
