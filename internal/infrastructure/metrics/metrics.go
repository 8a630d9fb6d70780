package metrics

import (
	"net/http"

	"jobledger/internal/domain/entities"
	"jobledger/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LifecycleMetrics exports job lifecycle counters.
type LifecycleMetrics struct {
	registry            *prometheus.Registry
	transitions         *prometheus.CounterVec
	identifierConflicts *prometheus.CounterVec
	operationFailures   *prometheus.CounterVec
}

var _ interfaces.ILifecycleObserver = (*LifecycleMetrics)(nil)

func NewLifecycleMetrics() *LifecycleMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &LifecycleMetrics{
		registry: registry,
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobledger_job_transitions_total",
			Help: "Jobs that entered a lifecycle status.",
		}, []string{"to"}),
		identifierConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobledger_identifier_conflicts_total",
			Help: "Identifier collisions retried while minting estimate or invoice numbers.",
		}, []string{"kind"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "jobledger_operation_failures_total",
			Help: "Failed lifecycle operations by error kind.",
		}, []string{"operation", "kind"}),
	}
	registry.MustRegister(m.transitions, m.identifierConflicts, m.operationFailures)
	return m
}

func (m *LifecycleMetrics) TransitionRecorded(to entities.JobStatus) {
	m.transitions.WithLabelValues(to.Slug()).Inc()
}

func (m *LifecycleMetrics) IdentifierConflict(kind string) {
	m.identifierConflicts.WithLabelValues(kind).Inc()
}

func (m *LifecycleMetrics) OperationFailed(operation, kind string) {
	m.operationFailures.WithLabelValues(operation, kind).Inc()
}

func (m *LifecycleMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *LifecycleMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
