// Package metrics holds the Prometheus collectors of the registry service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RegistrationTransitionsTotal *prometheus.CounterVec   // Workflow state entries by role and state
	ContractCallDurationSeconds  *prometheus.HistogramVec // Contract calls by method and outcome
	NotificationsTotal           *prometheus.CounterVec   // Relay deliveries by email type and status
	EndpointLatencySeconds       *prometheus.HistogramVec
}

// New registers the collectors on reg. Tests pass a fresh prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RegistrationTransitionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeledger_registration_transitions_total",
			Help: "Total number of registration workflow state transitions by role and target state",
		}, []string{"role", "state"}),

		ContractCallDurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lifeledger_contract_call_duration_seconds",
			Help:    "Duration of registry contract calls by method and outcome",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "outcome"}),

		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lifeledger_notifications_total",
			Help: "Total number of confirmation emails handled by the relay by type and status",
		}, []string{"type", "status"}),

		EndpointLatencySeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lifeledger_endpoint_latency_seconds",
			Help:    "Latency of HTTP endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

// NewNop returns collectors bound to a private registry, for callers that do not export metrics.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) RecordTransition(role, state string) {
	m.RegistrationTransitionsTotal.WithLabelValues(role, state).Inc()
}

func (m *Metrics) ObserveContractCall(method string, failed bool, durationSeconds float64) {
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	m.ContractCallDurationSeconds.WithLabelValues(method, outcome).Observe(durationSeconds)
}

func (m *Metrics) RecordNotification(emailType, status string) {
	m.NotificationsTotal.WithLabelValues(emailType, status).Inc()
}

func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	m.EndpointLatencySeconds.WithLabelValues(endpoint).Observe(durationSeconds)
}
