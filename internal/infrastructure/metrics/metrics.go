package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels shared by the registration and login counters
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	Registrations   *prometheus.CounterVec
	Logins          *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates the metrics and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hospital_registrations_total",
			Help: "Registration attempts by role and outcome",
		}, []string{"role", "outcome"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hospital_logins_total",
			Help: "Login attempts by outcome",
		}, []string{"outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hospital_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route template and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	reg.MustRegister(m.Registrations, m.Logins, m.RequestDuration)

	return m
}

func (m *Metrics) ObserveRegistration(role, outcome string) {
	m.Registrations.WithLabelValues(role, outcome).Inc()
}

func (m *Metrics) ObserveLogin(outcome string) {
	m.Logins.WithLabelValues(outcome).Inc()
}
