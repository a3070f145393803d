package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRegistration("patient", OutcomeSuccess)
	m.ObserveRegistration("patient", OutcomeSuccess)
	m.ObserveRegistration("doctor", OutcomeRejected)
	m.ObserveLogin(OutcomeError)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.Registrations.WithLabelValues("patient", OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Registrations.WithLabelValues("doctor", OutcomeRejected)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Logins.WithLabelValues(OutcomeError)))
}

func TestNew_PanicsOnDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
