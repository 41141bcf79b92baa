package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestDomainCounters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "calendar-test")

	m.IncAppointmentsBooked()
	m.IncAppointmentsBooked()
	m.IncAppointmentsCancelled()
	m.IncBookingRejected("slot_not_available")
	m.AddDaysExpanded(5)
	m.AddDaysExpanded(0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.AppointmentsBooked.WithLabelValues("calendar-test")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AppointmentsCancelled.WithLabelValues("calendar-test")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingRejections.WithLabelValues("calendar-test", "slot_not_available")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.DaysExpanded.WithLabelValues("calendar-test")))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncAppointmentsBooked()
		m.IncAppointmentsCancelled()
		m.IncBookingRejected("any")
		m.AddDaysExpanded(3)
	})
	assert.Equal(t, "", m.ServiceName())
}
