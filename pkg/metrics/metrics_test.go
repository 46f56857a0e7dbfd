package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordReservation(t *testing.T) {
	m := NewWithRegisterer("desk-booking", prometheus.NewRegistry())

	m.RecordReservation("create", "success")
	m.RecordReservation("create", "success")
	m.RecordReservation("create", "capacity_exceeded")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationOperations.WithLabelValues("create", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationOperations.WithLabelValues("create", "capacity_exceeded")))
}

func TestRecordCacheLookup(t *testing.T) {
	m := NewWithRegisterer("desk-booking", prometheus.NewRegistry())

	m.RecordCacheLookup("hit")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.MonthCacheRequests.WithLabelValues("hit")))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordReservation("create", "success")
		m.RecordCacheLookup("miss")
	})
}
