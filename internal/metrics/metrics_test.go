package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.Delivery("push", OutcomeStored)
		m.RecordStored("PUSH")
		m.ListRequest("ok")
		m.ObserveStore("insert", time.Now())
		m.Routes(nil)
	})
}

func TestCountersIncrement(t *testing.T) {
	m := New()

	m.Delivery("push", OutcomeStored)
	m.Delivery("push", OutcomeStored)
	m.Delivery("pull_request", OutcomeIgnored)
	m.RecordStored("PUSH")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.deliveries.WithLabelValues("push", OutcomeStored)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deliveries.WithLabelValues("pull_request", OutcomeIgnored)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.records.WithLabelValues("PUSH")))
}
