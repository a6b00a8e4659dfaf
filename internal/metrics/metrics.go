// Package metrics exposes Prometheus collectors for webhook ingestion and listing.
package metrics

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Delivery outcomes recorded by the dispatcher.
const (
	OutcomeStored   = "stored"
	OutcomeIgnored  = "ignored"
	OutcomeFailed   = "failed"
	OutcomeRejected = "rejected"
)

// Metrics groups the collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	deliveries   *prometheus.CounterVec
	records      *prometheus.CounterVec
	listRequests *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.deliveries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_deliveries_total",
		Help: "Webhook deliveries by GitHub event type and outcome.",
	}, []string{"event", "outcome"})

	m.records = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "webhook_records_total",
		Help: "Event records stored by record type.",
	}, []string{"type"})

	m.listRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "events_list_requests_total",
		Help: "Recent events listing requests by outcome.",
	}, []string{"outcome"})

	m.storeLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "event_store_operation_seconds",
		Help:    "Latency of event store operations.",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})

	m.registry.MustRegister(
		m.deliveries,
		m.records,
		m.listRequests,
		m.storeLatency,
		collectors.NewGoCollector(),
	)

	return m
}

func (m *Metrics) Delivery(event, outcome string) {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues(event, outcome).Inc()
}

func (m *Metrics) RecordStored(recordType string) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(recordType).Inc()
}

func (m *Metrics) ListRequest(outcome string) {
	if m == nil {
		return
	}
	m.listRequests.WithLabelValues(outcome).Inc()
}

// ObserveStore records how long a store operation took since start.
func (m *Metrics) ObserveStore(op string, start time.Time) {
	if m == nil {
		return
	}
	m.storeLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Routes mounts GET /metrics.
func (m *Metrics) Routes(router fiber.Router) {
	if m == nil {
		return
	}

	handler := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	router.Get("/metrics", adaptor.HTTPHandler(handler))
}
