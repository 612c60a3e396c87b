package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so tests and multiple apps in one process do not collide.
type Metrics struct {
	registry        *prometheus.Registry
	bookingOutcomes *prometheus.CounterVec
	quotaFailOpen   *prometheus.CounterVec
	sourceFallback  *prometheus.CounterVec
	reconnectNotice *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

func NewMetrics(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	constLabels := prometheus.Labels{"service": serviceName}
	m := &Metrics{
		registry: reg,
		bookingOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "agenda_booking_outcomes_total",
			Help:        "Booking submissions by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		quotaFailOpen: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "agenda_quota_fail_open_total",
			Help:        "Quota checks allowed because usage could not be counted.",
			ConstLabels: constLabels,
		}, []string{"slug"}),
		sourceFallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "agenda_availability_source_fallback_total",
			Help:        "Availability checks answered from local storage after the calendar provider failed.",
			ConstLabels: constLabels,
		}, []string{"slug"}),
		reconnectNotice: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "agenda_reconnect_notices_total",
			Help:        "Calendar reconnection notices sent.",
			ConstLabels: constLabels,
		}, []string{"slug"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "agenda_http_requests_total",
			Help:        "HTTP requests by route and status.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "agenda_http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.bookingOutcomes, m.quotaFailOpen, m.sourceFallback, m.reconnectNotice, m.httpRequests, m.httpDuration)
	return m
}

func (m *Metrics) BookingOutcome(outcome string) {
	m.bookingOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) QuotaFailOpen(slug string) {
	m.quotaFailOpen.WithLabelValues(slug).Inc()
}

func (m *Metrics) SourceFallback(slug string) {
	m.sourceFallback.WithLabelValues(slug).Inc()
}

func (m *Metrics) ReconnectNotice(slug string) {
	m.reconnectNotice.WithLabelValues(slug).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
