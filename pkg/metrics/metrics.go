package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик front desk процесса
// Все методы безопасны для nil-получателя: при выключенных метриках компоненты получают nil
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	backendCallsTotal   *prometheus.CounterVec
	backendCallDuration *prometheus.HistogramVec

	bookingSubmissionsTotal *prometheus.CounterVec
	staleSchedulesTotal     prometheus.Counter
	seedRequestsTotal       *prometheus.CounterVec
}

// New создает метрики в собственном реестре с константной меткой service
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: reg,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "frontdesk",
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total HTTP requests handled by the front desk",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "frontdesk",
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "Latency of HTTP requests handled by the front desk",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		backendCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "frontdesk",
			Subsystem:   "backend",
			Name:        "calls_total",
			Help:        "Total calls to the barbershop backend",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),
		backendCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "frontdesk",
			Subsystem:   "backend",
			Name:        "call_duration_seconds",
			Help:        "Latency of calls to the barbershop backend",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		bookingSubmissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "frontdesk",
			Subsystem:   "booking",
			Name:        "submissions_total",
			Help:        "Booking submissions by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		staleSchedulesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "frontdesk",
			Subsystem:   "schedule",
			Name:        "stale_responses_total",
			Help:        "Schedule responses discarded because a newer date was requested",
			ConstLabels: constLabels,
		}),
		seedRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "frontdesk",
			Subsystem:   "bootstrap",
			Name:        "seed_requests_total",
			Help:        "Seed requests issued by the bootstrap check",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.backendCallsTotal,
		m.backendCallDuration,
		m.bookingSubmissionsTotal,
		m.staleSchedulesTotal,
		m.seedRequestsTotal,
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) ObserveBackendCall(operation, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.backendCallsTotal.WithLabelValues(operation, outcome).Inc()
	m.backendCallDuration.WithLabelValues(operation).Observe(seconds)
}

func (m *Metrics) ObserveBookingSubmission(outcome string) {
	if m == nil {
		return
	}
	m.bookingSubmissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveStaleSchedule() {
	if m == nil {
		return
	}
	m.staleSchedulesTotal.Inc()
}

func (m *Metrics) ObserveSeedRequest(outcome string) {
	if m == nil {
		return
	}
	m.seedRequestsTotal.WithLabelValues(outcome).Inc()
}
