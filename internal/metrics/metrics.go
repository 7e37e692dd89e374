package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Messaging Metrics
	MessagesSent      prometheus.Counter
	MessagesFailed    prometheus.Counter
	InboundMessages   *prometheus.CounterVec
	AutoResponsesSent prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rhbsend_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rhbsend_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "rhbsend_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),

		MessagesSent: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rhbsend_messages_sent_total",
				Help: "Total number of campaign messages delivered to the provider",
			},
		),
		MessagesFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rhbsend_messages_failed_total",
				Help: "Total number of campaign messages that failed to send",
			},
		),
		InboundMessages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rhbsend_inbound_messages_total",
				Help: "Total number of inbound messages by classified keyword",
			},
			[]string{"keyword"},
		),
		AutoResponsesSent: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "rhbsend_auto_responses_sent_total",
				Help: "Total number of automated responses sent",
			},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordMessageSent() {
	m.MessagesSent.Inc()
}

func (m *Metrics) RecordMessageFailed() {
	m.MessagesFailed.Inc()
}

func (m *Metrics) RecordInboundMessage(keyword string) {
	m.InboundMessages.WithLabelValues(keyword).Inc()
}

func (m *Metrics) RecordAutoResponseSent() {
	m.AutoResponsesSent.Inc()
}
