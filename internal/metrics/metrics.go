package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Provider interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncSentimentFallbacks()
	IncStoreFallbacks()
}

type PrometheusProvider struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	sentimentFallbacks prometheus.Counter
	storeFallbacks     prometheus.Counter
}

func NewProvider(enabled bool) Provider {
	if !enabled {
		return &noopProvider{}
	}

	return &PrometheusProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "moodplay_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "moodplay_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		sentimentFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moodplay_sentiment_fallbacks_total",
			Help: "Classifications answered by the keyword fallback",
		}),

		storeFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "moodplay_store_fallbacks_total",
			Help: "Watchlist operations answered by the in-memory fallback",
		}),
	}
}

func (m *PrometheusProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *PrometheusProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *PrometheusProvider) IncSentimentFallbacks() {
	m.sentimentFallbacks.Inc()
}

func (m *PrometheusProvider) IncStoreFallbacks() {
	m.storeFallbacks.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

type noopProvider struct{}

func (n *noopProvider) IncRequestsTotal(string, int)                  {}
func (n *noopProvider) ObserveRequestDuration(string, time.Duration) {}
func (n *noopProvider) IncSentimentFallbacks()                       {}
func (n *noopProvider) IncStoreFallbacks()                           {}
