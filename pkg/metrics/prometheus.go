package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	upstreamRequests  *prometheus.CounterVec
	sentimentFallback *prometheus.CounterVec
	lastPrice         *prometheus.GaugeVec
	latency           *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		upstreamRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traderpulse_upstream_requests_total",
				Help: "Total number of upstream market data requests",
			},
			[]string{"provider", "op", "outcome"},
		),
		sentimentFallback: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "traderpulse_sentiment_fallback_total",
				Help: "Total number of sentiment analyses degraded to the fallback result",
			},
			[]string{"reason"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "traderpulse_last_price",
				Help: "Last fetched price for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "traderpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordUpstreamRequest records an upstream request by provider, op, and outcome.
func (r *Recorder) RecordUpstreamRequest(provider, op, outcome string) {
	r.upstreamRequests.WithLabelValues(provider, op, outcome).Inc()
}

// RecordSentimentFallback records a degraded sentiment result.
func (r *Recorder) RecordSentimentFallback(reason string) {
	r.sentimentFallback.WithLabelValues(reason).Inc()
}

// RecordLastPrice records the last price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
