// Package metrics provides Prometheus metrics collection for the advisor API.
// It exports HTTP server metrics plus advisor-specific counters:
//   - http_request_total: Counter with method, path, and status labels
//   - http_request_duration_seconds: Histogram with method and path labels
//   - http_request_in_flight: Gauge for concurrent requests
//   - advisor_assessments_total: Counter of completed advisor runs
//   - advisor_emergency_referrals_total: Counter of runs flagging an emergency
//   - advisor_duration_seconds: Histogram of engine run latency
//
// All metrics are automatically registered with the Prometheus default
// registry during package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	RateLimiterBucketsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "rate_limiter_buckets_total",
			Help: "Total number of rate limiter buckets (IPs seen recently)",
		},
	)

	AssessmentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_assessments_total",
			Help: "Total completed advisor assessments",
		},
	)

	EmergencyReferralsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "advisor_emergency_referrals_total",
			Help: "Total assessments that flagged an emergency referral",
		},
	)

	AdvisorDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "advisor_duration_seconds",
			Help:    "Advisor engine run latency",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025},
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(RateLimiterBucketsTotal)
	prometheus.MustRegister(AssessmentsTotal)
	prometheus.MustRegister(EmergencyReferralsTotal)
	prometheus.MustRegister(AdvisorDuration)
}
