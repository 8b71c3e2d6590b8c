// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LicenseDecisionAllowed labels guard checks that admitted the user
const LicenseDecisionAllowed = "allowed"

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "eduman_http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eduman_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eduman_http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	licenseDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eduman_license_guard_decisions_total",
			Help: "License guard decisions by outcome.",
		},
		[]string{"result"},
	)

	registerOnce sync.Once
)

// Init registers the collectors with the default registry; repeated calls are no-ops
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpInFlight, httpRequestsTotal, httpRequestDuration, licenseDecisions)
	})
}

// Handler serves the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordLicenseDecision counts one guard outcome: LicenseDecisionAllowed or a denial reason
func RecordLicenseDecision(result string) {
	licenseDecisions.WithLabelValues(result).Inc()
}

// LicenseDecisionCounter returns the counter child for result
func LicenseDecisionCounter(result string) prometheus.Counter {
	return licenseDecisions.WithLabelValues(result)
}

// Middleware records request count, latency and in-flight gauge per matched route
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		httpInFlight.Inc()
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		httpRequestDuration.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		httpInFlight.Dec()
	}
}
