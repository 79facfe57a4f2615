// internal/api/metrics.go
package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "diet_client_requests_total",
		Help: "Outgoing API requests by operation and response code.",
	}, []string{"operation", "code"})

	retriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "diet_client_retries_total",
		Help: "Retries issued after network-level failures.",
	}, []string{"operation"})

	loginFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "diet_client_login_fallbacks_total",
		Help: "Login attempts re-sent form-encoded after a 415/400 response.",
	})
)

// RecordRetry counts a network-error retry for the given operation.
func RecordRetry(operation string) {
	retriesTotal.WithLabelValues(operation).Inc()
}

// RecordLoginFallback counts a form-encoded login fallback attempt.
func RecordLoginFallback() {
	loginFallbacksTotal.Inc()
}
