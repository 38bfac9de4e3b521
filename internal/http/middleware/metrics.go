package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	leadsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_created_total",
			Help: "Total number of leads captured, by priority tier",
		},
		[]string{"priority"},
	)

	quotesSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "quote_calculations_saved_total",
			Help: "Total number of quote calculations persisted",
		},
	)

	contactSubmissions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions",
		},
	)
)

// Metrics records request counts and latencies for every route
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

// RecordLeadCreated increments the lead counter for a priority tier
func RecordLeadCreated(priority string) {
	leadsCreated.WithLabelValues(priority).Inc()
}

// RecordQuoteSaved increments the persisted-quote counter
func RecordQuoteSaved() {
	quotesSaved.Inc()
}

// RecordContactSubmission increments the contact-form counter
func RecordContactSubmission() {
	contactSubmissions.Inc()
}
