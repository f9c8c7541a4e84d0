package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP request metrics
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Database metrics
	dbQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"query_type", "table"},
	)

	// Billing metrics
	billsGeneratedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bills_generated_total",
			Help: "Total number of bills generated, by payment status",
		},
		[]string{"status"},
	)

	billTotalAmount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bill_total_amount",
			Help:    "Distribution of generated bill totals",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 50000},
		},
	)

	// Record mutation metrics
	recordsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_created_total",
			Help: "Total number of records created, by module",
		},
		[]string{"module"},
	)
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		dbQueryDuration,
		billsGeneratedTotal,
		billTotalAmount,
		recordsCreatedTotal,
	)
}

// RecordHTTPRequest records metrics for an HTTP request
func RecordHTTPRequest(method, endpoint, statusCode string, durationSeconds float64) {
	httpRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(durationSeconds)
}

// RecordDBQuery records metrics for a database query
func RecordDBQuery(queryType, table string, durationSeconds float64) {
	dbQueryDuration.WithLabelValues(queryType, table).Observe(durationSeconds)
}

// RecordBillGenerated records a generated bill and its total
func RecordBillGenerated(status string, totalAmount float64) {
	billsGeneratedTotal.WithLabelValues(status).Inc()
	billTotalAmount.Observe(totalAmount)
}

// RecordCreated records a record creation for the given module
func RecordCreated(module string) {
	recordsCreatedTotal.WithLabelValues(module).Inc()
}

// MetricsHandler returns the Prometheus metrics HTTP handler
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
