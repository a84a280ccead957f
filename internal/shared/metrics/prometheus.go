package metrics

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	initOnce sync.Once

	// active REST API connections
	activeRESTConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_rest_connections",
			Help: "Number of active REST API connections",
		},
	)

	// response times for REST APIs
	responseTimeRESTAPI = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "restapi_response_time_milliseconds",
			Help:    "REST API response time distributions",
			Buckets: []float64{1, 10, 50, 100, 200, 300, 400, 500, 1000, 3000},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Number of requests processed by REST API
	RESTRequestMetricsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rest_requests_processed_total",
		Help: "The total number of processed REST requests",
	}, []string{"method", "endpoint"})

	// Member records written by the sync service
	MemberRecordsProcessedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "member_records_processed_total",
		Help: "The total number of member records generated and stored",
	})

	// Member records rejected as invalid input
	MemberRecordsSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "member_records_skipped_total",
		Help: "The total number of member records skipped as invalid",
	})

	// Member records that failed on lookup or storage
	MemberRecordsFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "member_records_failed_total",
		Help: "The total number of member records that failed to sync",
	})

	// Contact form submissions by outcome (triggered, disabled)
	ContactSubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "The total number of contact form submissions",
	}, []string{"outcome"})

	// Latency of a whole sync page
	SyncPageLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "member_sync_page_latency_milliseconds",
		Help:    "Latency of member sync page processing",
		Buckets: prometheus.ExponentialBuckets(10, 2, 10),
	})
)

// InitMetrics registers all collectors with the default registry. Safe to call more than once.
func InitMetrics() {
	initOnce.Do(func() {
		prometheus.MustRegister(activeRESTConnections)
		prometheus.MustRegister(responseTimeRESTAPI)
		prometheus.MustRegister(RESTRequestMetricsTotal)
		prometheus.MustRegister(MemberRecordsProcessedTotal)
		prometheus.MustRegister(MemberRecordsSkippedTotal)
		prometheus.MustRegister(MemberRecordsFailedTotal)
		prometheus.MustRegister(ContactSubmissionsTotal)
		prometheus.MustRegister(SyncPageLatency)
	})
}

// Handler exposes the default registry.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// route template keeps label cardinality bounded
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		RESTRequestMetricsTotal.WithLabelValues(c.Request.Method, endpoint).Inc()

		start := time.Now()

		activeRESTConnections.Inc()
		defer activeRESTConnections.Dec()

		c.Next()

		latency := time.Since(start)
		responseTimeRESTAPI.
			WithLabelValues(c.Request.Method, endpoint, statusClass(c.Writer.Status())).
			Observe(float64(latency.Milliseconds()))
	}
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
