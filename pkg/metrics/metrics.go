package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Buckets tuned for page renders in milliseconds up to third-party relay calls of several seconds
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21}

	// HTTP Metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Email relay client metrics
	EmailRelayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "email_relay_request_duration_seconds",
			Help:    "Email relay call duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"template_kind", "status"},
	)

	EmailRelayRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "email_relay_request_total",
			Help: "Total number of email relay calls",
		},
		[]string{"template_kind", "status"},
	)

	// Detached task metrics
	DetachedTasksInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "detached_tasks_in_flight",
			Help: "Number of detached background tasks currently running",
		},
	)

	DetachedTaskTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "detached_task_total",
			Help: "Total number of detached background tasks by outcome",
		},
		[]string{"task", "status"},
	)

	// Business Metrics
	ApplicationSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codecraft_application_submissions_total",
			Help: "Total number of job application submissions",
		},
		[]string{"status"},
	)

	PageViews = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codecraft_page_views_total",
			Help: "Total number of rendered site pages",
		},
		[]string{"page"},
	)

	// Infrastructure Metrics
	GoRoutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// RecordInfrastructureMetrics collects infrastructure metrics until stop is closed
func RecordInfrastructureMetrics(stop <-chan struct{}) {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				var m runtime.MemStats
				runtime.ReadMemStats(&m)

				GoRoutines.Set(float64(runtime.NumGoroutine()))
				HeapAlloc.Set(float64(m.HeapAlloc))
			}
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
