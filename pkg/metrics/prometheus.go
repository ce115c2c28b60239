// Package metrics provides Prometheus metrics for the levelgate decode service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the levelgate service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Decode metrics - the business core
	levelEntriesDecoded prometheus.Counter
	hofRowsDecoded      prometheus.Counter
	decodeDuration      *prometheus.HistogramVec

	// Upstream transport metrics
	fetchDuration prometheus.Histogram
	fetchErrors   prometheus.Counter

	// Cache metrics
	cacheHits    prometheus.Counter
	cacheMisses  prometheus.Counter
	cachedPages  prometheus.Gauge
	refreshRuns  prometheus.Counter
	refreshLast  prometheus.Gauge
	refreshFails prometheus.Counter

	// HTTP surface metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "levelgate",
		subsystem:        "decoder",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.levelEntriesDecoded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "level_entries_decoded_total",
		Help:      "Total number of level entries decoded from upstream bodies",
	})

	m.hofRowsDecoded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "hof_rows_decoded_total",
		Help:      "Total number of hall-of-fame rows decoded from upstream bodies",
	})

	m.decodeDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "decode_duration_milliseconds",
			Help:      "Decode duration in milliseconds by payload format",
			Buckets:   m.histogramBuckets,
		},
		[]string{"format"},
	)

	m.fetchDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_duration_milliseconds",
		Help:      "Upstream fetch duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.fetchErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fetch_errors_total",
		Help:      "Total number of upstream fetch failures",
	})

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_hits_total",
		Help:      "Total number of decode cache hits",
	})

	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_misses_total",
		Help:      "Total number of decode cache misses",
	})

	m.cachedPages = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cached_pages",
		Help:      "Number of level pages currently cached",
	})

	m.refreshRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_runs_total",
		Help:      "Total number of background refresh cycles",
	})

	m.refreshLast = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_last_unix",
		Help:      "Unix timestamp of the last completed refresh cycle",
	})

	m.refreshFails = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_failures_total",
		Help:      "Total number of failed refresh jobs",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// RecordLevelEntriesDecoded adds n to the decoded level entries counter.
func RecordLevelEntriesDecoded(n int) {
	globalManager.levelEntriesDecoded.Add(float64(n))
}

// RecordHofRowsDecoded adds n to the decoded hall-of-fame rows counter.
func RecordHofRowsDecoded(n int) {
	globalManager.hofRowsDecoded.Add(float64(n))
}

// RecordDecodeDuration records decode duration in milliseconds for a format.
func RecordDecodeDuration(format string, latencyMs float64) {
	globalManager.decodeDuration.WithLabelValues(format).Observe(latencyMs)
}

// RecordFetchDuration records upstream fetch duration in milliseconds.
func RecordFetchDuration(latencyMs float64) {
	globalManager.fetchDuration.Observe(latencyMs)
}

// RecordFetchError increments the upstream fetch failure counter.
func RecordFetchError() {
	globalManager.fetchErrors.Inc()
}

// RecordCacheHit increments the cache hit counter.
func RecordCacheHit() {
	globalManager.cacheHits.Inc()
}

// RecordCacheMiss increments the cache miss counter.
func RecordCacheMiss() {
	globalManager.cacheMisses.Inc()
}

// UpdateCachedPages sets the number of currently cached level pages.
func UpdateCachedPages(count int) {
	globalManager.cachedPages.Set(float64(count))
}

// RecordRefreshRun increments the refresh cycle counter.
func RecordRefreshRun() {
	globalManager.refreshRuns.Inc()
}

// UpdateRefreshLastUnix sets the timestamp of the last completed refresh.
func UpdateRefreshLastUnix(ts int64) {
	globalManager.refreshLast.Set(float64(ts))
}

// RecordRefreshFailure increments the failed refresh job counter.
func RecordRefreshFailure() {
	globalManager.refreshFails.Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordErrorByEndpoint records an error for a specific endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the current memory usage.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
