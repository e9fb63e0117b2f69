package service

import (
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService instruments the console's backend traffic, catalog cache and
// upload pipeline, and provides a lightweight snapshot for diagnostics.
type MetricsService struct {
	registry       *prometheus.Registry
	handler        http.Handler
	fetchDuration  *prometheus.HistogramVec
	fetchTotal     *prometheus.CounterVec
	cacheHitRatio  prometheus.Gauge
	cacheHits      prometheus.Counter
	cacheMisses    prometheus.Counter
	uploadDuration prometheus.Observer
	uploadTotal    *prometheus.CounterVec

	cacheHitCount  uint64
	cacheMissCount uint64
	fetchCount     uint64
	uploadCount    uint64
	uploadFailures uint64
}

// MetricsSnapshot aggregates counters for human inspection.
type MetricsSnapshot struct {
	CacheHitRatio float64   `json:"cacheHitRatio"`
	CacheHits     uint64    `json:"cacheHits"`
	CacheMisses   uint64    `json:"cacheMisses"`
	FetchesTotal  uint64    `json:"fetchesTotal"`
	UploadsTotal  uint64    `json:"uploadsTotal"`
	UploadsFailed uint64    `json:"uploadsFailed"`
	Goroutines    int       `json:"goroutines"`
	GeneratedAt   time.Time `json:"generatedAt"`
}

// NewMetricsService registers the console collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	fetchDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cms_fetch_duration_seconds",
		Help:    "Duration of backend fetches in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "outcome"})

	fetchTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cms_fetches_total",
		Help: "Total number of backend fetches",
	}, []string{"operation", "outcome"})

	cacheHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_cache_hit_ratio",
		Help: "Ratio of catalog cache hits to total lookups",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_cache_hits_total",
		Help: "Total catalog cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "catalog_cache_misses_total",
		Help: "Total catalog cache misses",
	})

	uploadDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "media_upload_duration_seconds",
		Help:    "Duration of individual media uploads",
		Buckets: prometheus.DefBuckets,
	})

	uploadTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "media_uploads_total",
		Help: "Total media uploads by outcome",
	}, []string{"outcome"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(fetchDuration, fetchTotal, cacheHitRatio, cacheHits, cacheMisses, uploadDuration, uploadTotal, goroutines)

	return &MetricsService{
		registry:       registry,
		handler:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		fetchDuration:  fetchDuration,
		fetchTotal:     fetchTotal,
		cacheHitRatio:  cacheHitRatio,
		cacheHits:      cacheHits,
		cacheMisses:    cacheMisses,
		uploadDuration: uploadDuration,
		uploadTotal:    uploadTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveFetch records one backend fetch.
func (m *MetricsService) ObserveFetch(operation string, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !success {
		outcome = "error"
	}
	m.fetchDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
	m.fetchTotal.WithLabelValues(operation, outcome).Inc()
	atomic.AddUint64(&m.fetchCount, 1)
}

// RecordCacheLookup records a catalog cache hit or miss and refreshes the ratio.
func (m *MetricsService) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheMisses.Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	if total := hits + misses; total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// ObserveUpload records one media upload attempt.
func (m *MetricsService) ObserveUpload(success bool, duration time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !success {
		outcome = "error"
		atomic.AddUint64(&m.uploadFailures, 1)
	}
	m.uploadDuration.Observe(duration.Seconds())
	m.uploadTotal.WithLabelValues(outcome).Inc()
	atomic.AddUint64(&m.uploadCount, 1)
}

// Snapshot returns aggregated counters.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)

	var ratio float64
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}

	return MetricsSnapshot{
		CacheHitRatio: ratio,
		CacheHits:     hits,
		CacheMisses:   misses,
		FetchesTotal:  atomic.LoadUint64(&m.fetchCount),
		UploadsTotal:  atomic.LoadUint64(&m.uploadCount),
		UploadsFailed: atomic.LoadUint64(&m.uploadFailures),
		Goroutines:    runtime.NumGoroutine(),
		GeneratedAt:   time.Now().UTC(),
	}
}
