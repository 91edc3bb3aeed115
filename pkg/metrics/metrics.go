package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
	PropertiesIngestedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "properties_ingested_total",
			Help: "Properties accepted into a snapshot, by ingestion mode",
		},
		[]string{"mode"},
	)
	DuplicatesDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "properties_duplicates_dropped_total",
			Help: "Properties dropped by the deduplicator, by match kind",
		},
		[]string{"reason"},
	)
	SnapshotWritesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "snapshot_writes_total",
			Help: "Successful snapshot replacements",
		},
	)
	UpstreamScrapeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "upstream_scrape_duration_seconds",
			Help:    "Duration of upstream scraper calls",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)
	CacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "redis_cache_hits_total",
			Help: "Total number of snapshot cache hits",
		},
	)
	CacheMissesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "redis_cache_misses_total",
			Help: "Total number of snapshot cache misses",
		},
	)
	RedisOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_operation_duration_seconds",
			Help:    "Duration of Redis operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	RedisErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_errors_total",
			Help: "Total number of Redis errors",
		},
		[]string{"operation"},
	)
	ContactEmailsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_emails_total",
			Help: "Contact form relays, by outcome",
		},
		[]string{"outcome"},
	)
)

func Init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(PropertiesIngestedTotal)
	prometheus.MustRegister(DuplicatesDroppedTotal)
	prometheus.MustRegister(SnapshotWritesTotal)
	prometheus.MustRegister(UpstreamScrapeDuration)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(RedisOperationDuration)
	prometheus.MustRegister(RedisErrorsTotal)
	prometheus.MustRegister(ContactEmailsTotal)
}
