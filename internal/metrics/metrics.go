package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Price Cache Metrics
var (
	CacheRebuilds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheRebuilds,
			Help: HelpTextCacheRebuilds,
		},
		[]string{LabelCache, LabelResult},
	)

	CacheRebuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCacheRebuildDuration,
			Help:    HelpTextCacheRebuildDuration,
			Buckets: ComputeLatencyBuckets,
		},
		[]string{LabelCache},
	)

	CacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCacheEntries,
			Help: HelpTextCacheEntries,
		},
		[]string{LabelCache},
	)

	PriceLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePriceLookups,
			Help: HelpTextPriceLookups,
		},
		[]string{LabelKind, LabelResult},
	)

	DayRollovers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDayRollovers,
			Help: HelpTextDayRollovers,
		},
	)
)

// Calculator Metrics
var (
	CropsRegistered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCropsRegistered,
			Help: HelpTextCropsRegistered,
		},
	)

	RankingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRankingsTotal,
			Help: HelpTextRankingsTotal,
		},
		[]string{LabelResult},
	)

	RankingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRankingDuration,
			Help:    HelpTextRankingDuration,
			Buckets: ComputeLatencyBuckets,
		},
	)
)
