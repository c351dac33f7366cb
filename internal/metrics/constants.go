package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Price cache metric names
const (
	MetricNameCacheRebuilds        = "price_cache_rebuilds_total"
	MetricNameCacheRebuildDuration = "price_cache_rebuild_duration_seconds"
	MetricNameCacheEntries         = "price_cache_entries"
	MetricNamePriceLookups         = "price_lookups_total"
	MetricNameDayRollovers         = "day_rollovers_total"
)

// Calculator metric names
const (
	MetricNameCropsRegistered = "crops_registered"
	MetricNameRankingsTotal   = "crop_rankings_total"
	MetricNameRankingDuration = "crop_ranking_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Price cache metric help text
const (
	HelpTextCacheRebuilds        = "Total number of price cache rebuilds"
	HelpTextCacheRebuildDuration = "Price cache rebuild latency in seconds"
	HelpTextCacheEntries         = "Number of entries in each price cache after the last rebuild"
	HelpTextPriceLookups         = "Total number of seed price lookups"
	HelpTextDayRollovers         = "Total number of processed day rollovers"
)

// Calculator metric help text
const (
	HelpTextCropsRegistered = "Number of plants registered on the calculator"
	HelpTextRankingsTotal   = "Total number of crop ranking computations"
	HelpTextRankingDuration = "Crop ranking latency in seconds"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelCache  = "cache"
	LabelResult = "result"
	LabelKind   = "kind"
)

// Label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultHit     = "hit"
	ResultMiss    = "miss"
)

// ============================================================================
// Buckets
// ============================================================================

var (
	HTTPLatencyBuckets    = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	ComputeLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}
)
