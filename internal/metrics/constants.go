package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "gachabox_http_requests_total"
	MetricNameHTTPRequestDuration  = "gachabox_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "gachabox_http_requests_in_flight"
)

// Business metric names
const (
	MetricNameRollsTotal             = "gachabox_rolls_total"
	MetricNameRollFailures           = "gachabox_roll_failures_total"
	MetricNameCoinsSpent             = "gachabox_coins_spent_total"
	MetricNameCoinsRewarded          = "gachabox_coins_rewarded_total"
	MetricNameAchievementsCompleted  = "gachabox_achievements_completed_total"
	MetricNameAchievementsClaimed    = "gachabox_achievements_claimed_total"
	MetricNameRuleEvaluationFailures = "gachabox_rule_evaluation_failures_total"
)

// Storage metric names
const (
	MetricNameTxConflicts  = "gachabox_tx_conflicts_total"
	MetricNameCatalogCache = "gachabox_catalog_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextRollsTotal             = "Total number of successful rolls by box and rarity tier"
	HelpTextRollFailures           = "Total number of failed rolls by reason"
	HelpTextCoinsSpent             = "Total coins spent on rolls"
	HelpTextCoinsRewarded          = "Total coins granted by achievement claims"
	HelpTextAchievementsCompleted  = "Total number of achievements completed"
	HelpTextAchievementsClaimed    = "Total number of achievement rewards claimed"
	HelpTextRuleEvaluationFailures = "Total number of achievement rules that failed to evaluate"

	HelpTextTxConflicts  = "Total number of storage transaction conflicts by operation and outcome"
	HelpTextCatalogCache = "Catalog cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelBox         = "box"
	LabelRarity      = "rarity"
	LabelReason      = "reason"
	LabelAchievement = "achievement"
	LabelOperation   = "operation"
	LabelOutcome     = "outcome"
	LabelResult      = "result"
)

// Label values
const (
	OutcomeRetried   = "retried"
	OutcomeExhausted = "exhausted"

	ResultHit  = "hit"
	ResultMiss = "miss"

	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines histogram buckets for HTTP request latency (in seconds)
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
