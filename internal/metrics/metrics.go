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

// Gacha Metrics
var (
	RollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollsTotal,
			Help: HelpTextRollsTotal,
		},
		[]string{LabelBox, LabelRarity},
	)

	RollFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRollFailures,
			Help: HelpTextRollFailures,
		},
		[]string{LabelReason},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)
)

// Achievement Metrics
var (
	CoinsRewarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsRewarded,
			Help: HelpTextCoinsRewarded,
		},
	)

	AchievementsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsCompleted,
			Help: HelpTextAchievementsCompleted,
		},
		[]string{LabelAchievement},
	)

	AchievementsClaimed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsClaimed,
			Help: HelpTextAchievementsClaimed,
		},
		[]string{LabelAchievement},
	)

	RuleEvaluationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRuleEvaluationFailures,
			Help: HelpTextRuleEvaluationFailures,
		},
		[]string{LabelAchievement},
	)
)

// Storage Metrics
var (
	TxConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTxConflicts,
			Help: HelpTextTxConflicts,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCache,
			Help: HelpTextCatalogCache,
		},
		[]string{LabelResult},
	)
)
