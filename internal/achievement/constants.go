package achievement

// Operation names for retry metrics and logs, span names for tracing
const (
	OpClaim = "claim"

	SpanEvaluate = "achievement.Evaluate"
	SpanClaim    = "achievement.Claim"
)

// Default windows for the opening-pulls rules
const (
	DefaultLuckyStartWindow   = 10
	DefaultQuantumStartWindow = 5
)

// Rule tiers
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// Error messages
const (
	ErrMsgUserIDRequired        = "user id is required"
	ErrMsgAchievementIDRequired = "achievement id is required"
	ErrMsgEmptyRuleID           = "rule id is required"
	ErrMsgUnknownRuleType       = "unknown rule type"
	ErrMsgInvalidRequirement    = "requirement must be at least 1"
	ErrMsgNegativeReward        = "reward must not be negative"
	ErrMsgEmptyCatalog          = "achievement catalog is empty"
	ErrMsgFailedBeginTx         = "failed to begin transaction"
	ErrMsgFailedLoadStats       = "failed to load user statistics"
	ErrMsgFailedLoadProgress    = "failed to load achievement progress"
	ErrMsgFailedCredit          = "failed to credit reward"
	ErrMsgFailedMarkClaimed     = "failed to mark reward claimed"
	ErrMsgFailedCommit          = "failed to commit claim"
)

// Log messages
const (
	LogMsgAchievementCompleted = "Achievement completed"
	LogMsgRuleEvaluationFailed = "Achievement rule evaluation failed"
	LogMsgRewardClaimed        = "Achievement reward claimed"
	LogMsgCatalogLoaded        = "Achievement catalog loaded"
)
