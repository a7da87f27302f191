package gacha

// Operation names for retry metrics and logs, span names for tracing
const (
	OpRoll = "roll"

	SpanRoll = "gacha.Roll"
)

// Roll failure reasons (metrics label values)
const (
	ReasonBoxNotFound       = "box_not_found"
	ReasonUserNotFound      = "user_not_found"
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonEmptyPool         = "empty_pool"
	ReasonInvalidConfig     = "invalid_config"
	ReasonConflict          = "conflict"
	ReasonInternal          = "internal"
)

// Error messages
const (
	ErrMsgNoItems          = "item list is empty"
	ErrMsgInvalidWeight    = "item weight must be a finite non-negative number"
	ErrMsgZeroTotalWeight  = "total weight must be positive"
	ErrMsgUserIDRequired   = "user id is required"
	ErrMsgFailedBeginTx    = "failed to begin transaction"
	ErrMsgFailedGetBalance = "failed to get balance"
	ErrMsgFailedDebit      = "failed to debit coins"
	ErrMsgFailedInventory  = "failed to update inventory"
	ErrMsgFailedAppendPull = "failed to record pull"
	ErrMsgFailedCommit     = "failed to commit roll"
	ErrMsgFailedGetItems   = "failed to get box items"
)

// Log messages
const (
	LogMsgRollCompleted = "Roll completed"
	LogMsgRollFailed    = "Roll failed"
)
