package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgUnavailableError     = "Server is temporarily unavailable. Please try again later."
	ErrMsgConflictError        = "Too many concurrent requests for this user. Please try again."
	ErrMsgInvalidInputError    = "Invalid request. Please check your inputs."
	ErrMsgInvalidConfigError   = "This box is misconfigured. Please contact support."
	ErrMsgUserNotFoundError    = "User not found"
	ErrMsgBoxNotFoundError     = "Box not found"
	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgNotEnoughCoinsError  = "Not enough coins"
	ErrMsgEmptyBoxError        = "This box has no items"
	ErrMsgAchievementNotFound  = "Achievement not found"
	ErrMsgProgressNotFound     = "No progress recorded for this achievement yet"
	ErrMsgNotCompletedError    = "Achievement is not completed yet"
	ErrMsgAlreadyClaimedError  = "Reward already claimed"
	ErrMsgResourceNotFoundErr  = "Resource not found"
	ErrMsgEvaluationIncomplete = "Some achievements could not be evaluated"
)

// Health messages
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgStorageUnreachable   = "storage connection failed"
)
