package postgres

// PostgreSQL error codes mapped to domain errors
const (
	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"
	pgCodeUniqueViolation      = "23505"
)

// Error Messages
const (
	ErrMsgFailedToBeginTx       = "failed to begin transaction"
	ErrMsgFailedToCommitTx      = "failed to commit transaction"
	ErrMsgFailedToGetBox        = "failed to get box"
	ErrMsgFailedToListBoxes     = "failed to list boxes"
	ErrMsgFailedToGetItems      = "failed to get items"
	ErrMsgFailedToUpsertBox     = "failed to upsert box"
	ErrMsgFailedToUpsertItem    = "failed to upsert item"
	ErrMsgFailedToCreateUser    = "failed to create user"
	ErrMsgFailedToGetUser       = "failed to get user"
	ErrMsgFailedToGetBalance    = "failed to get balance"
	ErrMsgFailedToUpdateBalance = "failed to update balance"
	ErrMsgFailedToGetInventory  = "failed to get inventory"
	ErrMsgFailedToSaveInventory = "failed to save inventory entry"
	ErrMsgFailedToGetPulls      = "failed to get pulls"
	ErrMsgFailedToAppendPull    = "failed to append pull"
	ErrMsgFailedToGetProgress   = "failed to get achievement progress"
	ErrMsgFailedToSaveProgress  = "failed to save achievement progress"
	ErrMsgFailedToMarkClaimed   = "failed to mark achievement claimed"
)
