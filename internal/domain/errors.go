package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNotFound               = "not found"
	ErrMsgBoxNotFound            = "box not found"
	ErrMsgUserNotFound           = "user not found"
	ErrMsgItemNotFound           = "item not found"
	ErrMsgProgressNotFound       = "achievement progress not found"
	ErrMsgAchievementNotFound    = "achievement not found"
	ErrMsgInsufficientFunds      = "insufficient funds"
	ErrMsgEmptyBoxPool           = "box has no items"
	ErrMsgInvalidConfiguration   = "invalid configuration"
	ErrMsgNotCompleted           = "achievement not completed"
	ErrMsgAlreadyClaimed         = "reward already claimed"
	ErrMsgTransactionConflict    = "transaction conflict"
	ErrMsgStorageUnavailable     = "storage unavailable"
	ErrMsgInvalidInput           = "invalid input"
	ErrMsgTxClosed               = "tx is closed"
	ErrMsgInsufficientFundsFmt   = "insufficient funds: balance %d, required %d"
	ErrMsgDuplicateAchievementID = "duplicate achievement id"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNotFound is the parent of every "missing record" error.
	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrBoxNotFound         = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgBoxNotFound)
	ErrUserNotFound        = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgUserNotFound)
	ErrItemNotFound        = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgItemNotFound)
	ErrProgressNotFound    = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgProgressNotFound)
	ErrAchievementNotFound = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgAchievementNotFound)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrEmptyBoxPool      = errors.New(ErrMsgEmptyBoxPool)

	// Configuration errors (zero or negative total weight, malformed rules)
	ErrInvalidConfiguration = errors.New(ErrMsgInvalidConfiguration)

	// Achievement claim errors
	ErrNotCompleted   = errors.New(ErrMsgNotCompleted)
	ErrAlreadyClaimed = errors.New(ErrMsgAlreadyClaimed)

	// Storage errors. ErrTransactionConflict is retried by the services.
	ErrTransactionConflict = errors.New(ErrMsgTransactionConflict)
	ErrStorageUnavailable  = errors.New(ErrMsgStorageUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// InsufficientFundsError carries the numbers needed to tell the user how short they are.
type InsufficientFundsError struct {
	Balance  int
	Required int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf(ErrMsgInsufficientFundsFmt, e.Balance, e.Required)
}

// Is lets errors.Is(err, ErrInsufficientFunds) match.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
