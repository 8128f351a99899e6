package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a specific error type
type ErrorCode string

const (
	// Content errors
	ErrUnknownItem   ErrorCode = "UNKNOWN_ITEM"
	ErrUnknownEnemy  ErrorCode = "UNKNOWN_ENEMY"
	ErrUnknownCurse  ErrorCode = "UNKNOWN_CURSE"
	ErrInvalidRules  ErrorCode = "INVALID_RULES"
	ErrDeckExhausted ErrorCode = "DECK_EXHAUSTED"

	// State errors
	ErrInvalidState  ErrorCode = "INVALID_STATE"
	ErrInvalidAction ErrorCode = "INVALID_ACTION"
	ErrBattleOver    ErrorCode = "BATTLE_OVER"

	// Persistence errors
	ErrRunNotFound    ErrorCode = "RUN_NOT_FOUND"
	ErrReplayDiverged ErrorCode = "REPLAY_DIVERGED"
	ErrDatabaseError  ErrorCode = "DATABASE_ERROR"

	// System errors
	ErrInternalError ErrorCode = "INTERNAL_ERROR"
	ErrConfigError   ErrorCode = "CONFIG_ERROR"
)

// GameError is raised for programmer and content errors: unknown ids,
// broken rules, an exhausted deck. These are never silently defaulted.
type GameError struct {
	Code    ErrorCode
	Message string
	Err     error // Underlying error, if any
}

// Error implements the error interface
func (e *GameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *GameError) Unwrap() error {
	return e.Err
}

// NewGameError creates a new GameError
func NewGameError(code ErrorCode, message string) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error in a GameError
func WrapError(code ErrorCode, message string, err error) *GameError {
	return &GameError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsGameError checks if an error is a GameError and has a specific code
func IsGameError(err error, code ErrorCode) bool {
	var gameErr *GameError
	if err == nil {
		return false
	}
	if ok := As(err, &gameErr); !ok {
		return false
	}
	return gameErr.Code == code
}

// As finds the first GameError in err's chain
func As(err error, target **GameError) bool {
	if target == nil {
		return false
	}
	return errors.As(err, target)
}

// ActionResult reports expected game-flow outcomes such as an unaffordable
// purchase or an unavailable action. Callers probe legality with it, so it
// is returned rather than raised.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Ok builds a successful result
func Ok(format string, args ...interface{}) ActionResult {
	return ActionResult{Success: true, Message: fmt.Sprintf(format, args...)}
}

// Fail builds a failed result
func Fail(format string, args ...interface{}) ActionResult {
	return ActionResult{Success: false, Message: fmt.Sprintf(format, args...)}
}
