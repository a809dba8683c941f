package apperrors

import (
	"errors"
	"fmt"
)

// ErrUnhandledEventType indicates an event arrived whose type has no registered projection.
var ErrUnhandledEventType = errors.New("no projection registered for event type")

// ErrOutOfOrderEvent indicates a lifecycle update arrived before the row it targets was created.
// Retryable: the upstream transport is expected to redeliver in order.
var ErrOutOfOrderEvent = errors.New("event arrived before its parent row exists")

// ErrDuplicateEvent indicates the event has already been applied with identical content.
// Treated as success by callers (idempotent no-op).
var ErrDuplicateEvent = errors.New("event already applied")

// ErrDataIntegrity indicates a keyed row already exists with conflicting content.
// Logged and discarded, never retried.
var ErrDataIntegrity = errors.New("event conflicts with previously projected data")

// ErrInvalidDateFormat indicates a reporting date parameter was not an 8 character yyyyMMdd string.
var ErrInvalidDateFormat = errors.New("date must be in yyyyMMdd format")

// ErrPersistenceUnavailable indicates a transient store failure; retryable.
var ErrPersistenceUnavailable = errors.New("read model store unavailable")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// AppError wraps an underlying error with an HTTP-ish status code and message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// IsRetryable reports whether a projection error should be surfaced to the
// transport for redelivery rather than acknowledged and discarded.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrOutOfOrderEvent) || errors.Is(err, ErrPersistenceUnavailable)
}
