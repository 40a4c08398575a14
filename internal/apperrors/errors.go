package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that the operation is not permitted in the resource's current status.
var ErrInvalidState = errors.New("invalid state")

// ErrRetryable indicates a transient store failure (timeout, lost connection, serialization conflict).
// Reads may be retried; writes are left to the caller.
var ErrRetryable = errors.New("temporarily unavailable")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrUnauthorized indicates a missing or invalid caller identity.
var ErrUnauthorized = errors.New("unauthorized")

// AppError wraps an infrastructure failure with an HTTP-ish status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError wraps ErrNotFound with a message.
func NewNotFoundError(message string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, message)
}

// OpError records the attempted operation and the entity it targeted.
// It unwraps to both its Kind sentinel and the underlying cause, so
// errors.Is works against either.
type OpError struct {
	Op       string
	EntityID string
	Kind     error
	Reason   string
	Err      error
}

func (e *OpError) Error() string {
	msg := e.Op
	if e.EntityID != "" {
		msg += " " + e.EntityID
	}
	if e.Kind != nil {
		msg += ": " + e.Kind.Error()
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OpError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewValidationError reports bad input for op on entityID.
func NewValidationError(op, entityID, reason string) error {
	return &OpError{Op: op, EntityID: entityID, Kind: ErrValidation, Reason: reason}
}

// NewInvalidStateError reports that op is not allowed in the entity's current status.
func NewInvalidStateError(op, entityID, reason string) error {
	return &OpError{Op: op, EntityID: entityID, Kind: ErrInvalidState, Reason: reason}
}

// NewOpNotFoundError reports that entityID could not be resolved during op.
func NewOpNotFoundError(op, entityID, reason string) error {
	return &OpError{Op: op, EntityID: entityID, Kind: ErrNotFound, Reason: reason}
}

// NewRetryableError reports a transient failure of op on entityID.
func NewRetryableError(op, entityID string, err error) error {
	return &OpError{Op: op, EntityID: entityID, Kind: ErrRetryable, Err: err}
}

// NewInternalError reports an unexpected failure of op on entityID.
func NewInternalError(op, entityID string, err error) error {
	return &OpError{Op: op, EntityID: entityID, Kind: ErrInternal, Err: err}
}

// IsRetryable reports whether err is safe to retry for idempotent reads.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrRetryable)
}
