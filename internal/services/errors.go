package services

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Error kinds. Every error returned by the services matches exactly one of them with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("account not authorized to modify this message")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal service error")
)

// Validation errors
var (
	ErrBlankUsername      = fmt.Errorf("%w: username cannot be blank", ErrValidation)
	ErrEmptyPassword      = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrPasswordTooShort   = fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, minPasswordLength)
	ErrUsernameExists     = fmt.Errorf("%w: username already exists", ErrValidation)
	ErrInvalidAccountID   = fmt.Errorf("%w: account id is required", ErrValidation)
	ErrAccountRequired    = fmt.Errorf("%w: account must exist when posting a message", ErrValidation)
	ErrEmptyMessageText   = fmt.Errorf("%w: message text cannot be empty", ErrValidation)
	ErrMessageTextTooLong = fmt.Errorf("%w: message text cannot exceed %d characters", ErrValidation, maxMessageLength)
)

// ErrMessageNotFound is returned when a message required by an operation does not exist.
var ErrMessageNotFound = fmt.Errorf("message %w", ErrNotFound)

// ServiceError wraps a persistence failure. Its message does not expose the cause,
// which stays reachable through errors.Is / errors.As for diagnostics.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	return e.Op + ": " + ErrInternal.Error()
}

func (e *ServiceError) Unwrap() []error {
	return []error{ErrInternal, e.Err}
}

// internalError logs the cause in full and returns it wrapped in a ServiceError.
func internalError(log *zap.SugaredLogger, op string, err error) error {
	log.Errorw("persistence failure", "op", op, "error", err)
	return &ServiceError{Op: op, Err: err}
}
