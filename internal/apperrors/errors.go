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

// ErrConflict indicates the requested state transition is not allowed.
var ErrConflict = errors.New("conflicting state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrForbidden indicates the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
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

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Titled is implemented by user-facing validation errors that carry a short
// display title in addition to the message.
type Titled interface {
	Title() string
}

// ShiftOverlapError is returned when a submitted closing shift for the same
// user already covers part of the requested period.
type ShiftOverlapError struct {
	User string
}

func (e *ShiftOverlapError) Error() string {
	return fmt.Sprintf("a closing shift already exists for %s in the selected period", e.User)
}

func (e *ShiftOverlapError) Title() string { return "Invalid Period" }

func (e *ShiftOverlapError) Unwrap() error { return ErrValidation }

// OpeningShiftNotOpenError is returned when a closing shift references an
// opening shift that is no longer in Open status.
type OpeningShiftNotOpenError struct {
	OpeningShiftID string
}

func (e *OpeningShiftNotOpenError) Error() string {
	return fmt.Sprintf("opening shift %s is not open", e.OpeningShiftID)
}

func (e *OpeningShiftNotOpenError) Title() string { return "Invalid Opening Entry" }

func (e *OpeningShiftNotOpenError) Unwrap() error { return ErrValidation }
