// Package apperror defines the application's error taxonomy.
//
// Services return these typed errors; the HTTP layer maps them to status
// codes with errors.Is. Nothing below the handler layer knows about HTTP.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// AppError carries a sentinel (for errors.Is matching) plus the
// human-readable message that becomes the JSON {"message": ...} body.
type AppError struct {
	Err     error  // sentinel, one of the Err* values above
	Message string // user-visible message
	Field   string // optional: field that caused a validation failure
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports a missing record. The message matches the original
// API's wording: "Skill not found", "Project not found", etc.
func NotFound(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NotFoundMessage reports a missing record with a custom message.
func NotFoundMessage(message string) *AppError {
	return &AppError{Err: ErrNotFound, Message: message}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Conflict reports a uniqueness violation on a single field.
func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

// Unauthorized reports a failed or missing authentication.
func Unauthorized(message string) *AppError {
	return &AppError{Err: ErrUnauthorized, Message: message}
}

// Forbidden reports an operation that is disabled or not permitted.
func Forbidden(message string) *AppError {
	return &AppError{Err: ErrForbidden, Message: message}
}
