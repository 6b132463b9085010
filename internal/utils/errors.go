// internal/utils/errors.go
package utils

import "net/http"

// ErrorKind is the closed set of failure categories the service layer can
// report. Handlers map kinds to HTTP statuses; nothing else inspects error
// text to decide a status code.
type ErrorKind string

const (
	// ErrKindValidation is the caller's fault: a missing or malformed field.
	ErrKindValidation ErrorKind = "validation"
	// ErrKindUnavailable means no store connection is established.
	ErrKindUnavailable ErrorKind = "unavailable"
	// ErrKindOperation covers query and transaction failures, including
	// constraint violations.
	ErrKindOperation ErrorKind = "operation"
)

type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrKindValidation, Message: message}
}

func NewUnavailableError(message string) *AppError {
	return &AppError{Kind: ErrKindUnavailable, Message: message}
}

func NewOperationError(message string, err error) *AppError {
	return &AppError{Kind: ErrKindOperation, Message: message, Err: err}
}

// StatusForError maps an error to its HTTP status deterministically by kind.
func StatusForError(err error) int {
	if appErr, ok := err.(*AppError); ok {
		switch appErr.Kind {
		case ErrKindValidation:
			return http.StatusBadRequest
		case ErrKindUnavailable:
			return http.StatusServiceUnavailable
		}
	}
	return http.StatusInternalServerError
}
