package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is()
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrMalformedToken    = errors.New("malformed token")
	ErrAccessDenied      = errors.New("access denied")
	ErrValidation        = errors.New("validation error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrConflict          = errors.New("resource already exists")
	ErrNotFound          = errors.New("resource not found")
	ErrThrottled         = errors.New("too many requests")
	ErrUnavailable       = errors.New("remote service unavailable")
)

// AppError carries a stable code and a caller-safe message alongside the
// wrapped sentinel, so handlers can map kinds without matching strings.
type AppError struct {
	Code    string
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

// Constructors
func MissingCredential(msg string) *AppError {
	return &AppError{Code: "MISSING_CREDENTIAL", Message: msg, Err: ErrMissingCredential}
}

func MalformedToken(msg string) *AppError {
	return &AppError{Code: "MALFORMED_TOKEN", Message: msg, Err: ErrMalformedToken}
}

func AccessDenied(msg string) *AppError {
	return &AppError{Code: "ACCESS_DENIED", Message: msg, Err: ErrAccessDenied}
}

func Validation(msg string) *AppError {
	return &AppError{Code: "VALIDATION_FAILED", Message: msg, Err: ErrValidation}
}

func Unauthorized(msg string) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: msg, Err: ErrUnauthorized}
}

func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, Err: ErrConflict}
}

func NotFound(msg string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: msg, Err: ErrNotFound}
}

func Throttled(msg string) *AppError {
	return &AppError{Code: "THROTTLED", Message: msg, Err: ErrThrottled}
}

func Unavailable(msg string, err error) *AppError {
	return &AppError{Code: "UNAVAILABLE", Message: msg, Err: errors.Join(ErrUnavailable, err)}
}
