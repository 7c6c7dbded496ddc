package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an application error.
type Code string

const (
	CodeValidation  Code = "VALIDATION_ERROR"
	CodeNotFound    Code = "NOT_FOUND"
	CodeCapacity    Code = "CAPACITY_REACHED"
	CodeRateLimited Code = "RATE_LIMITED"
	CodeConflict    Code = "CONFLICT"
	CodeForbidden   Code = "FORBIDDEN"
	CodeStorage     Code = "STORAGE_ERROR"
	CodeExternalAPI Code = "EXTERNAL_API_ERROR"
	CodeInternal    Code = "INTERNAL_ERROR"
)

// Error is a typed application error carrying a classification code.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the error code to an HTTP status.
//
// Rate-limit violations intentionally map to 400, not 429: the boost throttle
// is a business rule surfaced to the SPA as a plain rejection.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeValidation, CodeRateLimited:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeCapacity, CodeForbidden:
		return http.StatusForbidden
	case CodeConflict:
		return http.StatusConflict
	case CodeExternalAPI:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new application error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new application error with a formatted message.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates an underlying error with a code and message.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, Cause: err}
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// NotFound creates a "resource not found" error.
func NotFound(resource string) *Error {
	return Newf(CodeNotFound, "%s not found", resource)
}

// Capacity creates a population-cap error.
func Capacity(limit int) *Error {
	return Newf(CodeCapacity, "user limit reached (%d)", limit)
}

// RateLimited creates a throttle error.
func RateLimited(message string) *Error {
	return New(CodeRateLimited, message)
}

// Storage wraps a persistence failure.
func Storage(operation string, err error) *Error {
	return Wrap(err, CodeStorage, fmt.Sprintf("storage operation failed: %s", operation))
}

// ExternalAPI wraps a third-party API failure.
func ExternalAPI(operation string, err error) *Error {
	return Wrap(err, CodeExternalAPI, fmt.Sprintf("external API call failed: %s", operation))
}

// From extracts an *Error from err, wrapping unknown errors as internal.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeInternal, "internal server error")
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}
