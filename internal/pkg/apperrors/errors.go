package apperrors

import (
	"errors"
	"net/http"
)

// Code is a stable, machine-readable error code surfaced in the response envelope
type Code string

const (
	CodeNotFound       Code = "NOT_FOUND"
	CodeValidation     Code = "VALIDATION_FAILED"
	CodeAuthorization  Code = "AUTHORIZATION_FAILED"
	CodeAuthentication Code = "AUTHENTICATION_FAILED"
	CodeConflict       Code = "CONFLICT"
	CodeInternal       Code = "INTERNAL"
)

// AppError carries a stable code plus a message suitable for direct display
type AppError struct {
	Code    Code
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with the given code and display message
func New(code Code, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches an underlying cause to an AppError
func Wrap(code Code, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func NotFound(message string) *AppError      { return New(CodeNotFound, message) }
func Validation(message string) *AppError    { return New(CodeValidation, message) }
func Authorization(message string) *AppError { return New(CodeAuthorization, message) }
func Authentication(message string) *AppError {
	return New(CodeAuthentication, message)
}
func Conflict(message string) *AppError { return New(CodeConflict, message) }

// CodeOf extracts the code of an error, or CodeInternal for unexpected errors.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// Is reports whether the error carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

// HTTPStatus maps an error code to the HTTP status used by handlers
func HTTPStatus(code Code) int {
	switch code {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusBadRequest
	case CodeAuthorization:
		return http.StatusForbidden
	case CodeAuthentication:
		return http.StatusUnauthorized
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
