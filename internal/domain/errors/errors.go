// Package errors defines the application error taxonomy. Every error that can
// reach a client carries an HTTP status, a stable business code and a
// user-facing message.
package errors

import (
	"net/http"

	"quill/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Auth / magic-code flow
	ErrCodeInvalid = NewBaseError(
		http.StatusUnauthorized,
		"CODE_INVALID",
		"The sign-in code is incorrect",
		"",
	)

	ErrCodeExpired = NewBaseError(
		http.StatusUnauthorized,
		"CODE_EXPIRED",
		"The sign-in code has expired, request a new one",
		"",
	)

	ErrTooManyAttempts = NewBaseError(
		http.StatusUnauthorized,
		"CODE_ATTEMPTS_EXCEEDED",
		"Too many incorrect attempts, request a new code",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired session, sign in again",
		"",
	)

	// Profile
	ErrHandleTaken = NewBaseError(
		http.StatusConflict,
		"HANDLE_TAKEN",
		"This handle is already taken, please choose another one",
		"",
	)

	ErrProfileExists = NewBaseError(
		http.StatusConflict,
		"PROFILE_EXISTS",
		"A profile already exists for this account",
		"",
	)

	ErrProfileRequired = NewBaseError(
		http.StatusConflict,
		"PROFILE_REQUIRED",
		"Create a profile before performing this action",
		"",
	)

	// Avatar uploads
	ErrAvatarNotImage = NewBaseError(
		http.StatusBadRequest,
		"AVATAR_NOT_IMAGE",
		"Avatar must be an image file",
		"",
	)

	ErrAvatarTooLarge = NewBaseError(
		http.StatusBadRequest,
		"AVATAR_TOO_LARGE",
		"Avatar must be 2 MB or smaller",
		"",
	)

	// General
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to do this",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The requested resource is not available",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
