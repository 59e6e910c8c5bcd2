package errors

import (
	"maps"
	"net/http"
	"slices"
	"strings"

	"medify/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string, details any) *BaseError {
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
func (e *BaseError) Details() any {
	return e.details
}

// FieldErrors is a map of field name to the validation messages for that
// field, mirroring the wire shape callers receive for bad requests.
type FieldErrors map[string][]string

// ValidationError is an AppError carrying per-field validation messages.
type ValidationError struct {
	fields FieldErrors
}

// NewValidationError creates a validation error from a field->messages map.
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{fields: fields}
}

// NewFieldError creates a validation error for a single field.
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{fields: FieldErrors{field: {message}}}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed")
	for _, field := range slices.Sorted(maps.Keys(e.fields)) {
		for _, msg := range e.fields[field] {
			sb.WriteString("; ")
			sb.WriteString(field)
			sb.WriteString(": ")
			sb.WriteString(msg)
		}
	}
	return sb.String()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Input validation failed"
}

// Details returns the field->messages map.
func (e *ValidationError) Details() any {
	return e.fields
}

// Fields returns the raw field->messages map for tests and handlers.
func (e *ValidationError) Fields() FieldErrors {
	return e.fields
}

// Predefined error types
var (
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Account not found",
		nil,
	)

	ErrAccountCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_CREATION_FAILED",
		"Failed to create account",
		nil,
	)

	ErrAccountUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_UPDATE_FAILED",
		"Failed to update account",
		nil,
	)

	// Authentication-related errors. The invalid-credentials message is
	// deliberately identical for unknown email and wrong password so that
	// account existence cannot be probed through the login endpoint.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		nil,
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		nil,
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"Refresh token has expired",
		nil,
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		nil,
	)

	// Business-info-related errors
	ErrBusinessInfoExists = NewBaseError(
		http.StatusBadRequest,
		"BUSINESS_INFO_EXISTS",
		"Business info already exists. Use update endpoint.",
		nil,
	)

	ErrBusinessInfoNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_INFO_NOT_FOUND",
		"Business info not found",
		nil,
	)

	// Setup-related errors
	ErrWebsiteSetupNotFound = NewBaseError(
		http.StatusNotFound,
		"WEBSITE_SETUP_NOT_FOUND",
		"Website setup not found",
		nil,
	)

	// Storage-related errors
	ErrLogoUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"LOGO_UPLOAD_FAILED",
		"Failed to store the uploaded logo",
		nil,
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		nil,
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		nil,
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		nil,
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
func (e *DatabaseExecuteError) Details() any {
	return e.details
}
