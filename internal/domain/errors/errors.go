package errors

import (
	"net/http"

	"chaincast/internal/errors"
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
	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet the minimum requirements",
		"",
	)

	// Account-related errors
	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"An account already exists with this email",
		"",
	)

	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"No account exists with that email address",
		"",
	)

	ErrAccountCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_CREATION_FAILED",
		"Failed to create account",
		"",
	)

	ErrAccountUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_UPDATE_FAILED",
		"Failed to update account",
		"",
	)

	// Credential-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrNotVerified = NewBaseError(
		http.StatusForbidden,
		"NOT_VERIFIED",
		"Please verify your email address first",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Missing or invalid session token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Verification-related errors
	ErrOTPInvalid = NewBaseError(
		http.StatusBadRequest,
		"OTP_INVALID",
		"Invalid or expired verification code",
		"",
	)

	ErrAlreadyVerified = NewBaseError(
		http.StatusConflict,
		"ALREADY_VERIFIED",
		"This account has already been verified",
		"",
	)

	// Reset-related errors
	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"Reset token is invalid or has expired",
		"",
	)

	// OAuth-related errors
	ErrProviderMismatch = NewBaseError(
		http.StatusBadRequest,
		"PROVIDER_MISMATCH",
		"This email is already registered with a different sign-in method",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_TOKEN_INVALID",
		"Invalid ID token",
		"",
	)

	ErrOAuthCodeInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_CODE_INVALID",
		"Invalid authorization code",
		"",
	)

	// External collaborator errors
	ErrMailDelivery = NewBaseError(
		http.StatusBadGateway,
		"MAIL_DELIVERY_FAILED",
		"Failed to send email, please try again later",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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
