// Package response defines the JSON envelope every endpoint answers with.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the body shape shared by success and error responses.
// Data and Error are mutually exclusive.
type Envelope struct {
	Success bool         `json:"success"`
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail carries the business error code alongside the HTTP status.
type ErrorDetail struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Success writes a successful envelope with the given payload.
func Success(c echo.Context, statusCode int, data any, message string) error {
	env := Envelope{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	}
	if env.Message == "" {
		env.Message = "Success"
	}

	return c.JSON(statusCode, env)
}

// Error writes a failed envelope carrying the business error code.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	env := Envelope{
		Code:    statusCode,
		Message: message,
		Error: &ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	}
	if env.Message == "" {
		env.Message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, env)
}

// BindingError reports a request body that failed binding or validation.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized reports a request without a usable session.
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}
