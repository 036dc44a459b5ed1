// Package context carries request-scoped values between the delivery layer
// and the use cases without leaking echo types downward.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request ID.
const HeaderXRequestID = "X-Request-Id"

// ctxKey keeps this package's context values from colliding with others.
type ctxKey string

const (
	keyRequestID ctxKey = "request_id"
	keyLogger    ctxKey = "logger"
	keyAccountID ctxKey = "account_id"
)

// GetRequestID returns the request ID stored on the echo context, minting a
// fresh UUID when the middleware has not set one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// WithRequestID copies the request ID into a standard context so it survives
// past the delivery layer.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// WithLogger attaches a request-scoped logger to the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when the
// context carries none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// GetAccountID returns the authenticated account ID set by the auth
// middleware, and whether one was present.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	if id, ok := c.Get(string(keyAccountID)).(uuid.UUID); ok {
		return id, true
	}

	return uuid.Nil, false
}

// SetAccountID stores the authenticated account ID on the echo context.
func SetAccountID(c echo.Context, accountID uuid.UUID) {
	c.Set(string(keyAccountID), accountID)
}
