package middleware

import (
	"log/slog"

	deliverycontext "chaincast/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware tags every request with an ID and a request-scoped logger.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Handle honors an inbound X-Request-Id header when present, otherwise
// generates one, then threads the ID and a logger carrying it through both the
// echo context and the request context so use cases log with the same ID.
func (m *RequestIDMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("requestID", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
