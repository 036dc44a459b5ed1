package middleware

import (
	"strings"

	deliverycontext "chaincast/internal/delivery/context"
	"chaincast/internal/delivery/http/response"
	"chaincast/internal/domain/repository"
	"chaincast/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for session token authentication.
type AuthMiddleware struct {
	tokenSvc    service.TokenService
	accountRepo repository.AccountRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, accountRepo repository.AccountRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, accountRepo: accountRepo}
}

// Authenticate is the core middleware function that validates the session token.
// Beyond the signature and expiry, the token version claim is compared against
// the account so tokens issued before a password reset are rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		account, err := m.accountRepo.FindByID(c.Request().Context(), claims.AccountID)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Account no longer exists")
		}
		if account.TokenVersion != claims.TokenVersion {
			return response.Unauthorized(c, "UNAUTHORIZED", "Session has been invalidated")
		}

		// Set account info on the context for handlers to use
		deliverycontext.SetAccountID(c, account.ID)

		return next(c)
	}
}
