// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "chaincast/internal/delivery/context"
	"chaincast/internal/delivery/http/response"
	"chaincast/internal/domain/entity"
	"chaincast/internal/domain/service"
	"chaincast/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// --- Request DTOs ---

type signupRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type githubLoginRequest struct {
	Code string `json:"code" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required,eqfield=Password"`
}

type verifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type resendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// --- Response DTOs ---

// accountView is the safe projection of an account. Password hashes, codes
// and token hashes never leave the server.
type accountView struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Provider   string    `json:"provider"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// sessionView carries the minted session token. The token is absent, not
// empty, on responses that issue none, such as a signup awaiting verification.
type sessionView struct {
	SessionToken string       `json:"sessionToken,omitempty"`
	Account      *accountView `json:"account,omitempty"`
}

func toAccountView(account *entity.Account) *accountView {
	return &accountView{
		ID:         account.ID.String(),
		Name:       account.Name,
		Email:      account.Email,
		Provider:   account.Provider.String(),
		IsVerified: account.IsVerified,
		CreatedAt:  account.CreatedAt,
	}
}

// sessionCookieName is the cookie mirroring the bearer token for browser
// clients that cannot hold the token themselves.
const sessionCookieName = "session"

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	authUC         usecase.AuthUsecase
	verificationUC usecase.VerificationUsecase
	tokenService   service.TokenService
	logger         *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, verificationUC usecase.VerificationUsecase, tokenService service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC:         authUC,
		verificationUC: verificationUC,
		tokenService:   tokenService,
		logger:         logger,
	}
}

// setSessionCookie mirrors an issued token into a secure, http-only cookie
// whose lifetime matches the token's own.
func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	if token == "" {
		return
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokenService.TokenTTL() / time.Second),
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Signup handles the local registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Signup(c.Request().Context(), usecase.SignupInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)
	data := &sessionView{
		SessionToken: output.SessionToken,
		Account:      toAccountView(output.Account),
	}

	return response.Success(c, http.StatusCreated, data, "Account created, check your mailbox for the verification code")
}

// Login handles the local login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)
	data := &sessionView{
		SessionToken: output.SessionToken,
		Account:      toAccountView(output.Account),
	}

	return response.Success(c, http.StatusOK, data, "Login successful")
}

// GoogleLogin handles login with a Google ID token.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	return h.oauthLogin(c, entity.ProviderGoogle, req.IDToken)
}

// GithubLogin handles login with a GitHub authorization code.
func (h *AuthHandler) GithubLogin(c echo.Context) error {
	var req githubLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid GitHub login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	return h.oauthLogin(c, entity.ProviderGitHub, req.Code)
}

func (h *AuthHandler) oauthLogin(c echo.Context, provider entity.ProviderType, credential string) error {
	output, err := h.authUC.OAuthLogin(c.Request().Context(), usecase.OAuthLoginInput{
		Provider:   provider,
		Credential: credential,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)
	data := &sessionView{
		SessionToken: output.SessionToken,
		Account:      toAccountView(output.Account),
	}

	return response.Success(c, http.StatusOK, data, "Login successful")
}

// ForgotPassword handles the password reset request.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.verificationUC.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset link sent to your mailbox")
}

// ResetPassword consumes a reset token from the mailed link and sets a new password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	token := c.Param("token")
	if token == "" {
		return response.BindingError(c, "INVALID_INPUT", "Reset token is required")
	}

	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.verificationUC.CompleteReset(c.Request().Context(), usecase.CompleteResetInput{
		Token:           token,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)
	data := &sessionView{SessionToken: output.SessionToken}

	return response.Success(c, http.StatusOK, data, "Password has been reset")
}

// VerifyEmail confirms a verification code.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.verificationUC.ConfirmEmailOTP(c.Request().Context(), usecase.ConfirmEmailOTPInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionToken)
	data := &sessionView{SessionToken: output.SessionToken}

	return response.Success(c, http.StatusOK, data, "Email verified")
}

// ResendOTP issues a fresh verification code.
func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req resendOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.verificationUC.ResendEmailOTP(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code sent to your mailbox")
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authenticated account")
	}

	account, err := h.authUC.Me(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountView(account), "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
