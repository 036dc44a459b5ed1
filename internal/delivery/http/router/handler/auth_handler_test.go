package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chaincast/internal/delivery/http/validator"
	"chaincast/internal/domain/entity"
	domainerrors "chaincast/internal/domain/errors"
	mockSvc "chaincast/internal/mocks/service"
	mockUC "chaincast/internal/mocks/usecase"
	"chaincast/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHandlerTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHealthCheck(t *testing.T) {
	c, rec := newHandlerTestContext(t, http.MethodGet, "/health", "")

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestAuthHandler_Signup_RejectsInvalidPayload(t *testing.T) {
	h := NewAuthHandler(nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Confirmation mismatch fails the eqfield rule before any usecase runs.
	body := `{"name":"Test","email":"test@example.com","password":"Password123!","passwordConfirm":"Different123!"}`
	c, _ := newHandlerTestContext(t, http.MethodPost, "/auth/signup", body)

	err := h.Signup(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAuthHandler_VerifyEmail_RejectsNonNumericCode(t *testing.T) {
	h := NewAuthHandler(nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"email":"test@example.com","code":"abc123"}`
	c, _ := newHandlerTestContext(t, http.MethodPost, "/auth/verify-email", body)

	err := h.VerifyEmail(c)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	h := NewAuthHandler(authUC, nil, tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	account := &entity.Account{
		ID:         uuid.New(),
		Name:       "Test Account",
		Email:      "test@example.com",
		Provider:   entity.ProviderLocal,
		IsVerified: true,
	}
	authUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "test@example.com", Password: "Password123!"}).
		Return(&usecase.LoginOutput{SessionToken: "session_token", Account: account}, nil)
	tokenSvc.EXPECT().TokenTTL().Return(time.Hour)

	body := `{"email":"test@example.com","password":"Password123!"}`
	c, rec := newHandlerTestContext(t, http.MethodPost, "/auth/login", body)

	err := h.Login(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sessionToken":"session_token"`)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "session", cookie.Name)
	assert.Equal(t, "session_token", cookie.Value)
	assert.True(t, cookie.Secure)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, 3600, cookie.MaxAge)
}

func TestAuthHandler_Signup_OmitsTokenUntilVerified(t *testing.T) {
	authUC := mockUC.NewMockAuthUsecase(t)
	h := NewAuthHandler(authUC, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	account := &entity.Account{
		ID:       uuid.New(),
		Name:     "Test Account",
		Email:    "test@example.com",
		Provider: entity.ProviderLocal,
	}

	// The default signup issues no token until the email is verified.
	authUC.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("usecase.SignupInput")).
		Return(&usecase.SignupOutput{Account: account}, nil)

	body := `{"name":"Test Account","email":"test@example.com","password":"Password123!","passwordConfirm":"Password123!"}`
	c, rec := newHandlerTestContext(t, http.MethodPost, "/auth/signup", body)

	err := h.Signup(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "sessionToken")
	assert.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_ResetPassword_RequiresToken(t *testing.T) {
	h := NewAuthHandler(nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	body := `{"password":"Password123!","passwordConfirm":"Password123!"}`
	c, rec := newHandlerTestContext(t, http.MethodPatch, "/auth/reset-password/", body)

	// No :token param bound on the context.
	err := h.ResetPassword(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reset token is required")
}
