package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "chaincast/internal/delivery/context"
	"chaincast/internal/domain/entity"
	"chaincast/internal/domain/repository"
	"chaincast/internal/domain/service"
	mockRepo "chaincast/internal/mocks/repository"
	mockSvc "chaincast/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	m := NewAuthMiddleware(tokenSvc, accountRepo)

	accountID := uuid.New()
	claims := &service.Claims{AccountID: accountID, TokenVersion: 2}
	account := &entity.Account{ID: accountID, TokenVersion: 2}

	tokenSvc.EXPECT().Validate("valid-token").Return(claims, nil)
	accountRepo.EXPECT().FindByID(mock.Anything, accountID).Return(account, nil)

	c, rec := newAuthTestContext(t, "Bearer valid-token")

	var handlerCalled bool
	next := func(c echo.Context) error {
		handlerCalled = true
		got, ok := deliverycontext.GetAccountID(c)
		assert.True(t, ok)
		assert.Equal(t, accountID, got)

		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)

	require.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	m := NewAuthMiddleware(tokenSvc, accountRepo)

	c, rec := newAuthTestContext(t, "")

	err := m.Authenticate(failIfCalled(t))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	m := NewAuthMiddleware(tokenSvc, accountRepo)

	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(failIfCalled(t))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	m := NewAuthMiddleware(tokenSvc, accountRepo)

	tokenSvc.EXPECT().Validate("bad-token").Return(nil, errors.New("signature invalid"))

	c, rec := newAuthTestContext(t, "Bearer bad-token")

	err := m.Authenticate(failIfCalled(t))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_AccountGone(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	m := NewAuthMiddleware(tokenSvc, accountRepo)

	accountID := uuid.New()
	tokenSvc.EXPECT().Validate("valid-token").Return(&service.Claims{AccountID: accountID}, nil)
	accountRepo.EXPECT().FindByID(mock.Anything, accountID).Return(nil, repository.ErrAccountNotFound)

	c, rec := newAuthTestContext(t, "Bearer valid-token")

	err := m.Authenticate(failIfCalled(t))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_StaleTokenVersion(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	m := NewAuthMiddleware(tokenSvc, accountRepo)

	accountID := uuid.New()

	// Token minted before the password reset carries the old version.
	claims := &service.Claims{AccountID: accountID, TokenVersion: 1}
	account := &entity.Account{ID: accountID, TokenVersion: 2}

	tokenSvc.EXPECT().Validate("stale-token").Return(claims, nil)
	accountRepo.EXPECT().FindByID(mock.Anything, accountID).Return(account, nil)

	c, rec := newAuthTestContext(t, "Bearer stale-token")

	err := m.Authenticate(failIfCalled(t))(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Session has been invalidated")
}

func failIfCalled(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatal("next handler should not have been called")

		return nil
	}
}
