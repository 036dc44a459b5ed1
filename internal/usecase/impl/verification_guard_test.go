package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"chaincast/internal/domain/entity"
	domainerrors "chaincast/internal/domain/errors"
	"chaincast/internal/domain/repository"
	mockSvc "chaincast/internal/mocks/service"
	"chaincast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAccountStore is an in-memory AccountRepository that reproduces the
// guarded-update semantics of the SQL implementation: ConfirmVerification and
// CompleteReset only take effect while the code or token hash still matches
// and has not expired. It doubles as its own transaction manager so the
// services under test run against real state transitions instead of canned
// mock returns.
type fakeAccountStore struct {
	accounts map[uuid.UUID]*entity.Account
}

func newFakeAccountStore(accounts ...*entity.Account) *fakeAccountStore {
	store := &fakeAccountStore{accounts: make(map[uuid.UUID]*entity.Account)}
	for _, account := range accounts {
		copied := *account
		store.accounts[account.ID] = &copied
	}

	return store
}

func (s *fakeAccountStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s)
}

func (s *fakeAccountStore) AccountRepo() repository.AccountRepository { return s }

// get returns the stored account itself, for test assertions on final state.
func (s *fakeAccountStore) get(id uuid.UUID) *entity.Account {
	return s.accounts[id]
}

func (s *fakeAccountStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	account, ok := s.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}
	copied := *account

	return &copied, nil
}

func (s *fakeAccountStore) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	for _, account := range s.accounts {
		if account.Email == email {
			copied := *account

			return &copied, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (s *fakeAccountStore) FindByResetTokenHash(_ context.Context, tokenHash string, now time.Time) (*entity.Account, error) {
	for _, account := range s.accounts {
		if account.ResetTokenHash == tokenHash && account.ResetTokenExpiry != nil && account.ResetTokenExpiry.After(now) {
			copied := *account

			return &copied, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (s *fakeAccountStore) Create(_ context.Context, account *entity.Account) error {
	for _, stored := range s.accounts {
		if stored.Email == account.Email {
			return repository.ErrDuplicateEmail
		}
	}
	copied := *account
	s.accounts[account.ID] = &copied

	return nil
}

func (s *fakeAccountStore) Update(_ context.Context, account *entity.Account) error {
	stored, ok := s.accounts[account.ID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	*stored = *account

	return nil
}

func (s *fakeAccountStore) SetVerificationCode(_ context.Context, id uuid.UUID, code string, expiry time.Time) error {
	account, ok := s.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}
	account.OTP = code
	account.OTPExpiry = &expiry

	return nil
}

func (s *fakeAccountStore) ConfirmVerification(_ context.Context, id uuid.UUID, code string, now time.Time) error {
	account, ok := s.accounts[id]
	if !ok || account.IsVerified || account.OTP != code || account.OTPExpiry == nil || !account.OTPExpiry.After(now) {
		return repository.ErrStaleGuard
	}
	account.IsVerified = true
	account.OTP = ""
	account.OTPExpiry = nil

	return nil
}

func (s *fakeAccountStore) ClearVerificationCode(_ context.Context, id uuid.UUID) error {
	if account, ok := s.accounts[id]; ok {
		account.OTP = ""
		account.OTPExpiry = nil
	}

	return nil
}

func (s *fakeAccountStore) MarkVerified(_ context.Context, id uuid.UUID) error {
	account, ok := s.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}
	account.IsVerified = true
	account.OTP = ""
	account.OTPExpiry = nil

	return nil
}

func (s *fakeAccountStore) SetResetToken(_ context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error {
	account, ok := s.accounts[id]
	if !ok {
		return repository.ErrAccountNotFound
	}
	account.ResetTokenHash = tokenHash
	account.ResetTokenExpiry = &expiry

	return nil
}

func (s *fakeAccountStore) CompleteReset(_ context.Context, id uuid.UUID, tokenHash, newPasswordHash string, now time.Time) error {
	account, ok := s.accounts[id]
	if !ok || account.ResetTokenHash != tokenHash || account.ResetTokenExpiry == nil || !account.ResetTokenExpiry.After(now) {
		return repository.ErrStaleGuard
	}
	account.PasswordHash = newPasswordHash
	account.ResetTokenHash = ""
	account.ResetTokenExpiry = nil
	account.TokenVersion++

	return nil
}

func (s *fakeAccountStore) ClearResetToken(_ context.Context, id uuid.UUID) error {
	if account, ok := s.accounts[id]; ok {
		account.ResetTokenHash = ""
		account.ResetTokenExpiry = nil
	}

	return nil
}

// guardTestFixtures wires a verification service onto the fake store so the
// lifecycle invariants run against real state instead of canned mock returns.
type guardTestFixtures struct {
	service      usecase.VerificationUsecase
	store        *fakeAccountStore
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
}

func createGuardTestService(t *testing.T, store *fakeAccountStore) guardTestFixtures {
	t.Helper()

	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewVerificationService(VerificationServiceParams{
		TxManager:    store,
		AccountRepo:  store,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Config:       nil,
		Logger:       logger,
	})

	return guardTestFixtures{
		service:      svc,
		store:        store,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func expiresIn(d time.Duration) *time.Time {
	t := time.Now().Add(d)

	return &t
}

func TestVerificationGuard_ExpiredOTPRejected(t *testing.T) {
	account := &entity.Account{
		ID:        uuid.New(),
		Email:     "expired@example.com",
		Provider:  entity.ProviderLocal,
		OTP:       "123456",
		OTPExpiry: expiresIn(-time.Minute),
	}
	fx := createGuardTestService(t, newFakeAccountStore(account))

	// The code matches exactly but its expiry has passed.
	output, err := fx.service.ConfirmEmailOTP(context.Background(), usecase.ConfirmEmailOTPInput{
		Email: account.Email,
		Code:  "123456",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOTPInvalid))
	assert.False(t, fx.store.get(account.ID).IsVerified)
}

func TestVerificationGuard_OTPSingleUse(t *testing.T) {
	account := &entity.Account{
		ID:        uuid.New(),
		Email:     "pending@example.com",
		Provider:  entity.ProviderLocal,
		OTP:       "654321",
		OTPExpiry: expiresIn(5 * time.Minute),
	}
	fx := createGuardTestService(t, newFakeAccountStore(account))

	fx.tokenService.EXPECT().Generate(account.ID, 0).Return("session_token", nil).Once()
	fx.mailer.EXPECT().SendWelcome(context.Background(), account.Email, account.Name).Return(nil).Once()

	input := usecase.ConfirmEmailOTPInput{Email: account.Email, Code: "654321"}

	output, err := fx.service.ConfirmEmailOTP(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "session_token", output.SessionToken)

	stored := fx.store.get(account.ID)
	assert.True(t, stored.IsVerified)
	assert.Empty(t, stored.OTP)
	assert.Nil(t, stored.OTPExpiry)

	// The same code submitted again must not succeed a second time.
	output, err = fx.service.ConfirmEmailOTP(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOTPInvalid))
}

func TestVerificationGuard_ExpiredResetTokenRejected(t *testing.T) {
	rawToken, err := generateResetToken()
	require.NoError(t, err)

	account := &entity.Account{
		ID:               uuid.New(),
		Email:            "expired-reset@example.com",
		Provider:         entity.ProviderLocal,
		PasswordHash:     "old_hash",
		ResetTokenHash:   hashResetToken(rawToken),
		ResetTokenExpiry: expiresIn(-time.Minute),
	}
	fx := createGuardTestService(t, newFakeAccountStore(account))

	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword123!").Return(nil)
	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)

	// The hash matches exactly but the token's expiry has passed.
	output, err := fx.service.CompleteReset(context.Background(), usecase.CompleteResetInput{
		Token:           rawToken,
		Password:        "NewPassword123!",
		PasswordConfirm: "NewPassword123!",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))

	stored := fx.store.get(account.ID)
	assert.Equal(t, "old_hash", stored.PasswordHash)
	assert.Equal(t, 0, stored.TokenVersion)
}

func TestVerificationGuard_ResetTokenSingleUse(t *testing.T) {
	rawToken, err := generateResetToken()
	require.NoError(t, err)

	account := &entity.Account{
		ID:               uuid.New(),
		Email:            "reset@example.com",
		Provider:         entity.ProviderLocal,
		PasswordHash:     "old_hash",
		TokenVersion:     1,
		ResetTokenHash:   hashResetToken(rawToken),
		ResetTokenExpiry: expiresIn(10 * time.Minute),
	}
	fx := createGuardTestService(t, newFakeAccountStore(account))

	fx.hasher.EXPECT().ValidatePasswordStrength("NewPassword123!").Return(nil)
	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)
	fx.tokenService.EXPECT().Generate(account.ID, 2).Return("fresh_session", nil).Once()

	input := usecase.CompleteResetInput{
		Token:           rawToken,
		Password:        "NewPassword123!",
		PasswordConfirm: "NewPassword123!",
	}

	output, err := fx.service.CompleteReset(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "fresh_session", output.SessionToken)

	stored := fx.store.get(account.ID)
	assert.Equal(t, "new_hash", stored.PasswordHash)
	assert.Equal(t, 2, stored.TokenVersion)
	assert.Empty(t, stored.ResetTokenHash)

	// The consumed token must not reset the password a second time.
	output, err = fx.service.CompleteReset(context.Background(), input)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
	assert.Equal(t, 2, fx.store.get(account.ID).TokenVersion)
}
