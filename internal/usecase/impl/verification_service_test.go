package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"chaincast/config"
	"chaincast/internal/domain/entity"
	domainerrors "chaincast/internal/domain/errors"
	"chaincast/internal/domain/repository"
	mockRepo "chaincast/internal/mocks/repository"
	mockSvc "chaincast/internal/mocks/service"
	"chaincast/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// verificationServiceFixtures holds all test dependencies for verification service tests.
type verificationServiceFixtures struct {
	service      usecase.VerificationUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	mailer       *mockSvc.MockMailer
}

func createTestVerificationService(t *testing.T) verificationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewVerificationService(VerificationServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Mailer:       mailer,
		Config: &config.Config{
			Mail: &config.MailConfig{ResetBaseURL: "https://app.example.com/reset-password"},
		},
		Logger: logger,
	})

	return verificationServiceFixtures{
		service:      svc,
		txManager:    txManager,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

func TestVerificationService_ResendEmailOTP_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Name:     "Test Account",
		Email:    "test@example.com",
		Provider: entity.ProviderLocal,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, account.Email).
				Return(account, nil)
			mockAccountRepo.EXPECT().
				SetVerificationCode(ctx, account.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.mailer.EXPECT().
		SendVerificationCode(ctx, account.Email, account.Name, mock.AnythingOfType("string")).
		Return(nil)

	err := fx.service.ResendEmailOTP(ctx, "Test@Example.com")

	require.NoError(t, err)
}

func TestVerificationService_ResendEmailOTP_AlreadyVerified(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:         uuid.New(),
		Email:      "test@example.com",
		Provider:   entity.ProviderLocal,
		IsVerified: true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, account.Email).
				Return(account, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAlreadyVerified, "verification resend rejected"))

	err := fx.service.ResendEmailOTP(ctx, account.Email)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyVerified))
}

func TestVerificationService_ResendEmailOTP_MailFailure(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Name:     "Test Account",
		Email:    "test@example.com",
		Provider: entity.ProviderLocal,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, account.Email).
				Return(account, nil)
			mockAccountRepo.EXPECT().
				SetVerificationCode(ctx, account.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.mailer.EXPECT().
		SendVerificationCode(ctx, account.Email, account.Name, mock.AnythingOfType("string")).
		Return(errors.New("smtp unreachable"))

	fx.accountRepo.EXPECT().ClearVerificationCode(ctx, account.ID).Return(nil)

	err := fx.service.ResendEmailOTP(ctx, account.Email)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMailDelivery))
}

func TestVerificationService_ConfirmEmailOTP_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Name:         "Test Account",
		Email:        "test@example.com",
		Provider:     entity.ProviderLocal,
		TokenVersion: 1,
	}
	input := usecase.ConfirmEmailOTPInput{
		Email: "test@example.com",
		Code:  "123456",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, account.Email).
				Return(account, nil)
			mockAccountRepo.EXPECT().
				ConfirmVerification(ctx, account.ID, input.Code, mock.AnythingOfType("time.Time")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().Generate(account.ID, 1).Return("session_token", nil)
	fx.mailer.EXPECT().SendWelcome(ctx, account.Email, account.Name).Return(nil)

	output, err := fx.service.ConfirmEmailOTP(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "session_token", output.SessionToken)
}

func TestVerificationService_ConfirmEmailOTP_WelcomeMailFailureIgnored(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Name:     "Test Account",
		Email:    "test@example.com",
		Provider: entity.ProviderLocal,
	}
	input := usecase.ConfirmEmailOTPInput{
		Email: "test@example.com",
		Code:  "123456",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, account.Email).
				Return(account, nil)
			mockAccountRepo.EXPECT().
				ConfirmVerification(ctx, account.ID, input.Code, mock.AnythingOfType("time.Time")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().Generate(account.ID, 0).Return("session_token", nil)
	fx.mailer.EXPECT().SendWelcome(ctx, account.Email, account.Name).Return(errors.New("smtp unreachable"))

	output, err := fx.service.ConfirmEmailOTP(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "session_token", output.SessionToken)
}

func TestVerificationService_ConfirmEmailOTP_WrongCode(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Provider: entity.ProviderLocal,
	}
	input := usecase.ConfirmEmailOTPInput{
		Email: "test@example.com",
		Code:  "000000",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, account.Email).
				Return(account, nil)
			mockAccountRepo.EXPECT().
				ConfirmVerification(ctx, account.ID, input.Code, mock.AnythingOfType("time.Time")).
				Return(repository.ErrStaleGuard)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrOTPInvalid, "verification failed"))

	output, err := fx.service.ConfirmEmailOTP(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOTPInvalid))
}

func TestVerificationService_ConfirmEmailOTP_UnknownEmail(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	input := usecase.ConfirmEmailOTPInput{
		Email: "missing@example.com",
		Code:  "123456",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrAccountNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAccountNotFound, "no account for verification"))

	output, err := fx.service.ConfirmEmailOTP(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestVerificationService_ConfirmEmailOTP_ReplayAfterVerified(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:         uuid.New(),
		Email:      "test@example.com",
		Provider:   entity.ProviderLocal,
		IsVerified: true,
	}
	input := usecase.ConfirmEmailOTPInput{
		Email: "test@example.com",
		Code:  "123456",
	}

	// Replaying the code after a successful confirmation fails like any other
	// bad code, without revealing the account's verification state.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, account.Email).
				Return(account, nil)

			innerErr := fn(mockFactory)
			assert.True(t, errors.Is(innerErr, domainerrors.ErrOTPInvalid))
			assert.False(t, errors.Is(innerErr, domainerrors.ErrAlreadyVerified))
		}).
		Return(errors.Wrap(domainerrors.ErrOTPInvalid, "verification failed"))

	output, err := fx.service.ConfirmEmailOTP(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOTPInvalid))
	assert.False(t, errors.Is(err, domainerrors.ErrAlreadyVerified))
}

func TestVerificationService_RequestPasswordReset_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Name:     "Test Account",
		Email:    "test@example.com",
		Provider: entity.ProviderLocal,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, account.Email).
				Return(account, nil)
			mockAccountRepo.EXPECT().
				SetResetToken(ctx, account.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	var mailedURL string
	fx.mailer.EXPECT().
		SendPasswordReset(ctx, account.Email, account.Name, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, to, name, resetURL string) {
			mailedURL = resetURL
		}).
		Return(nil)

	err := fx.service.RequestPasswordReset(ctx, account.Email)

	require.NoError(t, err)
	assert.Contains(t, mailedURL, "https://app.example.com/reset-password/")
}

func TestVerificationService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, "missing@example.com").
				Return(nil, repository.ErrAccountNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAccountNotFound, "no account for password reset"))

	err := fx.service.RequestPasswordReset(ctx, "missing@example.com")

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestVerificationService_RequestPasswordReset_OAuthAccount(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Provider: entity.ProviderGoogle,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, account.Email).
				Return(account, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(
			domainerrors.ErrProviderMismatch.WithDetails("this account signs in via google"),
			"password reset rejected for oauth account",
		))

	err := fx.service.RequestPasswordReset(ctx, account.Email)

	assert.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PROVIDER_MISMATCH", appErr.ErrorCode())
}

func TestVerificationService_RequestPasswordReset_MailFailure(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Name:     "Test Account",
		Email:    "test@example.com",
		Provider: entity.ProviderLocal,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, account.Email).
				Return(account, nil)
			mockAccountRepo.EXPECT().
				SetResetToken(ctx, account.ID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.mailer.EXPECT().
		SendPasswordReset(ctx, account.Email, account.Name, mock.AnythingOfType("string")).
		Return(errors.New("smtp unreachable"))

	fx.accountRepo.EXPECT().ClearResetToken(ctx, account.ID).Return(nil)

	err := fx.service.RequestPasswordReset(ctx, account.Email)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMailDelivery))
}

func TestVerificationService_CompleteReset_Success(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	input := usecase.CompleteResetInput{
		Token:           "raw-reset-token",
		Password:        "NewPassword123!",
		PasswordConfirm: "NewPassword123!",
	}
	tokenHash := hashResetToken(input.Token)

	accountID := uuid.New()
	expiry := time.Now().Add(5 * time.Minute)
	account := &entity.Account{
		ID:               accountID,
		Email:            "test@example.com",
		Provider:         entity.ProviderLocal,
		IsVerified:       true,
		ResetTokenHash:   tokenHash,
		ResetTokenExpiry: &expiry,
		TokenVersion:     1,
	}
	// Reloaded inside the transaction, after the guarded update bumped the version.
	reloaded := &entity.Account{
		ID:           accountID,
		Email:        "test@example.com",
		Provider:     entity.ProviderLocal,
		IsVerified:   true,
		TokenVersion: 2,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByResetTokenHash(ctx, tokenHash, mock.AnythingOfType("time.Time")).
				Return(account, nil)
			mockAccountRepo.EXPECT().
				CompleteReset(ctx, accountID, tokenHash, "new_hash", mock.AnythingOfType("time.Time")).
				Return(nil)
			mockAccountRepo.EXPECT().
				FindByID(ctx, accountID).
				Return(reloaded, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.tokenService.EXPECT().Generate(accountID, 2).Return("fresh_session", nil)

	output, err := fx.service.CompleteReset(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "fresh_session", output.SessionToken)
}

func TestVerificationService_CompleteReset_InvalidToken(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	input := usecase.CompleteResetInput{
		Token:           "expired-token",
		Password:        "NewPassword123!",
		PasswordConfirm: "NewPassword123!",
	}
	tokenHash := hashResetToken(input.Token)

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("new_hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByResetTokenHash(ctx, tokenHash, mock.AnythingOfType("time.Time")).
				Return(nil, repository.ErrAccountNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrResetTokenInvalid, "password reset failed"))

	output, err := fx.service.CompleteReset(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestVerificationService_CompleteReset_ConsumedToken(t *testing.T) {
	fx := createTestVerificationService(t)

	ctx := context.Background()
	input := usecase.CompleteResetInput{
		Token:           "raw-reset-token",
		Password:        "NewPassword123!",
		PasswordConfirm: "NewPassword123!",
	}
	tokenHash := hashResetToken(input.Token)

	accountID := uuid.New()
	expiry := time.Now().Add(5 * time.Minute)
	account := &entity.Account{
		ID:               accountID,
		Provider:         entity.ProviderLocal,
		ResetTokenHash:   tokenHash,
		ResetTokenExpiry: &expiry,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("new_hash", nil)

	// The guarded update lost the race against a concurrent reset, so the
	// token is treated as invalid even though the lookup found the account.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByResetTokenHash(ctx, tokenHash, mock.AnythingOfType("time.Time")).
				Return(account, nil)
			mockAccountRepo.EXPECT().
				CompleteReset(ctx, accountID, tokenHash, "new_hash", mock.AnythingOfType("time.Time")).
				Return(repository.ErrStaleGuard)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrResetTokenInvalid, "password reset failed"))

	output, err := fx.service.CompleteReset(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestVerificationService_CompleteReset_PasswordMismatch(t *testing.T) {
	fx := createTestVerificationService(t)

	output, err := fx.service.CompleteReset(context.Background(), usecase.CompleteResetInput{
		Token:           "raw-reset-token",
		Password:        "NewPassword123!",
		PasswordConfirm: "Different123!",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
