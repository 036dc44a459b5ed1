package impl

import (
	"context"
	"log/slog"
	"time"

	"chaincast/config"
	deliverycontext "chaincast/internal/delivery/context"
	"chaincast/internal/domain/entity"
	domainerrors "chaincast/internal/domain/errors"
	"chaincast/internal/domain/repository"
	"chaincast/internal/domain/service"
	"chaincast/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultResetTokenTTL = 10 * time.Minute

// verificationService implements the VerificationUsecase interface: the email
// OTP lifecycle and the password reset token lifecycle.
type verificationService struct {
	txManager     repository.TransactionManager
	accountRepo   repository.AccountRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	mailer        service.Mailer
	otpTTL        time.Duration
	resetTokenTTL time.Duration
	resetBaseURL  string
	logger        *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	otpTTL := defaultOTPTTL
	resetTokenTTL := defaultResetTokenTTL
	resetBaseURL := ""
	if params.Config != nil {
		if params.Config.Auth != nil {
			if params.Config.Auth.OTPTTL > 0 {
				otpTTL = params.Config.Auth.OTPTTL
			}
			if params.Config.Auth.ResetTokenTTL > 0 {
				resetTokenTTL = params.Config.Auth.ResetTokenTTL
			}
		}
		if params.Config.Mail != nil {
			resetBaseURL = params.Config.Mail.ResetBaseURL
		}
	}

	return &verificationService{
		txManager:     params.TxManager,
		accountRepo:   params.AccountRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		mailer:        params.Mailer,
		otpTTL:        otpTTL,
		resetTokenTTL: resetTokenTTL,
		resetBaseURL:  resetBaseURL,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResendEmailOTP issues a fresh verification code, replacing any outstanding
// one. Only the newest code is ever valid for an account.
func (srv *verificationService) ResendEmailOTP(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)
	srv.log(ctx).Info("Resending verification code", slog.String("email", email))

	code, err := generateOTP()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	var account *entity.Account
	otpExpiry := time.Now().Add(srv.otpTTL)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		var findErr error
		account, findErr = accountRepo.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "no account for verification resend")
			}

			return errors.Wrap(findErr, "failed to find account by email")
		}

		if account.IsVerified {
			return errors.Wrap(domainerrors.ErrAlreadyVerified, "verification resend rejected")
		}

		if setErr := accountRepo.SetVerificationCode(ctx, account.ID, code, otpExpiry); setErr != nil {
			return errors.Wrap(setErr, "failed to store verification code")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute verification resend transaction", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute verification resend transaction")
	}

	if err := srv.mailer.SendVerificationCode(ctx, account.Email, account.Name, code); err != nil {
		srv.log(ctx).Error("Failed to send verification mail", slog.Any("accountID", account.ID), slog.Any("error", err))

		if clearErr := srv.accountRepo.ClearVerificationCode(ctx, account.ID); clearErr != nil {
			srv.log(ctx).Error("Failed to clear verification code after mail failure", slog.Any("accountID", account.ID), slog.Any("error", clearErr))
		}

		return errors.Wrap(domainerrors.ErrMailDelivery, "failed to send verification mail")
	}
	srv.log(ctx).Debug("Verification code resent", slog.Any("accountID", account.ID))

	return nil
}

// ConfirmEmailOTP validates a submitted code and marks the account verified.
// The guarded update consumes the code, so a replayed confirmation fails.
func (srv *verificationService) ConfirmEmailOTP(ctx context.Context, input usecase.ConfirmEmailOTPInput) (*usecase.ConfirmEmailOTPOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Info("Confirming verification code", slog.String("email", email))

	var account *entity.Account
	now := time.Now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		var findErr error
		account, findErr = accountRepo.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "no account for verification")
			}

			return errors.Wrap(findErr, "failed to find account by email")
		}

		// A replay after a successful confirmation fails the same way a bad
		// code does. The guarded update below would reject it too; answering
		// here skips a doomed write.
		if account.IsVerified {
			return errors.Wrap(domainerrors.ErrOTPInvalid, "verification failed")
		}

		if confirmErr := accountRepo.ConfirmVerification(ctx, account.ID, input.Code, now); confirmErr != nil {
			if errors.Is(confirmErr, repository.ErrStaleGuard) {
				return errors.Wrap(domainerrors.ErrOTPInvalid, "verification failed")
			}

			return errors.Wrap(confirmErr, "failed to confirm verification")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute verification transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute verification transaction")
	}

	sessionToken, err := srv.tokenService.Generate(account.ID, account.TokenVersion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token after verification")
	}

	// Welcome mail is best effort; a failure never undoes the verification.
	if err := srv.mailer.SendWelcome(ctx, account.Email, account.Name); err != nil {
		srv.log(ctx).Warn("Failed to send welcome mail", slog.Any("accountID", account.ID), slog.Any("error", err))
	}
	srv.log(ctx).Debug("Account verified", slog.Any("accountID", account.ID))

	return &usecase.ConfirmEmailOTPOutput{SessionToken: sessionToken}, nil
}

// RequestPasswordReset issues a single-use reset token and mails the reset
// link. Only the token's hash is stored; the raw token exists solely in the mail.
func (srv *verificationService) RequestPasswordReset(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)
	srv.log(ctx).Info("Requesting password reset", slog.String("email", email))

	rawToken, err := generateResetToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}
	tokenHash := hashResetToken(rawToken)

	var account *entity.Account
	resetExpiry := time.Now().Add(srv.resetTokenTTL)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		var findErr error
		account, findErr = accountRepo.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "no account for password reset")
			}

			return errors.Wrap(findErr, "failed to find account by email")
		}

		if !account.IsLocal() {
			return errors.Wrap(
				domainerrors.ErrProviderMismatch.WithDetails("this account signs in via "+account.Provider.String()),
				"password reset rejected for oauth account",
			)
		}

		if setErr := accountRepo.SetResetToken(ctx, account.ID, tokenHash, resetExpiry); setErr != nil {
			return errors.Wrap(setErr, "failed to store reset token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute password reset transaction", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	resetURL := srv.resetBaseURL + "/" + rawToken
	if err := srv.mailer.SendPasswordReset(ctx, account.Email, account.Name, resetURL); err != nil {
		srv.log(ctx).Error("Failed to send reset mail", slog.Any("accountID", account.ID), slog.Any("error", err))

		if clearErr := srv.accountRepo.ClearResetToken(ctx, account.ID); clearErr != nil {
			srv.log(ctx).Error("Failed to clear reset token after mail failure", slog.Any("accountID", account.ID), slog.Any("error", clearErr))
		}

		return errors.Wrap(domainerrors.ErrMailDelivery, "failed to send reset mail")
	}
	srv.log(ctx).Debug("Password reset mail sent", slog.Any("accountID", account.ID))

	return nil
}

// CompleteReset consumes a reset token and replaces the password. The guarded
// update bumps the token version, so every session issued before the reset is
// invalidated.
func (srv *verificationService) CompleteReset(ctx context.Context, input usecase.CompleteResetInput) (*usecase.CompleteResetOutput, error) {
	srv.log(ctx).Info("Completing password reset")

	if input.Password != input.PasswordConfirm {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("passwords do not match")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	newPasswordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during reset")
	}

	tokenHash := hashResetToken(input.Token)
	now := time.Now()

	var account *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		found, findErr := accountRepo.FindByResetTokenHash(ctx, tokenHash, now)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "password reset failed")
			}

			return errors.Wrap(findErr, "failed to find account by reset token")
		}

		if completeErr := accountRepo.CompleteReset(ctx, found.ID, tokenHash, newPasswordHash, now); completeErr != nil {
			if errors.Is(completeErr, repository.ErrStaleGuard) {
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "password reset failed")
			}

			return errors.Wrap(completeErr, "failed to complete password reset")
		}

		// Reload to pick up the bumped token version for the fresh session.
		var reloadErr error
		account, reloadErr = accountRepo.FindByID(ctx, found.ID)
		if reloadErr != nil {
			return errors.Wrap(reloadErr, "failed to reload account after reset")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute password reset completion transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute password reset completion transaction")
	}

	sessionToken, err := srv.tokenService.Generate(account.ID, account.TokenVersion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token after reset")
	}
	srv.log(ctx).Debug("Password reset completed", slog.Any("accountID", account.ID))

	return &usecase.CompleteResetOutput{SessionToken: sessionToken}, nil
}
