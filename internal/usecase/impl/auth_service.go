// Package impl contains the implementation of the application's business logic.
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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultOTPTTL = 5 * time.Minute

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	accountRepo   repository.AccountRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	mailer        service.Mailer
	verifiers     map[entity.ProviderType]service.OAuthVerifier
	otpTTL        time.Duration
	devAutoVerify bool
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AccountRepo    repository.AccountRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Mailer         service.Mailer
	GoogleVerifier service.OAuthVerifier `name:"googleVerifier"`
	GithubVerifier service.OAuthVerifier `name:"githubVerifier"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	otpTTL := defaultOTPTTL
	devAutoVerify := false
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.OTPTTL > 0 {
			otpTTL = params.Config.Auth.OTPTTL
		}
		devAutoVerify = params.Config.Auth.DevAutoVerify
	}

	verifiers := make(map[entity.ProviderType]service.OAuthVerifier)
	for _, verifier := range []service.OAuthVerifier{params.GoogleVerifier, params.GithubVerifier} {
		if verifier != nil {
			verifiers[verifier.Provider()] = verifier
		}
	}

	return &authService{
		txManager:     params.TxManager,
		accountRepo:   params.AccountRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		mailer:        params.Mailer,
		verifiers:     verifiers,
		otpTTL:        otpTTL,
		devAutoVerify: devAutoVerify,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the complete local registration process: the account is
// created unverified with a pending verification code, then the code is
// mailed. A failed delivery leaves the account in a clean, retryable state
// unless development auto-verify is enabled.
func (srv *authService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	email := entity.NormalizeEmail(input.Email)
	if !entity.ValidEmail(email) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email address is not valid")
	}
	if input.Password != input.PasswordConfirm {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("passwords do not match")
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during signup", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordStrength, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during signup")
	}

	code, err := generateOTP()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}

	otpExpiry := time.Now().Add(srv.otpTTL)
	newAccount := &entity.Account{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Provider:     entity.ProviderLocal,
		OTP:          code,
		OTPExpiry:    &otpExpiry,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, findErr := accountRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		if createErr := accountRepo.Create(ctx, newAccount); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
			}

			return errors.Wrap(createErr, "failed to create account during signup")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute signup transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	if err := srv.mailer.SendVerificationCode(ctx, newAccount.Email, newAccount.Name, code); err != nil {
		return srv.handleSignupMailFailure(ctx, newAccount, err)
	}

	srv.log(ctx).Debug("Signup completed, verification code sent", slog.Any("accountID", newAccount.ID))

	return &usecase.SignupOutput{Account: newAccount}, nil
}

// handleSignupMailFailure decides what a signup becomes when the verification
// mail cannot be delivered. The development policy verifies the account on the
// spot; the default policy clears the pending code and surfaces the failure so
// the client can retry with resend.
func (srv *authService) handleSignupMailFailure(ctx context.Context, account *entity.Account, mailErr error) (*usecase.SignupOutput, error) {
	srv.log(ctx).Error("Failed to send verification mail", slog.Any("accountID", account.ID), slog.Any("error", mailErr))

	if srv.devAutoVerify {
		if err := srv.accountRepo.MarkVerified(ctx, account.ID); err != nil {
			return nil, errors.Wrap(err, "failed to auto-verify account after mail failure")
		}
		account.IsVerified = true
		account.OTP = ""
		account.OTPExpiry = nil

		sessionToken, err := srv.tokenService.Generate(account.ID, account.TokenVersion)
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate session token after auto-verify")
		}
		srv.log(ctx).Warn("Mail delivery failed, account auto-verified by development policy", slog.Any("accountID", account.ID))

		return &usecase.SignupOutput{Account: account, SessionToken: sessionToken}, nil
	}

	if err := srv.accountRepo.ClearVerificationCode(ctx, account.ID); err != nil {
		srv.log(ctx).Error("Failed to clear verification code after mail failure", slog.Any("accountID", account.ID), slog.Any("error", err))
	}

	return nil, errors.Wrap(domainerrors.ErrMailDelivery, "failed to send verification mail")
}

// Login orchestrates the local login process.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	email := entity.NormalizeEmail(input.Email)

	account, err := srv.loadLoginAccount(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound). A missing
	// account and a wrong password produce the same error on purpose.
	if !account.IsLocal() || !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	// Verification is only checked after the password matched so the response
	// never confirms credentials for an address the caller does not control.
	if !account.IsVerified {
		srv.log(ctx).Warn("Login rejected for unverified account", slog.Any("accountID", account.ID))

		return nil, errors.Wrap(domainerrors.ErrNotVerified, "login rejected")
	}

	sessionToken, err := srv.tokenService.Generate(account.ID, account.TokenVersion)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate session token")
	}
	srv.log(ctx).Debug("Logged in successfully", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		SessionToken: sessionToken,
		Account:      account,
	}, nil
}

func (srv *authService) loadLoginAccount(ctx context.Context, email string) (*entity.Account, error) {
	var account *entity.Account

	// Load the account from primary in a short transaction to avoid stale reads.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		var findErr error
		account, findErr = accountRepo.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find account by email")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	return account, nil
}

// OAuthLogin verifies a provider credential, then finds or creates the
// account bound to the asserted email.
func (srv *authService) OAuthLogin(ctx context.Context, input usecase.OAuthLoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Handling OAuth login", slog.String("provider", input.Provider.String()))

	verifier, ok := srv.verifiers[input.Provider]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unsupported oauth provider")
	}

	identity, err := verifier.Verify(ctx, input.Credential)
	if err != nil {
		srv.log(ctx).Warn("OAuth credential verification failed", slog.String("provider", input.Provider.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to verify oauth credential")
	}

	account, err := srv.findOrCreateOAuthAccount(ctx, identity)
	if err != nil {
		return nil, err
	}

	sessionToken, err := srv.tokenService.Generate(account.ID, account.TokenVersion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token for oauth login")
	}
	srv.log(ctx).Debug("OAuth login completed", slog.Any("accountID", account.ID), slog.String("provider", input.Provider.String()))

	return &usecase.LoginOutput{
		SessionToken: sessionToken,
		Account:      account,
	}, nil
}

// findOrCreateOAuthAccount resolves the provider identity to a local account
// inside one transaction so two first logins for the same email cannot both
// create a row.
func (srv *authService) findOrCreateOAuthAccount(ctx context.Context, identity *service.ExternalIdentity) (*entity.Account, error) {
	email := entity.NormalizeEmail(identity.Email)

	var account *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		existing, findErr := accountRepo.FindByEmail(ctx, email)
		if findErr != nil && !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to find account by email")
		}

		if errors.Is(findErr, repository.ErrAccountNotFound) {
			created, createErr := srv.createOAuthAccount(ctx, accountRepo, identity, email)
			if createErr != nil {
				return createErr
			}
			account = created

			return nil
		}

		// The email is taken: only a matching provider may log in through it.
		if existing.Provider != identity.Provider {
			return errors.Wrap(
				domainerrors.ErrProviderMismatch.WithDetails("this email is registered via "+existing.Provider.String()),
				"oauth provider mismatch",
			)
		}

		// The provider is authoritative for the display name, so a rename
		// there is carried over on the next login.
		if identity.Name != "" && identity.Name != existing.Name {
			existing.Name = identity.Name
			if updateErr := accountRepo.Update(ctx, existing); updateErr != nil {
				return errors.Wrap(updateErr, "failed to refresh account profile")
			}
		}
		account = existing

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute oauth account transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute oauth account transaction")
	}

	return account, nil
}

// createOAuthAccount registers a new account for a provider-verified identity.
// The email was already proven by the provider, so the account starts verified.
func (srv *authService) createOAuthAccount(ctx context.Context, accountRepo repository.AccountRepository, identity *service.ExternalIdentity, email string) (*entity.Account, error) {
	srv.log(ctx).Info("OAuth account not found, creating new account", slog.String("email", email), slog.String("provider", identity.Provider.String()))

	newAccount := &entity.Account{
		ID:         uuid.New(),
		Name:       identity.Name,
		Email:      email,
		Provider:   identity.Provider,
		IsVerified: true,
	}

	if err := accountRepo.Create(ctx, newAccount); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken.WrapMessage("email registered concurrently")
		}

		return nil, errors.Wrap(err, "failed to create oauth account")
	}

	return newAccount, nil
}

// Me returns the account behind an authenticated session.
func (srv *authService) Me(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	srv.log(ctx).Debug("Fetching current account", slog.Any("accountID", accountID))

	// Single query operation - use direct repository instance
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}
