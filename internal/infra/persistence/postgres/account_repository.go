package postgres

import (
	"context"
	"time"

	"chaincast/internal/domain/entity"
	domainerrors "chaincast/internal/domain/errors"
	"chaincast/internal/domain/repository"
	"chaincast/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return accountM.ToDomain(), nil
}

// FindByEmail retrieves a single account by its normalized email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return accountM.ToDomain(), nil
}

// FindByResetTokenHash retrieves the account holding an unexpired reset token
// with the given hash.
func (repo *accountRepository) FindByResetTokenHash(ctx context.Context, tokenHash string, now time.Time) (*entity.Account, error) {
	var accountM model.AccountModel

	err := repo.db.WithContext(ctx).
		Where("reset_token_hash = ? AND reset_token_expiry > ?", tokenHash, now).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by reset token")
	}

	return accountM.ToDomain(), nil
}

// Create persists a new account entity to the database.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	// Map the pure domain entity to a GORM persistence model.
	accountM := model.FromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}

		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the entity with the generated timestamps.
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account entity in the database.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := model.FromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountUpdateFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// SetVerificationCode stores a fresh OTP and its expiry, replacing any
// outstanding one.
func (repo *accountRepository) SetVerificationCode(ctx context.Context, id uuid.UUID, code string, expiry time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"otp":        code,
			"otp_expiry": expiry,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set verification code")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// ConfirmVerification marks the account verified and clears the OTP fields in
// one guarded update. The guard requires the code to still match and to be
// unexpired, so a replayed or raced confirmation affects zero rows.
func (repo *accountRepository) ConfirmVerification(ctx context.Context, id uuid.UUID, code string, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND otp = ? AND otp_expiry > ? AND is_verified = ?", id, code, now, false).
		Updates(map[string]any{
			"is_verified": true,
			"otp":         "",
			"otp_expiry":  nil,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to confirm verification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaleGuard
	}

	return nil
}

// ClearVerificationCode removes any outstanding OTP.
func (repo *accountRepository) ClearVerificationCode(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"otp":        "",
			"otp_expiry": nil,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear verification code")
	}

	return nil
}

// MarkVerified flips IsVerified without an OTP exchange.
func (repo *accountRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_verified": true,
			"otp":         "",
			"otp_expiry":  nil,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark account verified")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// SetResetToken stores the one-way hash of a reset token and its expiry,
// replacing any outstanding one.
func (repo *accountRepository) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reset_token_hash":   tokenHash,
			"reset_token_expiry": expiry,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set reset token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// CompleteReset swaps in the new password hash, clears the reset fields and
// bumps the token version in one guarded update. The guard requires the token
// hash to still match and to be unexpired, so a second use of the same token
// affects zero rows.
func (repo *accountRepository) CompleteReset(ctx context.Context, id uuid.UUID, tokenHash, newPasswordHash string, now time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND reset_token_hash = ? AND reset_token_expiry > ?", id, tokenHash, now).
		Updates(map[string]any{
			"password_hash":      newPasswordHash,
			"reset_token_hash":   "",
			"reset_token_expiry": nil,
			"token_version":      gorm.Expr("token_version + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete password reset")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaleGuard
	}

	return nil
}

// ClearResetToken removes any outstanding reset token.
func (repo *accountRepository) ClearResetToken(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"reset_token_hash":   "",
			"reset_token_expiry": nil,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear reset token")
	}

	return nil
}
