// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"chaincast/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence. This allows the application
// layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when creating an account whose normalized
	// email already exists, regardless of provider.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrStaleGuard is returned when a guarded conditional update matched no
	// row, meaning the OTP or reset token no longer holds.
	ErrStaleGuard = errors.New("guarded update matched no row")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
//
// ConfirmVerification and CompleteReset are single guarded updates: the
// row is only modified while the code/token still matches and has not
// expired, so two concurrent confirmations cannot both succeed.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByResetTokenHash retrieves the account holding an unexpired reset
	// token with the given hash.
	FindByResetTokenHash(ctx context.Context, tokenHash string, now time.Time) (*entity.Account, error)

	// Create persists a new account. Fails with ErrDuplicateEmail when the
	// normalized email is already registered under any provider.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// SetVerificationCode stores a fresh OTP and its expiry on the account.
	SetVerificationCode(ctx context.Context, id uuid.UUID, code string, expiry time.Time) error

	// ConfirmVerification marks the account verified and clears the OTP
	// fields in one guarded update keyed on the code still matching and not
	// having expired. Returns ErrStaleGuard when the guard fails.
	ConfirmVerification(ctx context.Context, id uuid.UUID, code string, now time.Time) error

	// ClearVerificationCode removes any outstanding OTP, leaving the account
	// in a clean, retryable state.
	ClearVerificationCode(ctx context.Context, id uuid.UUID) error

	// MarkVerified flips IsVerified without an OTP exchange. Used only by the
	// explicit development auto-verify policy.
	MarkVerified(ctx context.Context, id uuid.UUID) error

	// SetResetToken stores the one-way hash of a reset token and its expiry.
	SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiry time.Time) error

	// CompleteReset swaps in the new password hash, clears the reset fields
	// and bumps the token version in one guarded update keyed on the token
	// hash still matching and not having expired. Returns ErrStaleGuard when
	// the guard fails.
	CompleteReset(ctx context.Context, id uuid.UUID, tokenHash, newPasswordHash string, now time.Time) error

	// ClearResetToken removes any outstanding reset token.
	ClearResetToken(ctx context.Context, id uuid.UUID) error
}
