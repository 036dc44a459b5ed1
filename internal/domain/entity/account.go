// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// emailPattern matches the email shape accepted at signup. Stricter RFC
// validation is left to the delivery-layer validator; this guards the domain.
var emailPattern = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*@([\w-]+\.)+[a-zA-Z]{2,7}$`)

// Account is the core entity of the system, representing a single registered
// identity. It carries both the durable identity fields and the transient
// verification/reset fields that are set and cleared together per request cycle.
type Account struct {
	ID           uuid.UUID    // Immutable unique identifier.
	Name         string       // Display name.
	Email        string       // Unique login identifier, stored normalized (lowercase, trimmed).
	PasswordHash string       // bcrypt hash; present only when Provider is local. Never serialized.
	Provider     ProviderType // How this account proves its identity. Immutable after creation.
	IsVerified   bool         // Whether the email address has been proven. Flips to true exactly once.
	TokenVersion int          // Incremented on password reset to invalidate outstanding session tokens.

	// Email verification fields. Set together when an OTP is issued,
	// cleared together when it is confirmed or abandoned.
	OTP       string
	OTPExpiry *time.Time

	// Password reset fields. Only the SHA-256 hash of the mailed token is
	// stored; both fields are set and cleared together.
	ResetTokenHash   string
	ResetTokenExpiry *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLocal reports whether the account authenticates with a stored password.
func (a *Account) IsLocal() bool {
	return a.Provider == ProviderLocal
}

// HasPendingOTP reports whether an unexpired verification code is outstanding.
func (a *Account) HasPendingOTP(now time.Time) bool {
	return a.OTP != "" && a.OTPExpiry != nil && now.Before(*a.OTPExpiry)
}

// NormalizeEmail lowercases and trims an email address so lookups and
// uniqueness checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether the given address is email-shaped.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
