// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"chaincast/config"
	"chaincast/internal/domain/service"
	"chaincast/internal/errors"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt silently truncates inputs beyond 72 bytes.
	maxPasswordBytes = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	var strength *config.PasswordStrengthConfig
	if cfg != nil {
		if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			cost = cfg.Auth.BcryptCost
		}
		strength = cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost factor.
// Lower costs keep test suites fast.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks a plaintext password against the configured
// strength requirements. Only the minimum length is enforced when no strength
// configuration is present.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLength := defaultMinPasswordLength
	maxLength := maxPasswordBytes
	if h.strength != nil {
		if h.strength.MinLength > 0 {
			minLength = h.strength.MinLength
		}
		if h.strength.MaxLength > 0 && h.strength.MaxLength < maxLength {
			maxLength = h.strength.MaxLength
		}
	}

	if len(password) < minLength {
		return errors.Errorf("password must be at least %d characters long", minLength)
	}
	if len(password) > maxLength {
		return errors.Errorf("password must be at most %d characters long", maxLength)
	}

	if h.strength == nil {
		return nil
	}

	if h.strength.RequireUppercase && !h.hasUppercase(password) {
		return errors.New("password must contain at least one uppercase letter")
	}
	if h.strength.RequireLowercase && !h.hasLowercase(password) {
		return errors.New("password must contain at least one lowercase letter")
	}
	if h.strength.RequireNumbers && !h.hasNumbers(password) {
		return errors.New("password must contain at least one number")
	}
	if h.strength.RequireSpecial && !h.hasSpecialChars(password) {
		return errors.New("password must contain at least one special character")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}

	return false
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}

	return false
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}

	return false
}
