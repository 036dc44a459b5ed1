// Package service defines interfaces for stateless domain logic that does
// not belong to a single entity.
package service

// PasswordHasher hides the hashing algorithm from the domain. Credentials
// are only ever compared through Check, never by reading the hash back.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that do not meet the
	// configured minimum requirements.
	ValidatePasswordStrength(password string) error
}
