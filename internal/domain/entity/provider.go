// Package entity contains the core business objects of the project.
package entity

// ProviderType represents the authentication method that established an
// account's identity.
type ProviderType string

const (
	// ProviderLocal indicates password-based authentication.
	ProviderLocal ProviderType = "local"
	// ProviderGoogle indicates identity delegated to Google Sign-In.
	ProviderGoogle ProviderType = "google"
	// ProviderGitHub indicates identity delegated to GitHub OAuth.
	ProviderGitHub ProviderType = "github"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the ProviderType is a known value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderLocal, ProviderGoogle, ProviderGitHub:
		return true
	default:
		return false
	}
}
