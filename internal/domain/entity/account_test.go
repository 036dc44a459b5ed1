package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM  "))
	assert.Equal(t, "user@example.com", NormalizeEmail("user@example.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@example.co.uk",
		"user-name@sub.example.org",
	}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), "expected valid: %s", email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@.com",
		"user@example",
	}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), "expected invalid: %s", email)
	}
}

func TestAccount_IsLocal(t *testing.T) {
	assert.True(t, (&Account{Provider: ProviderLocal}).IsLocal())
	assert.False(t, (&Account{Provider: ProviderGoogle}).IsLocal())
	assert.False(t, (&Account{Provider: ProviderGitHub}).IsLocal())
}

func TestAccount_HasPendingOTP(t *testing.T) {
	now := time.Now()
	future := now.Add(5 * time.Minute)
	past := now.Add(-5 * time.Minute)

	assert.True(t, (&Account{OTP: "123456", OTPExpiry: &future}).HasPendingOTP(now))
	assert.False(t, (&Account{OTP: "123456", OTPExpiry: &past}).HasPendingOTP(now))
	assert.False(t, (&Account{OTP: "", OTPExpiry: &future}).HasPendingOTP(now))
	assert.False(t, (&Account{OTP: "123456"}).HasPendingOTP(now))
}

func TestProviderType(t *testing.T) {
	assert.Equal(t, "local", ProviderLocal.String())
	assert.Equal(t, "google", ProviderGoogle.String())
	assert.Equal(t, "github", ProviderGitHub.String())

	assert.True(t, ProviderLocal.IsValid())
	assert.True(t, ProviderGoogle.IsValid())
	assert.True(t, ProviderGitHub.IsValid())
	assert.False(t, ProviderType("facebook").IsValid())
	assert.False(t, ProviderType("").IsValid())
}
