package impl

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"

	"chaincast/internal/errors"
)

const (
	otpDigits       = 6
	resetTokenBytes = 32
)

// generateOTP returns a zero-padded numeric code from a CSPRNG.
func generateOTP() (string, error) {
	maxValue := big.NewInt(1)
	for range otpDigits {
		maxValue.Mul(maxValue, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, maxValue)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate verification code")
	}

	return fmt.Sprintf("%0*d", otpDigits, n), nil
}

// generateResetToken returns the raw token sent to the user and never stored.
func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate reset token")
	}

	return hex.EncodeToString(buf), nil
}

// hashResetToken derives the storable one-way hash of a raw reset token.
func hashResetToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))

	return hex.EncodeToString(sum[:])
}
