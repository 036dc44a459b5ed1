package usecase

import "context"

// ConfirmEmailOTPInput carries the email/code pair submitted by the client.
type ConfirmEmailOTPInput struct {
	Email string
	Code  string
}

// CompleteResetInput carries the raw reset token from the email link plus the
// replacement password.
type CompleteResetInput struct {
	Token           string
	Password        string
	PasswordConfirm string
}

// ConfirmEmailOTPOutput returns the session token minted once the email is
// verified, so the client can proceed without a separate login.
type ConfirmEmailOTPOutput struct {
	SessionToken string
}

// CompleteResetOutput returns a fresh session token. Every token issued
// before the reset is invalidated.
type CompleteResetOutput struct {
	SessionToken string
}

// VerificationUsecase defines the token lifecycle operations: email OTP
// verification and password reset.
type VerificationUsecase interface {
	// ResendEmailOTP issues a fresh verification code to an unverified
	// account, replacing any outstanding one.
	ResendEmailOTP(ctx context.Context, email string) error

	// ConfirmEmailOTP validates a submitted code and marks the account
	// verified. A code can be consumed at most once.
	ConfirmEmailOTP(ctx context.Context, input ConfirmEmailOTPInput) (*ConfirmEmailOTPOutput, error)

	// RequestPasswordReset issues a single-use reset token and mails the
	// reset link. Only the token's hash is stored.
	RequestPasswordReset(ctx context.Context, email string) error

	// CompleteReset consumes a reset token and replaces the password,
	// invalidating all outstanding sessions.
	CompleteReset(ctx context.Context, input CompleteResetInput) (*CompleteResetOutput, error)
}
