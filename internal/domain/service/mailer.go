package service

import "context"

// Mailer defines the external mail collaborator. Implementations must honor
// context cancellation so a slow SMTP server cannot hold a request open.
type Mailer interface {
	// SendVerificationCode delivers a signup OTP. The code is only ever sent
	// to the address being verified, never logged or returned to callers.
	SendVerificationCode(ctx context.Context, to, name, code string) error

	// SendPasswordReset delivers the raw reset token embedded in resetURL.
	SendPasswordReset(ctx context.Context, to, name, resetURL string) error

	// SendWelcome delivers a post-verification greeting. Best effort.
	SendWelcome(ctx context.Context, to, name string) error
}
