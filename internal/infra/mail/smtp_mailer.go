// Package mail implements the Mailer domain service over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"chaincast/config"
	"chaincast/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

const defaultSendTimeout = 10 * time.Second

// smtpMailer sends transactional mail through a single SMTP dialer.
type smtpMailer struct {
	dialer      *gomail.Dialer
	from        string
	sendTimeout time.Duration
	logger      *slog.Logger
}

// NewSMTPMailer creates the SMTP-backed Mailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" || cfg.Mail.Port == 0 {
		return nil, errors.New("mail host and port must be provided")
	}
	if cfg.Mail.From == "" {
		return nil, errors.New("mail sender address must be provided")
	}

	sendTimeout := cfg.Mail.SendTimeout
	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}

	return &smtpMailer{
		dialer:      gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password),
		from:        cfg.Mail.From,
		sendTimeout: sendTimeout,
		logger:      logger,
	}, nil
}

// SendVerificationCode delivers a signup OTP.
func (m *smtpMailer) SendVerificationCode(ctx context.Context, to, name, code string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour verification code is: %s\n\nIt expires shortly, so enter it soon.\nIf you did not sign up, you can ignore this mail.\n",
		name, code,
	)

	return m.send(ctx, to, "Verify your email address", body)
}

// SendPasswordReset delivers the password reset link.
func (m *smtpMailer) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nYou requested a password reset. Open the link below to choose a new password:\n\n%s\n\nThe link is valid for a few minutes and works only once.\nIf you did not request this, you can ignore this mail.\n",
		name, resetURL,
	)

	return m.send(ctx, to, "Reset your password", body)
}

// SendWelcome delivers a post-verification greeting.
func (m *smtpMailer) SendWelcome(ctx context.Context, to, name string) error {
	body := fmt.Sprintf("Hi %s,\n\nYour email address is verified and your account is ready to use.\n", name)

	return m.send(ctx, to, "Welcome aboard", body)
}

// send delivers one message, bounded by the configured timeout. gomail dials
// synchronously, so the dial-and-send runs in a goroutine and the caller
// observes either its result or the context ending first.
func (m *smtpMailer) send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	sendCtx, cancel := context.WithTimeout(ctx, m.sendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "failed to deliver mail")
		}

		return nil
	case <-sendCtx.Done():
		m.logger.Warn("Mail send abandoned", slog.String("subject", subject), slog.Any("error", sendCtx.Err()))

		return errors.Wrap(sendCtx.Err(), "mail send timed out")
	}
}
