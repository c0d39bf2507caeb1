// Package mail delivers one-time sign-in codes to users.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"quill/config"
	"quill/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer sends login codes through a plain SMTP relay.
type smtpMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.SMTPConfig) (service.CodeMailer, error) {
	if cfg == nil || cfg.Host == "" || cfg.From == "" {
		return nil, errors.New("smtp host and from address must be provided")
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		from: cfg.From,
		auth: auth,
	}, nil
}

// SendLoginCode delivers the code as a short plain-text email.
func (m *smtpMailer) SendLoginCode(ctx context.Context, email, code string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context cancelled before sending mail")
	}

	msg := buildLoginCodeMessage(m.from, email, code)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{email}, msg); err != nil {
		return errors.Wrap(err, "failed to send login code mail")
	}

	return nil
}

func buildLoginCodeMessage(from, to, code string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: Your sign-in code\r\n")
	fmt.Fprintf(&b, "\r\n")
	fmt.Fprintf(&b, "Your sign-in code is %s. It expires shortly; if you didn't request it, ignore this mail.\r\n", code)

	return []byte(b.String())
}
