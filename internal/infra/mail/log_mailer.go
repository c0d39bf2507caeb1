package mail

import (
	"context"
	"log/slog"

	"quill/internal/domain/service"
)

// logMailer writes codes to the log instead of sending mail. Used in
// development, where no SMTP relay is configured.
type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer is the constructor for logMailer.
func NewLogMailer(logger *slog.Logger) service.CodeMailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) SendLoginCode(_ context.Context, email, code string) error {
	m.logger.Info("Sign-in code issued (mail delivery disabled)",
		slog.String("email", email),
		slog.String("code", code))

	return nil
}
