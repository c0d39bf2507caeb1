package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrLoginCodeNotFound is returned when no pending code exists for an email.
var ErrLoginCodeNotFound = errors.New("login code not found")

// LoginCodeRepository defines persistence operations for pending magic codes.
// At most one pending code exists per email.
type LoginCodeRepository interface {
	// Replace stores a new pending code for the email, discarding any
	// previous one.
	Replace(ctx context.Context, code *entity.LoginCode) error

	// FindByEmail retrieves the pending code for an email.
	FindByEmail(ctx context.Context, email string) (*entity.LoginCode, error)

	// Update persists attempt-count changes.
	Update(ctx context.Context, code *entity.LoginCode) error

	// DeleteByEmail consumes the pending code for an email.
	DeleteByEmail(ctx context.Context, email string) error
}
