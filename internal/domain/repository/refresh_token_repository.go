package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when a refresh token has expired.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// RefreshTokenRepository defines session persistence. Each record represents
// one signed-in device; deleting it revokes the session.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a refresh token record by its stored hash.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash deletes a refresh token by its hash, ending that session.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID removes all refresh tokens for a user ("sign out
	// everywhere").
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
