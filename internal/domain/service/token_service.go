// Package service defines domain service contracts that require
// infrastructure capabilities (signing, hashing, mail, blob storage).
package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the operations for creating and validating
// access/refresh token pairs.
type TokenService interface {
	// GenerateTokens creates a new access and refresh token pair for a user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken verifies an access token and returns the user ID it
	// was issued for.
	ValidateAccessToken(tokenString string) (uuid.UUID, error)

	// ValidateRefreshToken verifies a refresh token's signature and expiry and
	// returns the user ID it was issued for.
	ValidateRefreshToken(tokenString string) (uuid.UUID, error)

	// HashToken produces the storable hash of a refresh token. Only hashes
	// are persisted, never the tokens themselves.
	HashToken(token string) string

	// RefreshTokenDuration reports how long issued refresh tokens live, used
	// when persisting session records.
	RefreshTokenDuration() time.Duration
}
