package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a server-side session record. Only the SHA-256 hash of the
// issued refresh JWT is stored; deleting the record revokes the session.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
