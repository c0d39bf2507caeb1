package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoginCode is a pending magic-code challenge for an email address. Only the
// bcrypt hash of the code is stored. At most one pending code exists per
// email; sending a new code replaces the previous one.
type LoginCode struct {
	ID        uuid.UUID
	Email     string
	CodeHash  string
	Attempts  int // Failed verification attempts against this code.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the code can no longer be redeemed.
func (c *LoginCode) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
