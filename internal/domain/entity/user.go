// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated principal behind a profile. It carries only
// identity data; everything public-facing lives on the Profile. A User with a
// nil Profile is still onboarding and must create one before authoring
// anything.
type User struct {
	ID        uuid.UUID // Global unique identifier issued at first sign-in.
	Email     string    // Sign-in address, unique across the system.
	Profile   *Profile  // The user's public identity. Nil while onboarding.
	CreatedAt time.Time
	UpdatedAt time.Time
}
