package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrHandleTaken is returned when the unique handle constraint is violated.
	ErrHandleTaken = errors.New("handle already taken")
	// ErrProfileExists is returned when the user already has a profile.
	ErrProfileExists = errors.New("profile already exists for user")
)

// ProfileRepository defines persistence operations for profiles.
type ProfileRepository interface {
	// FindByID retrieves a profile by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindByUserID retrieves the profile owned by the given user, if any.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// FindByHandle retrieves a profile by its unique handle.
	FindByHandle(ctx context.Context, handle string) (*entity.Profile, error)

	// Create persists a new profile linked to its owning user.
	Create(ctx context.Context, profile *entity.Profile) error

	// Update modifies an existing profile, including avatar link changes.
	Update(ctx context.Context, profile *entity.Profile) error

	// List returns profiles ordered by creation time descending for the
	// public directory.
	List(ctx context.Context, limit, offset int) ([]*entity.Profile, error)
}
