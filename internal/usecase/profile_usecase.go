// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// CreateProfile claims a handle for the signed-in user. Each user may
	// create at most one profile.
	CreateProfile(ctx context.Context, userID uuid.UUID, input CreateProfileInput) (*entity.Profile, error)

	// UpdateProfile modifies the signed-in user's own profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.Profile, error)

	// GetByHandle resolves a public author page by handle.
	GetByHandle(ctx context.Context, handle string) (*entity.Profile, error)

	// ListProfiles returns one page of the public author directory.
	ListProfiles(ctx context.Context, page int) (*ProfileListOutput, error)

	// ReplaceAvatar uploads a new avatar image and discards the previous one.
	ReplaceAvatar(ctx context.Context, userID uuid.UUID, input ReplaceAvatarInput) (*entity.Profile, error)

	// RemoveAvatar deletes the signed-in user's avatar, if any.
	RemoveAvatar(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}

// --- Input DTOs ---

// CreateProfileInput defines the data required to create a profile.
type CreateProfileInput struct {
	Handle      string
	Bio         string
	SocialLinks map[string]string
}

// UpdateProfileInput defines the data for a partial profile update. Nil
// fields are left unchanged.
type UpdateProfileInput struct {
	Handle      *string
	Bio         *string
	SocialLinks map[string]string
}

// ReplaceAvatarInput carries the uploaded avatar image.
type ReplaceAvatarInput struct {
	ContentType string
	Size        int64
	Body        io.Reader
}

// --- Output DTOs ---

// ProfileListOutput is one page of the author directory.
type ProfileListOutput struct {
	Profiles []*entity.Profile
	Page     int
	HasMore  bool
}
