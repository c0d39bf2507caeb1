package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"quill/config"
	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/policy"
	"quill/internal/domain/repository"
	"quill/internal/domain/service"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager      repository.TransactionManager
	profileRepo    repository.ProfileRepository
	avatarStore    service.AvatarStore
	maxAvatarBytes int64
	seedPosts      bool
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	AvatarStore service.AvatarStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	var maxAvatarBytes int64 = 2 << 20
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxAvatarBytes > 0 {
		maxAvatarBytes = params.Config.Storage.MaxAvatarBytes
	}
	seedPosts := params.Config != nil && params.Config.Seed != nil && params.Config.Seed.ExamplePosts

	return &profileService{
		txManager:      params.TxManager,
		profileRepo:    params.ProfileRepo,
		avatarStore:    params.AvatarStore,
		maxAvatarBytes: maxAvatarBytes,
		seedPosts:      seedPosts,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProfile claims a handle for the user. A user gets exactly one
// profile, and handles are unique across the whole service.
func (srv *profileService) CreateProfile(ctx context.Context, userID uuid.UUID, input usecase.CreateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Creating profile", slog.Any("userID", userID), slog.String("handle", input.Handle))

	if !entity.ValidHandle(input.Handle) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "handle may only contain letters, numbers, hyphen and underscore")
	}

	newProfile := &entity.Profile{
		UserID:      userID,
		Handle:      input.Handle,
		Bio:         input.Bio,
		SocialLinks: pruneSocialLinks(input.SocialLinks),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		_, err := profileRepo.FindByUserID(ctx, userID)
		if err == nil {
			return errors.Wrap(domainerrors.ErrProfileExists, "user already has a profile")
		}
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to check existing profile")
		}

		if err := profileRepo.Create(ctx, newProfile); err != nil {
			if errors.Is(err, repository.ErrHandleTaken) {
				return errors.Wrap(domainerrors.ErrHandleTaken, "handle already claimed")
			}

			return errors.Wrap(err, "failed to create profile")
		}

		if srv.seedPosts {
			return srv.seedExamplePosts(ctx, repoFactory.PostRepo(), newProfile)
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile creation transaction")
	}
	srv.log(ctx).Debug("Profile created", slog.Any("profileID", newProfile.ID))

	return newProfile, nil
}

// seedExamplePosts gives a brand-new author something to look at: two
// published posts and one draft, staggered into the past so the listing
// order is visible immediately.
func (srv *profileService) seedExamplePosts(ctx context.Context, postRepo repository.PostRepository, profile *entity.Profile) error {
	now := time.Now()
	examples := []*entity.Post{
		{
			AuthorID:  profile.ID,
			Title:     "Welcome to my blog",
			Content:   "This is my first post. I'm excited to start writing here!",
			Published: true,
			CreatedAt: now,
		},
		{
			AuthorID:  profile.ID,
			Title:     "Getting started with writing",
			Content:   "Writing regularly is a great way to clarify your thinking.",
			Published: true,
			CreatedAt: now.Add(-30 * time.Minute),
		},
		{
			AuthorID:  profile.ID,
			Title:     "My unpublished thoughts",
			Content:   "This is a draft post that only I can see.",
			Published: false,
			CreatedAt: now.Add(-time.Hour),
		},
	}

	for _, post := range examples {
		if err := postRepo.Create(ctx, post); err != nil {
			return errors.Wrap(err, "failed to seed example post")
		}
	}

	return nil
}

// UpdateProfile applies a partial update to the user's own profile. Changing
// the handle re-runs the same validation and uniqueness rules as claiming one.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	if input.Handle != nil && !entity.ValidHandle(*input.Handle) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "handle may only contain letters, numbers, hyphen and underscore")
	}

	var updated *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		profile, err := srv.requireProfile(ctx, profileRepo, userID)
		if err != nil {
			return err
		}

		if input.Handle != nil {
			profile.Handle = *input.Handle
		}
		if input.Bio != nil {
			profile.Bio = *input.Bio
		}
		if input.SocialLinks != nil {
			profile.SocialLinks = pruneSocialLinks(input.SocialLinks)
		}

		if err := profileRepo.Update(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrHandleTaken) {
				return errors.Wrap(domainerrors.ErrHandleTaken, "handle already claimed")
			}

			return errors.Wrap(err, "failed to update profile")
		}
		updated = profile

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}

	return updated, nil
}

// GetByHandle resolves a public author page by handle.
func (srv *profileService) GetByHandle(ctx context.Context, handle string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "no author with that handle")
		}

		return nil, errors.Wrap(err, "failed to find profile by handle")
	}

	return profile, nil
}

// ListProfiles returns one page of the public author directory, newest first.
func (srv *profileService) ListProfiles(ctx context.Context, page int) (*usecase.ProfileListOutput, error) {
	p := policy.NewPage(page)

	profiles, err := srv.profileRepo.List(ctx, p.Size, p.Offset())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return &usecase.ProfileListOutput{
		Profiles: profiles,
		Page:     p.Number,
		HasMore:  p.HasMore(len(profiles)),
	}, nil
}

// ReplaceAvatar uploads the new image first and only then swaps the profile's
// avatar link, so a failed upload never leaves the profile pointing at
// nothing. The old blob is removed best-effort afterwards.
func (srv *profileService) ReplaceAvatar(ctx context.Context, userID uuid.UUID, input usecase.ReplaceAvatarInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Replacing avatar", slog.Any("userID", userID))

	if !isImageContentType(input.ContentType) {
		return nil, errors.Wrap(domainerrors.ErrAvatarNotImage, "avatar must be an image")
	}
	if input.Size > srv.maxAvatarBytes {
		return nil, errors.Wrap(domainerrors.ErrAvatarTooLarge, "avatar exceeds size limit")
	}

	profile, err := srv.requireProfile(ctx, srv.profileRepo, userID)
	if err != nil {
		return nil, err
	}

	newPath := avatarPath(profile.ID, input.ContentType)
	url, err := srv.avatarStore.Upload(ctx, newPath, input.ContentType, input.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to upload avatar")
	}

	oldAvatar := profile.Avatar
	profile.Avatar = &entity.Avatar{Path: newPath, URL: url}

	if err := srv.updateAvatarLink(ctx, profile); err != nil {
		// Roll back the orphaned upload so the bucket doesn't accumulate
		// unreferenced blobs.
		if delErr := srv.avatarStore.Delete(ctx, newPath); delErr != nil {
			srv.log(ctx).Warn("Failed to remove orphaned avatar upload", slog.String("path", newPath), slog.Any("error", delErr))
		}

		return nil, err
	}

	srv.discardOldAvatar(ctx, oldAvatar)

	return profile, nil
}

// RemoveAvatar clears the avatar link and discards the stored image.
func (srv *profileService) RemoveAvatar(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	srv.log(ctx).Info("Removing avatar", slog.Any("userID", userID))

	profile, err := srv.requireProfile(ctx, srv.profileRepo, userID)
	if err != nil {
		return nil, err
	}
	if profile.Avatar == nil {
		return profile, nil
	}

	oldAvatar := profile.Avatar
	profile.Avatar = nil

	if err := srv.updateAvatarLink(ctx, profile); err != nil {
		return nil, err
	}

	srv.discardOldAvatar(ctx, oldAvatar)

	return profile, nil
}

func (srv *profileService) updateAvatarLink(ctx context.Context, profile *entity.Profile) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.ProfileRepo().Update(ctx, profile), "failed to update avatar link")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute avatar update transaction")
	}

	return nil
}

// discardOldAvatar removes a replaced image best-effort. The profile already
// points at the new image, so a failed delete only leaks a blob.
func (srv *profileService) discardOldAvatar(ctx context.Context, old *entity.Avatar) {
	if old == nil {
		return
	}
	if err := srv.avatarStore.Delete(ctx, old.Path); err != nil {
		srv.log(ctx).Warn("Failed to delete old avatar", slog.String("path", old.Path), slog.Any("error", err))
	}
}

// requireProfile loads the user's profile or fails with ErrProfileRequired,
// since profile-owned operations are meaningless without one.
func (srv *profileService) requireProfile(ctx context.Context, profileRepo repository.ProfileRepository, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileRequired, "user has no profile yet")
		}

		return nil, errors.Wrap(err, "failed to load profile for user")
	}

	return profile, nil
}

// pruneSocialLinks drops entries whose value is blank, so clearing a link is
// just sending it empty.
func pruneSocialLinks(links map[string]string) map[string]string {
	if links == nil {
		return nil
	}

	pruned := make(map[string]string, len(links))
	for platform, url := range links {
		if strings.TrimSpace(url) == "" {
			continue
		}
		pruned[platform] = url
	}

	return pruned
}

func isImageContentType(contentType string) bool {
	return len(contentType) > 6 && contentType[:6] == "image/"
}

// avatarPath derives a unique storage key per upload so replacing an avatar
// never overwrites the blob a stale page might still be serving.
func avatarPath(profileID uuid.UUID, contentType string) string {
	ext := map[string]string{
		"image/png":  ".png",
		"image/jpeg": ".jpg",
		"image/gif":  ".gif",
		"image/webp": ".webp",
	}[contentType]
	if ext == "" {
		ext = ".img"
	}

	return path.Join("avatars", profileID.String(), fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))
}
