package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/policy"
	"quill/internal/domain/repository"
	mockRepo "quill/internal/mocks/repository"
	mockSvc "quill/internal/mocks/service"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	avatarStore *mockSvc.MockAvatarStore
}

func createTestProfileService(t *testing.T, seedExamplePosts bool) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	avatarStore := mockSvc.NewMockAvatarStore(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager:   txManager,
		ProfileRepo: profileRepo,
		AvatarStore: avatarStore,
		Config:      newSeedTestConfig(seedExamplePosts),
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:     service,
		txManager:   txManager,
		profileRepo: profileRepo,
		avatarStore: avatarStore,
	}
}

func TestProfileService_CreateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.CreateProfileInput{
		Handle:      "jane_writes",
		Bio:         "Essays about systems.",
		SocialLinks: map[string]string{"github": "https://github.com/jane"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockProfileRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(nil, repository.ErrProfileNotFound)

			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					profile.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	profile, err := fx.service.CreateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, input.Handle, profile.Handle)
	assert.Equal(t, userID, profile.UserID)
	assert.NotEqual(t, uuid.Nil, profile.ID)
}

func TestProfileService_CreateProfile_SeedsExamplePosts(t *testing.T) {
	fx := createTestProfileService(t, true)

	ctx := context.Background()
	userID := uuid.New()

	var seeded []*entity.Post
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)

			mockProfileRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(nil, repository.ErrProfileNotFound)
			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Run(func(ctx context.Context, profile *entity.Profile) {
					profile.ID = uuid.New()
				}).
				Return(nil)

			mockPostRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Post")).
				Run(func(ctx context.Context, post *entity.Post) {
					seeded = append(seeded, post)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	_, err := fx.service.CreateProfile(ctx, userID, usecase.CreateProfileInput{Handle: "fresh-author"})

	require.NoError(t, err)
	require.Len(t, seeded, 3)

	published := 0
	for _, post := range seeded {
		if post.Published {
			published++
		}
	}
	assert.Equal(t, 2, published)
}

func TestProfileService_CreateProfile_InvalidHandle(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()

	profile, err := fx.service.CreateProfile(ctx, uuid.New(), usecase.CreateProfileInput{Handle: "not a handle!"})

	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_CreateProfile_AlreadyExists(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockProfileRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(&entity.Profile{ID: uuid.New(), UserID: userID, Handle: "existing"}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrProfileExists, "user already has a profile"))

	profile, err := fx.service.CreateProfile(ctx, userID, usecase.CreateProfileInput{Handle: "second-try"})

	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileExists))
}

func TestProfileService_CreateProfile_HandleTaken(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockProfileRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(nil, repository.ErrProfileNotFound)
			mockProfileRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Profile")).
				Return(repository.ErrHandleTaken)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrHandleTaken, "handle already claimed"))

	profile, err := fx.service.CreateProfile(ctx, userID, usecase.CreateProfileInput{Handle: "popular-name"})

	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrHandleTaken))
}

func TestProfileService_UpdateProfile_PartialUpdate(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	newBio := "Updated bio."

	existing := &entity.Profile{
		ID:          uuid.New(),
		UserID:      userID,
		Handle:      "jane_writes",
		Bio:         "Old bio.",
		SocialLinks: map[string]string{"github": "https://github.com/jane"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
			mockProfileRepo.EXPECT().Update(ctx, existing).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{Bio: &newBio})

	require.NoError(t, err)
	assert.Equal(t, newBio, updated.Bio)
	// Untouched fields survive a partial update.
	assert.Equal(t, "https://github.com/jane", updated.SocialLinks["github"])
}

func TestProfileService_UpdateProfile_HandleChangeConflicts(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	wanted := "taken-name"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockProfileRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(&entity.Profile{ID: uuid.New(), UserID: userID, Handle: "old-name"}, nil)
			mockProfileRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Profile")).
				Return(repository.ErrHandleTaken)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrHandleTaken, "handle already claimed"))

	updated, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{Handle: &wanted})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrHandleTaken))
}

func TestProfileService_UpdateProfile_InvalidHandle(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	wanted := "no spaces allowed"

	updated, err := fx.service.UpdateProfile(ctx, uuid.New(), usecase.UpdateProfileInput{Handle: &wanted})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_UpdateProfile_PrunesEmptySocialLinks(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	userID := uuid.New()

	existing := &entity.Profile{
		ID:          uuid.New(),
		UserID:      userID,
		Handle:      "jane_writes",
		SocialLinks: map[string]string{"twitter": "https://twitter.com/jane"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existing, nil)
			mockProfileRepo.EXPECT().Update(ctx, existing).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// Clearing a link is just sending it empty.
	updated, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{
		SocialLinks: map[string]string{
			"twitter": "",
			"github":  "https://github.com/jane",
		},
	})

	require.NoError(t, err)
	assert.NotContains(t, updated.SocialLinks, "twitter")
	assert.Equal(t, "https://github.com/jane", updated.SocialLinks["github"])
}

func TestProfileService_UpdateProfile_NoProfile(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)

			mockProfileRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(nil, repository.ErrProfileNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrProfileRequired, "user has no profile yet"))

	updated, err := fx.service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileRequired))
}

func TestProfileService_GetByHandle_NotFound(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByHandle(ctx, "ghost").
		Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetByHandle(ctx, "ghost")

	assert.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_ListProfiles_FullPageHasMore(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()

	fullPage := make([]*entity.Profile, policy.DefaultPageSize)
	for i := range fullPage {
		fullPage[i] = &entity.Profile{ID: uuid.New()}
	}

	fx.profileRepo.EXPECT().List(ctx, policy.DefaultPageSize, 0).Return(fullPage, nil)

	output, err := fx.service.ListProfiles(ctx, 1)

	require.NoError(t, err)
	assert.Len(t, output.Profiles, policy.DefaultPageSize)
	assert.Equal(t, 1, output.Page)
	assert.True(t, output.HasMore)
}

func TestProfileService_ListProfiles_SecondPageOffset(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		List(ctx, policy.DefaultPageSize, policy.DefaultPageSize).
		Return([]*entity.Profile{{ID: uuid.New()}}, nil)

	output, err := fx.service.ListProfiles(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, output.Page)
	assert.False(t, output.HasMore)
}

func TestProfileService_ReplaceAvatar_Success(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{
		ID:     uuid.New(),
		UserID: userID,
		Handle: "jane_writes",
		Avatar: &entity.Avatar{Path: "avatars/old.png", URL: "http://cdn/avatars/old.png"},
	}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	var uploadedPath string
	fx.avatarStore.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Run(func(ctx context.Context, path string, contentType string, _ io.Reader) {
			uploadedPath = path
		}).
		Return("http://cdn/avatars/new.png", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().Update(ctx, profile).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	// The replaced image is discarded once the new link is committed.
	fx.avatarStore.EXPECT().Delete(ctx, "avatars/old.png").Return(nil)

	updated, err := fx.service.ReplaceAvatar(ctx, userID, usecase.ReplaceAvatarInput{
		ContentType: "image/png",
		Size:        1024,
		Body:        bytes.NewReader([]byte("png-bytes")),
	})

	require.NoError(t, err)
	require.NotNil(t, updated.Avatar)
	assert.Equal(t, uploadedPath, updated.Avatar.Path)
	assert.Equal(t, "http://cdn/avatars/new.png", updated.Avatar.URL)
	assert.True(t, strings.HasPrefix(uploadedPath, "avatars/"+profile.ID.String()+"/"))
}

// The old blob is removed best-effort: a failed delete only leaks storage and
// must not undo a replacement that already committed.
func TestProfileService_ReplaceAvatar_OldBlobDeleteFailureStillSucceeds(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{
		ID:     uuid.New(),
		UserID: userID,
		Handle: "jane_writes",
		Avatar: &entity.Avatar{Path: "avatars/old.png", URL: "http://cdn/avatars/old.png"},
	}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	var uploadedPath string
	fx.avatarStore.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Run(func(ctx context.Context, path string, contentType string, _ io.Reader) {
			uploadedPath = path
		}).
		Return("http://cdn/avatars/new.png", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().Update(ctx, profile).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.avatarStore.EXPECT().
		Delete(ctx, "avatars/old.png").
		Return(errors.New("bucket unavailable"))

	updated, err := fx.service.ReplaceAvatar(ctx, userID, usecase.ReplaceAvatarInput{
		ContentType: "image/png",
		Size:        1024,
		Body:        bytes.NewReader([]byte("png-bytes")),
	})

	require.NoError(t, err)
	require.NotNil(t, updated.Avatar)
	assert.Equal(t, uploadedPath, updated.Avatar.Path)
	assert.Equal(t, "http://cdn/avatars/new.png", updated.Avatar.URL)
}

func TestProfileService_ReplaceAvatar_RejectsNonImage(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()

	updated, err := fx.service.ReplaceAvatar(ctx, uuid.New(), usecase.ReplaceAvatarInput{
		ContentType: "application/pdf",
		Size:        1024,
		Body:        bytes.NewReader([]byte("%PDF")),
	})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAvatarNotImage))
}

func TestProfileService_ReplaceAvatar_RejectsOversized(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()

	updated, err := fx.service.ReplaceAvatar(ctx, uuid.New(), usecase.ReplaceAvatarInput{
		ContentType: "image/jpeg",
		Size:        (2 << 20) + 1,
		Body:        bytes.NewReader([]byte("huge")),
	})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAvatarTooLarge))
}

func TestProfileService_ReplaceAvatar_FailedCommitRemovesOrphan(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{ID: uuid.New(), UserID: userID, Handle: "jane_writes"}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	var uploadedPath string
	fx.avatarStore.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Run(func(ctx context.Context, path string, contentType string, _ io.Reader) {
			uploadedPath = path
		}).
		Return("http://cdn/avatars/new.png", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	// The blob that never got linked must not be left behind.
	fx.avatarStore.EXPECT().
		Delete(ctx, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, path string) {
			assert.Equal(t, uploadedPath, path)
		}).
		Return(nil)

	updated, err := fx.service.ReplaceAvatar(ctx, userID, usecase.ReplaceAvatarInput{
		ContentType: "image/png",
		Size:        1024,
		Body:        bytes.NewReader([]byte("png-bytes")),
	})

	assert.Error(t, err)
	assert.Nil(t, updated)
}

func TestProfileService_RemoveAvatar_Success(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{
		ID:     uuid.New(),
		UserID: userID,
		Handle: "jane_writes",
		Avatar: &entity.Avatar{Path: "avatars/current.png", URL: "http://cdn/avatars/current.png"},
	}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockProfileRepo.EXPECT().Update(ctx, profile).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.avatarStore.EXPECT().Delete(ctx, "avatars/current.png").Return(nil)

	updated, err := fx.service.RemoveAvatar(ctx, userID)

	require.NoError(t, err)
	assert.Nil(t, updated.Avatar)
}

func TestProfileService_RemoveAvatar_NoAvatarIsNoop(t *testing.T) {
	fx := createTestProfileService(t, false)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Profile{ID: uuid.New(), UserID: userID, Handle: "jane_writes"}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	updated, err := fx.service.RemoveAvatar(ctx, userID)

	require.NoError(t, err)
	assert.Nil(t, updated.Avatar)
}
