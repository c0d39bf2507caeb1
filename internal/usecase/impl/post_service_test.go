package impl

import (
	"context"
	"testing"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/policy"
	"quill/internal/domain/repository"
	mockRepo "quill/internal/mocks/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// postServiceFixtures holds all test dependencies for post service tests.
type postServiceFixtures struct {
	service     usecase.PostUsecase
	txManager   *mockRepo.MockTransactionManager
	postRepo    *mockRepo.MockPostRepository
	profileRepo *mockRepo.MockProfileRepository
}

func createTestPostService(t *testing.T) postServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	service := NewPostService(PostServiceParams{
		TxManager:   txManager,
		PostRepo:    postRepo,
		ProfileRepo: profileRepo,
		Logger:      newDiscardLogger(),
	})

	return postServiceFixtures{
		service:     service,
		txManager:   txManager,
		postRepo:    postRepo,
		profileRepo: profileRepo,
	}
}

func TestPostService_CreatePost_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	author := &entity.Profile{ID: uuid.New(), UserID: userID, Handle: "jane_writes"}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(author, nil)

	fx.postRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Post")).
		Run(func(ctx context.Context, post *entity.Post) {
			post.ID = uuid.New()
		}).
		Return(nil)

	post, err := fx.service.CreatePost(ctx, userID, usecase.CreatePostInput{
		Title:     "On writing daily",
		Content:   "Some words.",
		Published: true,
	})

	require.NoError(t, err)
	assert.Equal(t, author.ID, post.AuthorID)
	assert.Equal(t, "jane_writes", post.AuthorHandle)
	assert.True(t, post.Published)
}

func TestPostService_CreatePost_EmptyTitle(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	post, err := fx.service.CreatePost(ctx, uuid.New(), usecase.CreatePostInput{Title: "   "})

	assert.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPostService_CreatePost_EmptyContent(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	post, err := fx.service.CreatePost(ctx, uuid.New(), usecase.CreatePostInput{Title: "Title", Content: "  "})

	assert.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPostService_CreatePost_RequiresProfile(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByUserID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	post, err := fx.service.CreatePost(ctx, userID, usecase.CreatePostInput{Title: "Draft"})

	assert.Error(t, err)
	assert.Nil(t, post)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileRequired))
}

func TestPostService_UpdatePost_PublishToggle(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	author := &entity.Profile{ID: uuid.New(), UserID: userID, Handle: "jane_writes"}
	postID := uuid.New()
	published := true

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(author, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)

			mockPostRepo.EXPECT().
				FindByID(ctx, postID).
				Return(&entity.Post{ID: postID, AuthorID: author.ID, Title: "Draft", Published: false}, nil)

			mockPostRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Post")).
				Run(func(ctx context.Context, post *entity.Post) {
					assert.True(t, post.Published)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdatePost(ctx, userID, postID, usecase.UpdatePostInput{Published: &published})

	require.NoError(t, err)
	assert.True(t, updated.Published)
}

// A title-only update must leave content and the published flag untouched.
func TestPostService_UpdatePost_TitleOnlyPreservesRest(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	author := &entity.Profile{ID: uuid.New(), UserID: userID, Handle: "jane_writes"}
	postID := uuid.New()
	title := "Renamed"

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(author, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)

			mockPostRepo.EXPECT().
				FindByID(ctx, postID).
				Return(&entity.Post{
					ID:        postID,
					AuthorID:  author.ID,
					Title:     "Old title",
					Content:   "Original body",
					Published: true,
				}, nil)

			mockPostRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Post")).
				Run(func(ctx context.Context, post *entity.Post) {
					assert.Equal(t, "Renamed", post.Title)
					assert.Equal(t, "Original body", post.Content)
					assert.True(t, post.Published)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdatePost(ctx, userID, postID, usecase.UpdatePostInput{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Original body", updated.Content)
	assert.True(t, updated.Published)
}

func TestPostService_UpdatePost_NotTheAuthor(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	viewer := &entity.Profile{ID: uuid.New(), UserID: userID, Handle: "someone_else"}
	postID := uuid.New()
	title := "Hijacked"

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(viewer, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)

			mockPostRepo.EXPECT().
				FindByID(ctx, postID).
				Return(&entity.Post{ID: postID, AuthorID: uuid.New(), Published: true}, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrForbidden, "only the author may modify a post"))

	updated, err := fx.service.UpdatePost(ctx, userID, postID, usecase.UpdatePostInput{Title: &title})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPostService_DeletePost_Success(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	author := &entity.Profile{ID: uuid.New(), UserID: userID, Handle: "jane_writes"}
	postID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(author, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)

			mockPostRepo.EXPECT().
				FindByID(ctx, postID).
				Return(&entity.Post{ID: postID, AuthorID: author.ID}, nil)
			mockPostRepo.EXPECT().Delete(ctx, postID).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.DeletePost(ctx, userID, postID)

	assert.NoError(t, err)
}

func TestPostService_DeletePost_Missing(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	author := &entity.Profile{ID: uuid.New(), UserID: userID, Handle: "jane_writes"}
	postID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(author, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPostRepo := mockRepo.NewMockPostRepository(t)

			mockFactory.EXPECT().PostRepo().Return(mockPostRepo)

			mockPostRepo.EXPECT().
				FindByID(ctx, postID).
				Return(nil, repository.ErrPostNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrNotFound, "post not found"))

	err := fx.service.DeletePost(ctx, userID, postID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPostService_GetPost_DraftHiddenFromAnonymous(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	postID := uuid.New()

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(&entity.Post{ID: postID, AuthorID: uuid.New(), Published: false}, nil)

	// A draft reads exactly like a missing post to an anonymous viewer.
	detail, err := fx.service.GetPost(ctx, nil, postID)

	assert.Error(t, err)
	assert.Nil(t, detail)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPostService_GetPost_DraftHiddenFromOtherAuthor(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	viewerUserID := uuid.New()
	viewer := &entity.Profile{ID: uuid.New(), UserID: viewerUserID, Handle: "other_author"}
	postID := uuid.New()

	fx.postRepo.EXPECT().
		FindByID(ctx, postID).
		Return(&entity.Post{ID: postID, AuthorID: uuid.New(), Published: false}, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, viewerUserID).Return(viewer, nil)

	detail, err := fx.service.GetPost(ctx, &viewerUserID, postID)

	assert.Error(t, err)
	assert.Nil(t, detail)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPostService_GetPost_AuthorNavigatesAcrossDrafts(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	author := &entity.Profile{ID: uuid.New(), UserID: userID, Handle: "jane_writes"}

	now := time.Now()
	newest := &entity.Post{ID: uuid.New(), AuthorID: author.ID, Published: false, CreatedAt: now}
	focal := &entity.Post{ID: uuid.New(), AuthorID: author.ID, Published: false, CreatedAt: now.Add(-time.Hour)}
	oldest := &entity.Post{ID: uuid.New(), AuthorID: author.ID, Published: true, CreatedAt: now.Add(-2 * time.Hour)}

	fx.postRepo.EXPECT().FindByID(ctx, focal.ID).Return(focal, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(author, nil)
	// Authors navigate their whole collection, drafts included.
	fx.postRepo.EXPECT().
		ListAllByAuthor(ctx, author.ID, false).
		Return([]*entity.Post{newest, focal, oldest}, nil)

	detail, err := fx.service.GetPost(ctx, &userID, focal.ID)

	require.NoError(t, err)
	assert.Equal(t, focal.ID, detail.Post.ID)
	require.NotNil(t, detail.Newer)
	require.NotNil(t, detail.Older)
	assert.Equal(t, newest.ID, detail.Newer.ID)
	assert.Equal(t, oldest.ID, detail.Older.ID)
}

func TestPostService_GetPost_AnonymousNavigatesPublishedOnly(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	authorID := uuid.New()

	now := time.Now()
	focal := &entity.Post{ID: uuid.New(), AuthorID: authorID, Published: true, CreatedAt: now.Add(-time.Hour)}
	older := &entity.Post{ID: uuid.New(), AuthorID: authorID, Published: true, CreatedAt: now.Add(-2 * time.Hour)}

	fx.postRepo.EXPECT().FindByID(ctx, focal.ID).Return(focal, nil)
	// Everyone else only sees the published collection.
	fx.postRepo.EXPECT().
		ListAllByAuthor(ctx, authorID, true).
		Return([]*entity.Post{focal, older}, nil)

	detail, err := fx.service.GetPost(ctx, nil, focal.ID)

	require.NoError(t, err)
	assert.Nil(t, detail.Newer)
	require.NotNil(t, detail.Older)
	assert.Equal(t, older.ID, detail.Older.ID)
}

func TestPostService_ListOwnPosts_IncludesDrafts(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	userID := uuid.New()
	author := &entity.Profile{ID: uuid.New(), UserID: userID, Handle: "jane_writes"}

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(author, nil)
	fx.postRepo.EXPECT().
		ListByAuthor(ctx, author.ID, false, policy.DefaultPageSize, 0).
		Return([]*entity.Post{
			{ID: uuid.New(), AuthorID: author.ID, Published: true},
			{ID: uuid.New(), AuthorID: author.ID, Published: false},
		}, nil)

	output, err := fx.service.ListOwnPosts(ctx, userID, 1)

	require.NoError(t, err)
	assert.Len(t, output.Posts, 2)
	assert.Equal(t, 1, output.Page)
	assert.False(t, output.HasMore)
}

func TestPostService_ListByHandle_FullPageHasMore(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()
	author := &entity.Profile{ID: uuid.New(), Handle: "jane_writes"}

	fullPage := make([]*entity.Post, policy.DefaultPageSize)
	for i := range fullPage {
		fullPage[i] = &entity.Post{ID: uuid.New(), AuthorID: author.ID, Published: true}
	}

	fx.profileRepo.EXPECT().FindByHandle(ctx, "jane_writes").Return(author, nil)
	fx.postRepo.EXPECT().
		ListByAuthor(ctx, author.ID, true, policy.DefaultPageSize, 0).
		Return(fullPage, nil)

	output, err := fx.service.ListByHandle(ctx, "jane_writes", 1)

	require.NoError(t, err)
	assert.Len(t, output.Posts, policy.DefaultPageSize)
	assert.True(t, output.HasMore)
}

func TestPostService_ListByHandle_UnknownAuthor(t *testing.T) {
	fx := createTestPostService(t)

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByHandle(ctx, "ghost").
		Return(nil, repository.ErrProfileNotFound)

	output, err := fx.service.ListByHandle(ctx, "ghost", 1)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
