package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/policy"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager   repository.TransactionManager
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PostRepo    repository.PostRepository
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager:   params.TxManager,
		postRepo:    params.PostRepo,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost creates a post owned by the user's profile.
func (srv *postService) CreatePost(ctx context.Context, userID uuid.UUID, input usecase.CreatePostInput) (*entity.Post, error) {
	srv.log(ctx).Info("Creating post", slog.Any("userID", userID), slog.Bool("published", input.Published))

	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "title must not be empty")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "content must not be empty")
	}

	author, err := srv.requireAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	newPost := &entity.Post{
		AuthorID:     author.ID,
		AuthorHandle: author.Handle,
		Title:        input.Title,
		Content:      input.Content,
		Published:    input.Published,
	}

	if err := srv.postRepo.Create(ctx, newPost); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}
	srv.log(ctx).Debug("Post created", slog.Any("postID", newPost.ID))

	return newPost, nil
}

// UpdatePost applies a partial update to a post the user owns. Publishing and
// unpublishing go through the same path via the Published field.
func (srv *postService) UpdatePost(ctx context.Context, userID uuid.UUID, postID uuid.UUID, input usecase.UpdatePostInput) (*entity.Post, error) {
	srv.log(ctx).Info("Updating post", slog.Any("userID", userID), slog.Any("postID", postID))

	author, err := srv.requireAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	var updated *entity.Post
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to load post for update")
		}

		if !policy.CanMutate(post, &author.ID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the author may modify a post")
		}

		if input.Title != nil {
			if strings.TrimSpace(*input.Title) == "" {
				return errors.Wrap(domainerrors.ErrValidationFailed, "title must not be empty")
			}
			post.Title = *input.Title
		}
		if input.Content != nil {
			if strings.TrimSpace(*input.Content) == "" {
				return errors.Wrap(domainerrors.ErrValidationFailed, "content must not be empty")
			}
			post.Content = *input.Content
		}
		if input.Published != nil {
			post.Published = *input.Published
		}

		if err := postRepo.Update(ctx, post); err != nil {
			return errors.Wrap(err, "failed to update post")
		}
		updated = post

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute post update transaction")
	}

	return updated, nil
}

// DeletePost permanently removes a post the user owns.
func (srv *postService) DeletePost(ctx context.Context, userID uuid.UUID, postID uuid.UUID) error {
	srv.log(ctx).Info("Deleting post", slog.Any("userID", userID), slog.Any("postID", postID))

	author, err := srv.requireAuthor(ctx, userID)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		post, err := postRepo.FindByID(ctx, postID)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "post not found")
			}

			return errors.Wrap(err, "failed to load post for deletion")
		}

		if !policy.CanMutate(post, &author.ID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the author may delete a post")
		}

		return errors.Wrap(postRepo.Delete(ctx, postID), "failed to delete post")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete post", slog.Any("postID", postID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute post deletion transaction")
	}
	srv.log(ctx).Debug("Post deleted", slog.Any("postID", postID))

	return nil
}

// GetPost loads one post plus its neighbors in the author's collection. A
// draft is indistinguishable from a missing post for everyone but its author.
func (srv *postService) GetPost(ctx context.Context, viewerUserID *uuid.UUID, postID uuid.UUID) (*usecase.PostDetailOutput, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "post not found")
		}

		return nil, errors.Wrap(err, "failed to load post")
	}

	viewerProfileID, err := srv.resolveViewerProfile(ctx, viewerUserID)
	if err != nil {
		return nil, err
	}

	if !policy.CanView(post, viewerProfileID) {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "post not found")
	}

	// Neighbors are computed over the collection the viewer is allowed to
	// see: the author navigates across drafts too, everyone else only
	// across published posts.
	viewerIsAuthor := viewerProfileID != nil && *viewerProfileID == post.AuthorID
	collection, err := srv.postRepo.ListAllByAuthor(ctx, post.AuthorID, !viewerIsAuthor)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load author collection for navigation")
	}

	newer, older := policy.Neighbors(collection, post.ID)

	return &usecase.PostDetailOutput{
		Post:  post,
		Newer: newer,
		Older: older,
	}, nil
}

// ListOwnPosts returns one page of the user's posts, drafts included.
func (srv *postService) ListOwnPosts(ctx context.Context, userID uuid.UUID, page int) (*usecase.PostListOutput, error) {
	author, err := srv.requireAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return srv.listPage(ctx, author.ID, false, page)
}

// ListByHandle returns one page of an author's published posts.
func (srv *postService) ListByHandle(ctx context.Context, handle string, page int) (*usecase.PostListOutput, error) {
	author, err := srv.profileRepo.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "no author with that handle")
		}

		return nil, errors.Wrap(err, "failed to find author by handle")
	}

	return srv.listPage(ctx, author.ID, true, page)
}

func (srv *postService) listPage(ctx context.Context, authorID uuid.UUID, publishedOnly bool, page int) (*usecase.PostListOutput, error) {
	p := policy.NewPage(page)

	posts, err := srv.postRepo.ListByAuthor(ctx, authorID, publishedOnly, p.Size, p.Offset())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return &usecase.PostListOutput{
		Posts:   posts,
		Page:    p.Number,
		HasMore: p.HasMore(len(posts)),
	}, nil
}

// requireAuthor maps a signed-in user to their profile, which is what posts
// are owned by. Users without a profile cannot write.
func (srv *postService) requireAuthor(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileRequired, "create a profile before writing posts")
		}

		return nil, errors.Wrap(err, "failed to load author profile")
	}

	return profile, nil
}

// resolveViewerProfile maps an optional signed-in user to their profile ID.
// Anonymous viewers and signed-in users without a profile both read as nil.
func (srv *postService) resolveViewerProfile(ctx context.Context, viewerUserID *uuid.UUID) (*uuid.UUID, error) {
	if viewerUserID == nil {
		return nil, nil
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, *viewerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to resolve viewer profile")
	}

	return &profile.ID, nil
}
