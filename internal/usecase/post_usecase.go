// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// PostUsecase defines the interface for post-related business operations.
type PostUsecase interface {
	// CreatePost creates a draft or published post for the signed-in author.
	CreatePost(ctx context.Context, userID uuid.UUID, input CreatePostInput) (*entity.Post, error)

	// UpdatePost modifies a post the signed-in author owns.
	UpdatePost(ctx context.Context, userID uuid.UUID, postID uuid.UUID, input UpdatePostInput) (*entity.Post, error)

	// DeletePost permanently removes a post the signed-in author owns.
	DeletePost(ctx context.Context, userID uuid.UUID, postID uuid.UUID) error

	// GetPost loads a single post with previous/next navigation within its
	// author's collection. viewerUserID is nil for anonymous readers; drafts
	// are only visible to their author.
	GetPost(ctx context.Context, viewerUserID *uuid.UUID, postID uuid.UUID) (*PostDetailOutput, error)

	// ListOwnPosts returns one page of the signed-in author's posts,
	// including drafts.
	ListOwnPosts(ctx context.Context, userID uuid.UUID, page int) (*PostListOutput, error)

	// ListByHandle returns one page of an author's published posts for their
	// public page.
	ListByHandle(ctx context.Context, handle string, page int) (*PostListOutput, error)
}

// --- Input DTOs ---

// CreatePostInput defines the data required to create a post.
type CreatePostInput struct {
	Title     string
	Content   string
	Published bool
}

// UpdatePostInput defines the data for a partial post update. Nil fields are
// left unchanged.
type UpdatePostInput struct {
	Title     *string
	Content   *string
	Published *bool
}

// --- Output DTOs ---

// PostDetailOutput is a single post plus its neighbors in the author's
// collection, for previous/next navigation.
type PostDetailOutput struct {
	Post  *entity.Post
	Newer *entity.Post
	Older *entity.Post
}

// PostListOutput is one page of a post listing.
type PostListOutput struct {
	Posts   []*entity.Post
	Page    int
	HasMore bool
}
