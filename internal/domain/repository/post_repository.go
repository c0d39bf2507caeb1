package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPostNotFound is returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines persistence operations for posts. All listings are
// ordered by creation time descending (newest first).
type PostRepository interface {
	// FindByID retrieves a post with its author's handle resolved.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)

	// ListByAuthor returns one page of an author's posts. When publishedOnly
	// is true drafts are excluded at the query level.
	ListByAuthor(ctx context.Context, authorID uuid.UUID, publishedOnly bool, limit, offset int) ([]*entity.Post, error)

	// ListAllByAuthor returns the author's entire ordered collection, used to
	// compute previous/next navigation around a focal post.
	ListAllByAuthor(ctx context.Context, authorID uuid.UUID, publishedOnly bool) ([]*entity.Post, error)

	// Create persists a new post.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies an existing post.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
