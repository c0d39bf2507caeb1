package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is an authored content item. Published toggles between draft and
// public; a draft is readable by its author only. UpdatedAt never precedes
// CreatedAt.
type Post struct {
	ID           uuid.UUID
	AuthorID     uuid.UUID // Profile that owns this post.
	AuthorHandle string    // Denormalized for display; resolved on read, never stored.
	Title        string
	Content      string
	Published    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
