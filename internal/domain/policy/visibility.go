// Package policy holds the pure access and ordering rules for posts. The
// database enforces the same rules at the persistence layer; these predicates
// are the single in-process source of truth so the two can never disagree.
package policy

import (
	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// CanView reports whether the viewer may read the post: published posts are
// public, drafts are visible to their author only. A nil viewer is an
// anonymous visitor.
func CanView(post *entity.Post, viewerProfileID *uuid.UUID) bool {
	if post == nil {
		return false
	}
	if post.Published {
		return true
	}

	return viewerProfileID != nil && *viewerProfileID == post.AuthorID
}

// CanMutate reports whether the viewer may update or delete the post. Only
// the author may, regardless of publication state.
func CanMutate(post *entity.Post, viewerProfileID *uuid.UUID) bool {
	if post == nil || viewerProfileID == nil {
		return false
	}

	return *viewerProfileID == post.AuthorID
}

// VisibleTo filters an ordered post collection down to what the viewer may
// read, preserving order.
func VisibleTo(posts []*entity.Post, viewerProfileID *uuid.UUID) []*entity.Post {
	visible := make([]*entity.Post, 0, len(posts))
	for _, post := range posts {
		if CanView(post, viewerProfileID) {
			visible = append(visible, post)
		}
	}

	return visible
}
