package policy

import (
	"quill/internal/domain/entity"

	"github.com/google/uuid"
)

// Neighbors locates the focal post inside a newest-first collection and
// returns its chronological neighbors: newer is the element before it in the
// ordering, older the element after. Either may be nil at the edges, and both
// are nil when the focal post is not part of the collection (e.g. a draft
// filtered out for a non-owner viewer).
func Neighbors(posts []*entity.Post, focalID uuid.UUID) (newer, older *entity.Post) {
	idx := -1
	for i, post := range posts {
		if post.ID == focalID {
			idx = i

			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	if idx > 0 {
		newer = posts[idx-1]
	}
	if idx < len(posts)-1 {
		older = posts[idx+1]
	}

	return newer, older
}
