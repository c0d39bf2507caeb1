package policy

import (
	"testing"
	"time"

	"quill/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newestFirst builds n posts ordered newest-first, index 0 being the newest.
func newestFirst(author uuid.UUID, n int) []*entity.Post {
	now := time.Now()
	posts := make([]*entity.Post, 0, n)
	for i := range n {
		posts = append(posts, &entity.Post{
			ID:        uuid.New(),
			AuthorID:  author,
			Published: true,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}

	return posts
}

func TestNeighbors_IndexMath(t *testing.T) {
	author := uuid.New()
	posts := newestFirst(author, 5)

	for i, focal := range posts {
		newer, older := Neighbors(posts, focal.ID)

		if i == 0 {
			assert.Nil(t, newer, "newest post has no newer neighbor")
		} else {
			require.NotNil(t, newer)
			assert.Equal(t, posts[i-1].ID, newer.ID)
		}

		if i == len(posts)-1 {
			assert.Nil(t, older, "oldest post has no older neighbor")
		} else {
			require.NotNil(t, older)
			assert.Equal(t, posts[i+1].ID, older.ID)
		}
	}
}

func TestNeighbors_SinglePost(t *testing.T) {
	posts := newestFirst(uuid.New(), 1)

	newer, older := Neighbors(posts, posts[0].ID)
	assert.Nil(t, newer)
	assert.Nil(t, older)
}

func TestNeighbors_FocalNotInCollection(t *testing.T) {
	posts := newestFirst(uuid.New(), 3)

	newer, older := Neighbors(posts, uuid.New())
	assert.Nil(t, newer)
	assert.Nil(t, older)
}

func TestNeighbors_DraftsExcludedForNonOwners(t *testing.T) {
	author := uuid.New()
	posts := newestFirst(author, 5)
	// Middle post becomes a draft.
	posts[2].Published = false

	focal := posts[3]

	// The author navigates across the draft.
	newer, older := Neighbors(VisibleTo(posts, &author), focal.ID)
	require.NotNil(t, newer)
	assert.Equal(t, posts[2].ID, newer.ID)
	require.NotNil(t, older)
	assert.Equal(t, posts[4].ID, older.ID)

	// An anonymous viewer skips it: the draft's slot collapses and the newer
	// neighbor is the published post beyond it.
	newer, older = Neighbors(VisibleTo(posts, nil), focal.ID)
	require.NotNil(t, newer)
	assert.Equal(t, posts[1].ID, newer.ID)
	require.NotNil(t, older)
	assert.Equal(t, posts[4].ID, older.ID)
}
