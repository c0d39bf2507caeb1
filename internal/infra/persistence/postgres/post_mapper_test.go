package postgres

import (
	"testing"
	"time"

	"quill/internal/domain/entity"
	"quill/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromPostDomain must never carry UpdatedAt into the model: GORM stamps it on
// every Save, so an edit always refreshes the timestamp.
func TestFromPostDomain_LeavesUpdatedAtForGorm(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	post := &entity.Post{
		ID:        uuid.New(),
		AuthorID:  uuid.New(),
		Title:     "Renamed",
		Content:   "Original body",
		Published: true,
		CreatedAt: created,
		UpdatedAt: created.Add(time.Hour),
	}

	postM := fromPostDomain(post)

	assert.Equal(t, post.ID, postM.ID)
	assert.Equal(t, post.AuthorID, postM.AuthorID)
	assert.Equal(t, post.Title, postM.Title)
	assert.Equal(t, post.Content, postM.Content)
	assert.Equal(t, post.Published, postM.Published)
	assert.Equal(t, created, postM.CreatedAt)
	assert.True(t, postM.UpdatedAt.IsZero())
}

func TestToPostDomain_CarriesAuthorHandle(t *testing.T) {
	authorID := uuid.New()
	postM := &model.PostModel{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     "Welcome",
		Content:   "First post",
		Published: true,
		Author:    &model.ProfileModel{ID: authorID, Handle: "jane_writes"},
	}

	post := toPostDomain(postM)

	require.NotNil(t, post)
	assert.Equal(t, "jane_writes", post.AuthorHandle)
}

func TestToPostDomain_NilModel(t *testing.T) {
	assert.Nil(t, toPostDomain(nil))
}
