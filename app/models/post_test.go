package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPostValidate(t *testing.T) {
	t.Run("valid post", func(t *testing.T) {
		post := &Post{
			Title:   "First post",
			Content: "Some long enough content",
		}
		assert.NoError(t, post.Validate())
	})

	t.Run("short title and content", func(t *testing.T) {
		post := &Post{Title: "Hi", Content: "Ok"}
		assert.Error(t, post.Validate())
	})

	t.Run("empty fields", func(t *testing.T) {
		post := &Post{}
		assert.Error(t, post.Validate())
	})
}

func TestPostBeforeCreate(t *testing.T) {
	post := &Post{Title: "First post", Content: "Some long enough content"}
	post.BeforeCreate()

	assert.NotEqual(t, uuid.Nil, post.ID)
	assert.False(t, post.CreatedAt.IsZero())
	assert.False(t, post.UpdatedAt.IsZero())

	// Existing IDs and creation times are preserved.
	id := post.ID
	created := post.CreatedAt
	post.BeforeCreate()
	assert.Equal(t, id, post.ID)
	assert.Equal(t, created, post.CreatedAt)
}

func TestPostBeforeUpdate(t *testing.T) {
	post := &Post{Title: "First post", Content: "Some long enough content"}
	post.BeforeCreate()

	old := post.UpdatedAt
	time.Sleep(time.Millisecond)
	post.BeforeUpdate()
	assert.True(t, post.UpdatedAt.After(old))
}

func TestPostOwnedBy(t *testing.T) {
	owner := uuid.New()
	post := &Post{CreatorID: owner}

	assert.True(t, post.OwnedBy(owner))
	assert.False(t, post.OwnedBy(uuid.New()))
}
