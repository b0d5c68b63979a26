package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapfeed/app/models"
)

func setupTestDB(t *testing.T) *badger.DB {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBadgerUserRepository(db)

	t.Run("create and get user", func(t *testing.T) {
		user := &models.User{Email: "a@b.com", Password: "hashed", Name: "A"}
		require.NoError(t, repo.Create(user))
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, models.DefaultStatus, user.Status)

		retrieved, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Email, retrieved.Email)
		assert.Equal(t, user.Name, retrieved.Name)
	})

	t.Run("get by email", func(t *testing.T) {
		user := &models.User{Email: "mail@example.com", Password: "hashed", Name: "M"}
		require.NoError(t, repo.Create(user))

		retrieved, err := repo.GetByEmail("mail@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, retrieved.ID)

		_, err = repo.GetByEmail("unknown@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		first := &models.User{Email: "dup@example.com", Password: "hashed", Name: "D"}
		require.NoError(t, repo.Create(first))

		second := &models.User{Email: "dup@example.com", Password: "hashed", Name: "D2"}
		err := repo.Create(second)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("update user", func(t *testing.T) {
		user := &models.User{Email: "up@example.com", Password: "hashed", Name: "U"}
		require.NoError(t, repo.Create(user))

		user.Status = "hello"
		user.AddPost(uuid.New())
		require.NoError(t, repo.Update(user))

		retrieved, err := repo.GetByID(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "hello", retrieved.Status)
		assert.Len(t, retrieved.Posts, 1)
	})

	t.Run("update missing user", func(t *testing.T) {
		ghost := &models.User{ID: uuid.New(), Email: "g@example.com", Password: "hashed", Name: "G"}
		assert.ErrorIs(t, repo.Update(ghost), ErrNotFound)
	})

	t.Run("get missing user", func(t *testing.T) {
		_, err := repo.GetByID(uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
