package repositories

import (
	"github.com/google/uuid"

	"snapfeed/app/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uuid.UUID) (*models.Post, error)
	List(page, perPage int) ([]*models.Post, int, error)
	Update(post *models.Post) error
	Delete(id uuid.UUID) error
}
