package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// User represents a registered account and the set of posts it owns.
type User struct {
	ID       uuid.UUID   `json:"_id"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Name     string      `json:"name" validate:"required"`
	Status   string      `json:"status"`
	Posts    []uuid.UUID `json:"posts"`
}

// Post represents a feed entry with an attached image. CreatorID is set at
// creation and never reassigned.
type Post struct {
	ID        uuid.UUID `json:"_id"`
	Title     string    `json:"title" validate:"required,min=5"`
	ImageURL  string    `json:"imageUrl"`
	Content   string    `json:"content" validate:"required,min=5"`
	CreatorID uuid.UUID `json:"creator"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthContext is the result of resolving a request's bearer credential. The
// gate never rejects; operations requiring authentication check
// IsAuthenticated themselves.
type AuthContext struct {
	IsAuthenticated bool
	UserID          uuid.UUID
}
