package models

import (
	"time"

	"github.com/google/uuid"
)

// Validate checks if the post meets all validation requirements.
func (p *Post) Validate() error {
	return validate.Struct(p)
}

// BeforeCreate sets up any necessary fields before creation.
func (p *Post) BeforeCreate() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

// BeforeUpdate refreshes the update timestamp.
func (p *Post) BeforeUpdate() {
	p.UpdatedAt = time.Now().UTC()
}

// OwnedBy reports whether userID matches the post's creator.
func (p *Post) OwnedBy(userID uuid.UUID) bool {
	return p.CreatorID == userID
}
