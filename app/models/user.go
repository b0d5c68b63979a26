package models

import "github.com/google/uuid"

// DefaultStatus is the status text assigned at signup.
const DefaultStatus = "I am new here"

// Validate checks if the user meets all validation requirements.
func (u *User) Validate() error {
	return validate.Struct(u)
}

// BeforeCreate sets up any necessary fields before creation.
func (u *User) BeforeCreate() {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Status == "" {
		u.Status = DefaultStatus
	}
	if u.Posts == nil {
		u.Posts = []uuid.UUID{}
	}
}

// AddPost appends a post reference to the user's post set.
func (u *User) AddPost(postID uuid.UUID) {
	u.Posts = append(u.Posts, postID)
}

// RemovePost removes a post reference from the user's post set.
func (u *User) RemovePost(postID uuid.UUID) {
	for i, id := range u.Posts {
		if id == postID {
			u.Posts = append(u.Posts[:i], u.Posts[i+1:]...)
			return
		}
	}
}
