package services

import (
	"time"

	"snapfeed/app/models"
)

// CreatorView is the serialized projection of a post's owner.
type CreatorView struct {
	ID     string `json:"_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// PostView is the serializable projection of a post: identifiers rendered as
// strings, timestamps as ISO-8601 text.
type PostView struct {
	ID        string      `json:"_id"`
	Title     string      `json:"title"`
	ImageURL  string      `json:"imageUrl"`
	Content   string      `json:"content"`
	Creator   CreatorView `json:"creator"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
}

// UserView is the serializable projection of a user.
type UserView struct {
	ID       string   `json:"_id"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Posts    []string `json:"posts"`
}

// AuthPayload is the login result.
type AuthPayload struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// FeedPage is one page of the post listing together with the total number of
// persisted posts.
type FeedPage struct {
	Posts []*PostView `json:"posts"`
	Total int         `json:"totalPosts"`
}

func isoTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func creatorView(u *models.User) CreatorView {
	return CreatorView{
		ID:     u.ID.String(),
		Email:  u.Email,
		Name:   u.Name,
		Status: u.Status,
	}
}

func postView(p *models.Post, creator *models.User) *PostView {
	return &PostView{
		ID:        p.ID.String(),
		Title:     p.Title,
		ImageURL:  p.ImageURL,
		Content:   p.Content,
		Creator:   creatorView(creator),
		CreatedAt: isoTime(p.CreatedAt),
		UpdatedAt: isoTime(p.UpdatedAt),
	}
}

func userView(u *models.User) *UserView {
	posts := make([]string, 0, len(u.Posts))
	for _, id := range u.Posts {
		posts = append(posts, id.String())
	}
	return &UserView{
		ID:       u.ID.String(),
		Email:    u.Email,
		Password: u.Password,
		Name:     u.Name,
		Status:   u.Status,
		Posts:    posts,
	}
}
