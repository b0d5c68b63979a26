package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"snapfeed/app/apperr"
	"snapfeed/app/models"
	"snapfeed/app/realtime"
	"snapfeed/app/repositories"
	"snapfeed/app/storage"
	"snapfeed/app/validation"
)

// FeedService composes authentication checks, validation, ownership checks,
// persistence and change notification into the post operations.
type FeedService struct {
	posts    repositories.PostRepository
	users    repositories.UserRepository
	images   storage.ImageStore
	notifier realtime.Publisher
	log      *logrus.Logger
}

// NewFeedService creates a new FeedService
func NewFeedService(
	posts repositories.PostRepository,
	users repositories.UserRepository,
	images storage.ImageStore,
	notifier realtime.Publisher,
	log *logrus.Logger,
) *FeedService {
	return &FeedService{
		posts:    posts,
		users:    users,
		images:   images,
		notifier: notifier,
		log:      log,
	}
}

// CreatePost creates a post owned by the authenticated user, appends it to
// the owner's post set and broadcasts a create event.
func (s *FeedService) CreatePost(ctx context.Context, auth models.AuthContext, input validation.PostInput) (*PostView, error) {
	if !auth.IsAuthenticated {
		return nil, apperr.Unauthenticated("Not Authenticated")
	}
	if fields := validation.Check(input); len(fields) > 0 {
		return nil, apperr.InvalidInput("Invalid Input", fields)
	}

	user, err := s.users.GetByID(auth.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.Unauthenticated("Invalid User")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}

	post := &models.Post{
		Title:     input.Title,
		ImageURL:  input.ImageURL,
		Content:   input.Content,
		CreatorID: auth.UserID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	user.AddPost(post.ID)
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update creator's posts: %w", err)
	}

	view := postView(post, user)
	s.notifier.Publish(realtime.Event{Action: realtime.ActionCreate, Post: view})
	s.log.WithFields(logrus.Fields{"post": view.ID, "creator": view.Creator.ID}).Info("post created")
	return view, nil
}

// GetPost returns one post with its creator populated.
func (s *FeedService) GetPost(ctx context.Context, auth models.AuthContext, id string) (*PostView, error) {
	if !auth.IsAuthenticated {
		return nil, apperr.Unauthenticated("Not Authenticated")
	}

	post, err := s.loadPost(id)
	if err != nil {
		return nil, err
	}

	creator, err := s.users.GetByID(post.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}
	return postView(post, creator), nil
}

// ListPosts returns one page of posts, newest first, and the total count.
// Page is 1-indexed; zero or negative pages fall back to the first page.
func (s *FeedService) ListPosts(ctx context.Context, auth models.AuthContext, page, perPage int) (*FeedPage, error) {
	if !auth.IsAuthenticated {
		return nil, apperr.Unauthenticated("Not Authenticated")
	}

	posts, total, err := s.posts.List(page, perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	creators := make(map[uuid.UUID]*models.User)
	views := make([]*PostView, 0, len(posts))
	for _, post := range posts {
		creator, ok := creators[post.CreatorID]
		if !ok {
			creator, err = s.users.GetByID(post.CreatorID)
			if err != nil {
				return nil, fmt.Errorf("failed to load creator: %w", err)
			}
			creators[post.CreatorID] = creator
		}
		views = append(views, postView(post, creator))
	}
	return &FeedPage{Posts: views, Total: total}, nil
}

// UpdatePost applies validated fields to a post owned by the acting user and
// broadcasts an update event. An empty input image reference keeps the
// current one. When the reference changes and removeReplacedImage is set,
// the old image is handed to the store for best-effort deletion.
func (s *FeedService) UpdatePost(ctx context.Context, auth models.AuthContext, id string, input validation.PostInput, removeReplacedImage bool) (*PostView, error) {
	if !auth.IsAuthenticated {
		return nil, apperr.Unauthenticated("Not Authenticated")
	}
	if fields := validation.Check(input); len(fields) > 0 {
		return nil, apperr.InvalidInput("Invalid Input", fields)
	}

	post, err := s.loadPost(id)
	if err != nil {
		return nil, err
	}
	if !post.OwnedBy(auth.UserID) {
		return nil, apperr.Forbidden("Not Authorized")
	}

	post.Title = input.Title
	post.Content = input.Content
	if input.ImageURL != "" && input.ImageURL != post.ImageURL {
		if removeReplacedImage {
			s.images.Delete(ctx, post.ImageURL)
		}
		post.ImageURL = input.ImageURL
	}

	if err := s.posts.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	creator, err := s.users.GetByID(post.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}

	view := postView(post, creator)
	s.notifier.Publish(realtime.Event{Action: realtime.ActionUpdate, Post: view})
	return view, nil
}

// DeletePost removes a post owned by the acting user, clears its image,
// removes the reference from the owner's post set and broadcasts a delete
// event carrying the post id.
func (s *FeedService) DeletePost(ctx context.Context, auth models.AuthContext, id string) (*PostView, error) {
	if !auth.IsAuthenticated {
		return nil, apperr.Unauthenticated("Not Authenticated")
	}

	post, err := s.loadPost(id)
	if err != nil {
		return nil, err
	}
	if !post.OwnedBy(auth.UserID) {
		return nil, apperr.Forbidden("Not Authorized")
	}

	s.images.Delete(ctx, post.ImageURL)

	if err := s.posts.Delete(post.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperr.NotFound("No post found!")
		}
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	user, err := s.users.GetByID(auth.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load creator: %w", err)
	}
	user.RemovePost(post.ID)
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update creator's posts: %w", err)
	}

	s.notifier.Publish(realtime.Event{Action: realtime.ActionDelete, Post: post.ID.String()})
	s.log.WithField("post", post.ID.String()).Info("post deleted")
	return postView(post, user), nil
}

// loadPost parses the id and fetches the post. Unparseable ids behave like
// absent posts.
func (s *FeedService) loadPost(id string) (*models.Post, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.NotFound("No post found!")
	}

	post, err := s.posts.GetByID(pid)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperr.NotFound("No post found!")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return post, nil
}
