package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"snapfeed/app/apperr"
	"snapfeed/app/middleware"
	"snapfeed/app/services"
	"snapfeed/app/storage"
	"snapfeed/app/validation"
)

// restPageSize is the REST listing page size. The GraphQL surface uses its
// own, smaller page size.
const restPageSize = 3

const maxUploadBytes = 10 << 20

// FeedController handles HTTP requests for the post feed
type FeedController struct {
	feed   *services.FeedService
	images storage.ImageStore
	log    *logrus.Logger
}

// NewFeedController creates a new FeedController
func NewFeedController(feed *services.FeedService, images storage.ImageStore, log *logrus.Logger) *FeedController {
	return &FeedController{feed: feed, images: images, log: log}
}

// GetPosts handles the paginated listing. A missing or unparseable page
// falls back to the first page.
func (c *FeedController) GetPosts(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	feed, err := c.feed.ListPosts(r.Context(), middleware.AuthFrom(r.Context()), page, restPageSize)
	if err != nil {
		sendError(w, c.log, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Posts fetched successfully",
		"posts":      feed.Posts,
		"totalItems": feed.Total,
	})
}

// GetPost handles fetching a single post
func (c *FeedController) GetPost(w http.ResponseWriter, r *http.Request) {
	view, err := c.feed.GetPost(r.Context(), middleware.AuthFrom(r.Context()), mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, c.log, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{"post": view})
}

// CreatePost handles multipart post creation. The attached file is stored
// first; its reference becomes the post's image reference.
func (c *FeedController) CreatePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	ref, ok := c.storeUpload(w, r)
	if !ok {
		return
	}
	if ref == "" {
		sendError(w, c.log, apperr.InvalidInput("No image provided", nil))
		return
	}

	view, err := c.feed.CreatePost(r.Context(), middleware.AuthFrom(r.Context()), validation.PostInput{
		Title:    r.FormValue("title"),
		ImageURL: ref,
		Content:  r.FormValue("content"),
	})
	if err != nil {
		sendError(w, c.log, err)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Post created successfully!",
		"post":    view,
		"creator": map[string]string{"_id": view.Creator.ID, "name": view.Creator.Name},
	})
}

// UpdatePost handles multipart post update. Without a new file the "image"
// form field must carry the current reference; a changed reference deletes
// the replaced image.
func (c *FeedController) UpdatePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	ref, ok := c.storeUpload(w, r)
	if !ok {
		return
	}
	if ref == "" {
		ref = r.FormValue("image")
	}
	if ref == "" {
		sendError(w, c.log, apperr.InvalidInput("No image provided", nil))
		return
	}

	view, err := c.feed.UpdatePost(r.Context(), middleware.AuthFrom(r.Context()), mux.Vars(r)["postId"], validation.PostInput{
		Title:    r.FormValue("title"),
		ImageURL: ref,
		Content:  r.FormValue("content"),
	}, true)
	if err != nil {
		sendError(w, c.log, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Posts updated successfully",
		"post":    view,
	})
}

// DeletePost handles post deletion
func (c *FeedController) DeletePost(w http.ResponseWriter, r *http.Request) {
	_, err := c.feed.DeletePost(r.Context(), middleware.AuthFrom(r.Context()), mux.Vars(r)["postId"])
	if err != nil {
		sendError(w, c.log, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{"message": "Post deleted successfully"})
}

// storeUpload stores the attached image file if one is present. It returns
// an empty reference when no usable file was attached, and ok=false when a
// response has already been written.
func (c *FeedController) storeUpload(w http.ResponseWriter, r *http.Request) (string, bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", true
	}
	defer file.Close()

	ref, err := c.images.Store(r.Context(), file, header.Filename, header.Header.Get("Content-Type"))
	if errors.Is(err, storage.ErrUnsupportedType) {
		// Non-image uploads are silently discarded.
		return "", true
	}
	if err != nil {
		sendError(w, c.log, err)
		return "", false
	}
	return ref, true
}
