package controllers

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"snapfeed/app/apperr"
	"snapfeed/app/middleware"
	"snapfeed/app/storage"
)

// ImageController handles the standalone image upload endpoint used by the
// GraphQL flow: the client uploads the file here first, then sends the
// returned reference with its mutation.
type ImageController struct {
	images storage.ImageStore
	log    *logrus.Logger
}

// NewImageController creates a new ImageController
func NewImageController(images storage.ImageStore, log *logrus.Logger) *ImageController {
	return &ImageController{images: images, log: log}
}

// Upload stores the attached image and returns its reference. When oldPath
// is supplied the replaced image is deleted best-effort.
func (c *ImageController) Upload(w http.ResponseWriter, r *http.Request) {
	if !middleware.AuthFrom(r.Context()).IsAuthenticated {
		sendError(w, c.log, apperr.Unauthenticated("Not Authenticated"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("image")
	if err != nil {
		sendJSON(w, http.StatusOK, map[string]interface{}{"message": "No files provided!"})
		return
	}
	defer file.Close()

	ref, err := c.images.Store(r.Context(), file, header.Filename, header.Header.Get("Content-Type"))
	if errors.Is(err, storage.ErrUnsupportedType) {
		sendJSON(w, http.StatusOK, map[string]interface{}{"message": "No files provided!"})
		return
	}
	if err != nil {
		sendError(w, c.log, err)
		return
	}

	if oldPath := r.FormValue("oldPath"); oldPath != "" {
		c.images.Delete(r.Context(), oldPath)
	}

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "File stored!",
		"filePath": ref,
	})
}
