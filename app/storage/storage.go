package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrUnsupportedType is returned when the uploaded file is not a png/jpg/jpeg
// image. Callers treat such uploads as if no file was provided.
var ErrUnsupportedType = errors.New("unsupported image type")

// ImageStore persists uploaded images and hands out references into the
// store. Delete is best-effort: failures are logged, never surfaced.
type ImageStore interface {
	Store(ctx context.Context, r io.Reader, filename, mimeType string) (string, error)
	Delete(ctx context.Context, ref string)
}

func allowedType(mimeType string) bool {
	switch mimeType {
	case "image/png", "image/jpg", "image/jpeg":
		return true
	}
	return false
}

func objectName(filename string) string {
	base := filepath.Base(filename)
	base = strings.ReplaceAll(base, " ", "_")
	return uuid.New().String() + "-" + base
}

// DiskStore stores images on the local filesystem.
type DiskStore struct {
	dir string
	log *logrus.Logger
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir string, log *logrus.Logger) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory: %w", err)
	}
	return &DiskStore{dir: dir, log: log}, nil
}

// Store writes the image to disk and returns its reference, a slash-separated
// path under the store's directory.
func (s *DiskStore) Store(_ context.Context, r io.Reader, filename, mimeType string) (string, error) {
	if !allowedType(mimeType) {
		return "", ErrUnsupportedType
	}

	name := objectName(filename)
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return filepath.ToSlash(filepath.Join(filepath.Base(s.dir), name)), nil
}

// Delete removes the referenced image. Failures are logged and swallowed.
func (s *DiskStore) Delete(_ context.Context, ref string) {
	if ref == "" {
		return
	}
	path := filepath.Join(s.dir, filepath.Base(ref))
	if err := os.Remove(path); err != nil {
		s.log.WithError(err).WithField("ref", ref).Warn("failed to delete image")
	}
}
