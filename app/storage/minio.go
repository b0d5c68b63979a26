package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

// Internal adapter interface to enable mocking without a real MinIO server.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// Wrapper to adapt *minio.Client to minioAPI.
type minioClientWrapper struct{ c *minio.Client }

func (w minioClientWrapper) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return w.c.BucketExists(ctx, bucketName)
}
func (w minioClientWrapper) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	return w.c.MakeBucket(ctx, bucketName, opts)
}
func (w minioClientWrapper) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	return w.c.PutObject(ctx, bucketName, objectName, reader, objectSize, opts)
}
func (w minioClientWrapper) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	return w.c.RemoveObject(ctx, bucketName, objectName, opts)
}

var _ ImageStore = (*MinioStore)(nil)

// MinioStore stores images in an object storage bucket.
type MinioStore struct {
	api    minioAPI
	bucket string
	log    *logrus.Logger
}

// NewMinioStore creates a MinioStore using a real *minio.Client instance.
func NewMinioStore(ctx context.Context, client *minio.Client, bucket string, log *logrus.Logger) (*MinioStore, error) {
	return newMinioStoreWithAPI(ctx, minioClientWrapper{c: client}, bucket, log)
}

// newMinioStoreWithAPI allows injecting a mockable API (used in tests).
func newMinioStoreWithAPI(ctx context.Context, api minioAPI, bucket string, log *logrus.Logger) (*MinioStore, error) {
	s := &MinioStore{api: api, bucket: bucket, log: log}
	if err := s.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}
	return s, nil
}

// ensureBucketExists creates the bucket if it doesn't exist
func (s *MinioStore) ensureBucketExists(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Store uploads the image and returns its object key as the reference.
func (s *MinioStore) Store(ctx context.Context, r io.Reader, filename, mimeType string) (string, error) {
	if !allowedType(mimeType) {
		return "", ErrUnsupportedType
	}

	key := "images/" + objectName(filename)
	_, err := s.api.PutObject(ctx, s.bucket, key, r, -1, minio.PutObjectOptions{ContentType: mimeType})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return key, nil
}

// Delete removes the referenced object. Failures are logged and swallowed.
func (s *MinioStore) Delete(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.api.RemoveObject(ctx, s.bucket, ref, minio.RemoveObjectOptions{}); err != nil {
		s.log.WithError(err).WithField("ref", ref).Warn("failed to delete image")
	}
}
