// Package storage persists avatar images in blob storage via gocloud.dev,
// so the same code serves a local directory in development and a cloud
// bucket in production.
package storage

import (
	"context"
	"io"
	"strings"

	"quill/config"
	"quill/internal/domain/lifecycle"
	"quill/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
)

// blobAvatarStore implements AvatarStore on top of a gocloud blob bucket.
type blobAvatarStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewBlobAvatarStore opens the configured bucket and registers its shutdown
// with the Fx lifecycle.
func NewBlobAvatarStore(lc fx.Lifecycle, cfg *config.Config) (service.AvatarStore, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open avatar bucket")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobAvatarStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.Storage.PublicBaseURL, "/"),
	}, nil
}

// Upload stores the image under path and returns the URL it will be served
// from.
func (s *blobAvatarStore) Upload(ctx context.Context, path, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, path, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write avatar to bucket")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize avatar upload")
	}

	return s.publicBaseURL + "/" + path, nil
}

// Delete removes a stored image. Deleting a missing key is not an error, so
// retried cleanups stay idempotent.
func (s *blobAvatarStore) Delete(ctx context.Context, path string) error {
	err := s.bucket.Delete(ctx, path)
	if err == nil {
		return nil
	}
	if exists, existsErr := s.bucket.Exists(ctx, path); existsErr == nil && !exists {
		return nil
	}

	return errors.Wrap(err, "failed to delete avatar from bucket")
}
