package service

import (
	"context"
	"io"
)

// AvatarStore persists avatar images in blob storage. Implementations return
// a publicly resolvable URL for each stored object.
type AvatarStore interface {
	// Upload stores the image under the given path and returns its public URL.
	Upload(ctx context.Context, path, contentType string, r io.Reader) (url string, err error)

	// Delete removes a previously stored image.
	Delete(ctx context.Context, path string) error
}
