package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStore(t *testing.T) *blobAvatarStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobAvatarStore{
		bucket:        bucket,
		publicBaseURL: "https://cdn.example.com",
	}
}

func TestBlobAvatarStore_UploadAndDelete(t *testing.T) {
	store := newMemStore(t)
	ctx := context.Background()

	url, err := store.Upload(ctx, "avatars/abc/1.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/abc/1.png", url)

	exists, err := store.bucket.Exists(ctx, "avatars/abc/1.png")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, "avatars/abc/1.png"))

	exists, err = store.bucket.Exists(ctx, "avatars/abc/1.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobAvatarStore_DeleteMissingIsIdempotent(t *testing.T) {
	store := newMemStore(t)

	// Cleanup paths run best-effort and may retry; a missing key is fine.
	assert.NoError(t, store.Delete(context.Background(), "avatars/never/there.png"))
}
