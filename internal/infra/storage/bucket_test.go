package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStore(t *testing.T) *bucketStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return newBucketStore(bucket, "https://cdn.example.com/").(*bucketStore)
}

func TestBucketStore_UploadReturnsPublicURL(t *testing.T) {
	store := newMemStore(t)

	url, err := store.Upload(context.Background(), "uploads/1-a.jpg", []byte("jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/1-a.jpg", url)

	exists, err := store.bucket.Exists(context.Background(), "uploads/1-a.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestBucketStore_OwnsURL(t *testing.T) {
	store := newMemStore(t)

	assert.True(t, store.OwnsURL("https://cdn.example.com/uploads/1-a.jpg"))
	assert.False(t, store.OwnsURL("https://elsewhere.example.com/uploads/1-a.jpg"))
	assert.False(t, store.OwnsURL("not a url"))
}

func TestBucketStore_DeleteByPublicURL(t *testing.T) {
	store := newMemStore(t)

	url, err := store.Upload(context.Background(), "uploads/1-a.jpg", []byte("jpeg"), "image/jpeg")
	require.NoError(t, err)

	require.NoError(t, store.DeleteByPublicURL(context.Background(), url))

	exists, err := store.bucket.Exists(context.Background(), "uploads/1-a.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBucketStore_DeleteMissingObjectIsNoError(t *testing.T) {
	store := newMemStore(t)

	err := store.DeleteByPublicURL(context.Background(), "https://cdn.example.com/uploads/never-existed.jpg")
	assert.NoError(t, err)
}

func TestBucketStore_DeleteForeignURLFails(t *testing.T) {
	store := newMemStore(t)

	err := store.DeleteByPublicURL(context.Background(), "https://elsewhere.example.com/uploads/1-a.jpg")
	assert.Error(t, err)
}
