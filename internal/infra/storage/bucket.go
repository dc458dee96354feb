// Package storage implements the blob store on top of gocloud.dev buckets,
// so the same code serves a local directory in development and an object
// store in production.
package storage

import (
	"context"
	"strings"

	"vitrine/config"
	"vitrine/internal/domain/lifecycle"
	"vitrine/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	// Register the bucket schemes used across environments.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// Params defines the parameters required to open the bucket.
type Params struct {
	fx.In

	Config    *config.Config
	Lifecycle fx.Lifecycle
}

type bucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New opens the configured bucket and closes it on shutdown.
func New(params Params) (service.BlobStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", params.Config.Storage.BucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return newBucketStore(bucket, params.Config.Storage.PublicBaseURL), nil
}

func newBucketStore(bucket *blob.Bucket, publicBaseURL string) service.BlobStore {
	return &bucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload writes payload under key and returns the public URL for it.
func (s *bucketStore) Upload(ctx context.Context, key string, payload []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, payload, opts); err != nil {
		return "", errors.Wrapf(err, "write object %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// OwnsURL reports whether the public URL points into this bucket.
func (s *bucketStore) OwnsURL(publicURL string) bool {
	return strings.HasPrefix(publicURL, s.publicBaseURL+"/")
}

// DeleteByPublicURL resolves a public URL back to its object key and deletes
// the object. A missing object is not an error: the URL is gone either way.
func (s *bucketStore) DeleteByPublicURL(ctx context.Context, publicURL string) error {
	if !s.OwnsURL(publicURL) {
		return errors.Errorf("url %s does not belong to this bucket", publicURL)
	}

	key := strings.TrimPrefix(publicURL, s.publicBaseURL+"/")
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "delete object %s", key)
	}

	return nil
}
