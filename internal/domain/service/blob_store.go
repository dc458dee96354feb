package service

import "context"

// BlobStore abstracts the bucket holding uploaded images. Implementations
// expose objects through stable public URLs and can resolve those URLs back
// to object keys for deletion.
type BlobStore interface {
	// Upload writes payload under the given object key and returns the
	// public URL the object is reachable at.
	Upload(ctx context.Context, key string, payload []byte, contentType string) (string, error)

	// OwnsURL reports whether a public URL points into this bucket.
	// Foreign URLs (e.g. hotlinked images) are never deleted.
	OwnsURL(publicURL string) bool

	// DeleteByPublicURL parses the object key out of a public URL and
	// removes the object. Unknown URLs return an error.
	DeleteByPublicURL(ctx context.Context, publicURL string) error
}
