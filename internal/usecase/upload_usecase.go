package usecase

import (
	"context"

	"vitrine/internal/upload"
)

// UploadUsecase defines the image upload operations of the admin panel.
type UploadUsecase interface {
	// UploadImages validates and uploads a batch of images in one pass,
	// returning one result per file in input order. Validation failures
	// reject the whole batch before anything is uploaded.
	UploadImages(ctx context.Context, input *UploadImagesInput) ([]upload.Result, error)

	// DeleteImage best-effort removes an uploaded blob by its public URL.
	// Foreign URLs are ignored.
	DeleteImage(ctx context.Context, publicURL string) error
}

// --- Input DTOs ---

// UploadImagesInput defines an upload batch.
type UploadImagesInput struct {
	// Files holds the raw multipart payloads in form order.
	Files []upload.Candidate

	// CustomName optionally overrides the stored filenames; it is
	// slugified and indexed per file.
	CustomName string

	// MaxFiles caps the batch; non-positive means single-file mode.
	MaxFiles int

	// StartIndex is the 1-based position the filename numbering starts
	// at, letting a gallery uploaded one request at a time keep counting.
	// Non-positive means 1.
	StartIndex int
}
