// Package upload implements the staging area that sits between file
// selection and the blob store. It holds already-persisted remote images and
// newly picked files as one capped list, validates candidates before any
// network traffic, and performs the final upload batch in order.
package upload

import (
	"context"
	"fmt"
	"time"

	"vitrine/internal/domain/service"
	"vitrine/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DefaultMaxFileSize is the per-file size ceiling (5 MiB).
const DefaultMaxFileSize int64 = 5 << 20

// Candidate is a file offered to the stager, not yet validated.
type Candidate struct {
	Name        string
	ContentType string
	Payload     []byte
}

// StagedFile is an accepted, not-yet-uploaded file.
type StagedFile struct {
	ID          uuid.UUID
	Name        string
	ContentType string
	Size        int64
	Payload     []byte
}

// ExistingImage is an already-persisted remote image kept in the unified list.
type ExistingImage struct {
	ID  uuid.UUID
	URL string
}

// Result describes one uploaded blob, in the same order as the staged input.
type Result struct {
	URL  string `json:"url"`
	Name string `json:"filename"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Stager validates and stages files for a single submit.
type Stager struct {
	store       service.BlobStore
	maxFiles    int
	maxFileSize int64
	startIndex  int
	existing    []ExistingImage
	selected    []StagedFile

	now func() time.Time // injected for deterministic object keys in tests
}

// NewStager builds a stager for one form. maxFiles of 1 selects single-file
// mode, where adding a file replaces whatever is staged. A non-positive
// maxFileSize falls back to DefaultMaxFileSize.
func NewStager(store service.BlobStore, maxFiles int, maxFileSize int64) *Stager {
	if maxFiles < 1 {
		maxFiles = 1
	}
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}

	return &Stager{
		store:       store,
		maxFiles:    maxFiles,
		maxFileSize: maxFileSize,
		startIndex:  1,
		now:         time.Now,
	}
}

// SetStartIndex shifts the 1-based filename numbering, so a gallery built
// one request at a time keeps counting where the previous batch stopped.
// Values below 1 fall back to 1.
func (s *Stager) SetStartIndex(start int) {
	if start < 1 {
		start = 1
	}
	s.startIndex = start
}

// SetExisting seeds the stager with the images already persisted on the
// entity being edited.
func (s *Stager) SetExisting(images []ExistingImage) {
	s.existing = append([]ExistingImage(nil), images...)
}

// Existing returns the remote images still attached to the entity.
func (s *Stager) Existing() []ExistingImage {
	return s.existing
}

// Files returns the staged local files in selection order.
func (s *Stager) Files() []StagedFile {
	return s.selected
}

// AddFiles validates candidates and stages the acceptable ones. Every
// rejection produces a message; valid files beyond the remaining capacity
// are dropped with a single "maximum N files" message. In single-file mode
// an accepted file replaces the staged one and clears the existing-remote
// list; a rejected candidate leaves both untouched.
func (s *Stager) AddFiles(candidates []Candidate) []string {
	var msgs []string

	overflowed := false
	for _, cand := range candidates {
		if !isImageType(cand.ContentType) {
			msgs = append(msgs, fmt.Sprintf("%s: not an image", cand.Name))

			continue
		}
		if int64(len(cand.Payload)) > s.maxFileSize {
			msgs = append(msgs, fmt.Sprintf("%s: exceeds the %s limit", cand.Name, util.FormatBytes(s.maxFileSize)))

			continue
		}

		// Exactly one image per entity: an accepted pick wins. Rejected
		// candidates must leave already-valid staged state untouched.
		if s.maxFiles == 1 {
			s.selected = nil
			s.existing = nil
		}

		if len(s.existing)+len(s.selected) >= s.maxFiles {
			overflowed = true

			continue
		}

		s.selected = append(s.selected, StagedFile{
			ID:          uuid.New(),
			Name:        cand.Name,
			ContentType: cand.ContentType,
			Size:        int64(len(cand.Payload)),
			Payload:     cand.Payload,
		})
	}

	if overflowed {
		msgs = append(msgs, fmt.Sprintf("maximum %d files", s.maxFiles))
	}

	return msgs
}

// RemoveFile drops a staged local file.
func (s *Stager) RemoveFile(id uuid.UUID) {
	for i, f := range s.selected {
		if f.ID == id {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)

			return
		}
	}
}

// RemoveExisting detaches an already-persisted image.
func (s *Stager) RemoveExisting(id uuid.UUID) {
	for i, img := range s.existing {
		if img.ID == id {
			s.existing = append(s.existing[:i], s.existing[i+1:]...)

			return
		}
	}
}

// Reset clears both lists, e.g. after a successful submit.
func (s *Stager) Reset() {
	s.selected = nil
	s.existing = nil
}

// UploadAll sends every staged file to the blob store, sequentially and in
// staged order. Callers zip the results against form fields positionally, so
// result order matching input order is a correctness requirement. The first
// failed upload aborts the batch: no partial result is returned, and nothing
// may be written to the content store afterwards.
func (s *Stager) UploadAll(ctx context.Context, namePrefix string) ([]Result, error) {
	if len(s.selected) == 0 {
		return nil, nil
	}

	results := make([]Result, 0, len(s.selected))
	// A start index above 1 means this batch continues an earlier one, so
	// even a lone file keeps its position suffix.
	total := len(s.selected) + s.startIndex - 1
	for i, file := range s.selected {
		filename := BlobFilename(namePrefix, file.Name, s.startIndex+i, total)
		key := ObjectKey(s.now(), filename)

		url, err := s.store.Upload(ctx, key, file.Payload, file.ContentType)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to upload %q", file.Name)
		}

		results = append(results, Result{
			URL:  url,
			Name: filename,
			Size: file.Size,
			Type: file.ContentType,
		})
	}

	return results, nil
}

// RemainingURLs returns the URLs of the existing images that survived
// editing, in display order.
func (s *Stager) RemainingURLs() []string {
	urls := make([]string, 0, len(s.existing))
	for _, img := range s.existing {
		urls = append(urls, img.URL)
	}

	return urls
}

func isImageType(contentType string) bool {
	return len(contentType) > 6 && contentType[:6] == "image/"
}
