package upload

import (
	"context"
	"testing"
	"time"

	mockservice "vitrine/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedStager(store *mockservice.MockBlobStore, maxFiles int) *Stager {
	s := NewStager(store, maxFiles, 0)
	s.now = func() time.Time { return time.UnixMilli(1735689600123) }

	return s
}

func TestStagerAddFilesValidation(t *testing.T) {
	t.Parallel()

	s := fixedStager(new(mockservice.MockBlobStore), 4)

	msgs := s.AddFiles([]Candidate{
		{Name: "notes.pdf", ContentType: "application/pdf", Payload: []byte("x")},
		{Name: "big.jpg", ContentType: "image/jpeg", Payload: make([]byte, DefaultMaxFileSize+1)},
		{Name: "ok.jpg", ContentType: "image/jpeg", Payload: []byte("jpeg")},
	})

	require.Len(t, msgs, 2)
	assert.Equal(t, "notes.pdf: not an image", msgs[0])
	assert.Equal(t, "big.jpg: exceeds the 5.0 MB limit", msgs[1])
	require.Len(t, s.Files(), 1)
	assert.Equal(t, "ok.jpg", s.Files()[0].Name)
}

func TestStagerAddFilesCapacity(t *testing.T) {
	t.Parallel()

	s := fixedStager(new(mockservice.MockBlobStore), 2)
	s.SetExisting([]ExistingImage{{URL: "https://cdn.example.com/uploads/1-old.jpg"}})

	msgs := s.AddFiles([]Candidate{
		{Name: "a.jpg", ContentType: "image/jpeg", Payload: []byte("a")},
		{Name: "b.jpg", ContentType: "image/jpeg", Payload: []byte("b")},
		{Name: "c.jpg", ContentType: "image/jpeg", Payload: []byte("c")},
	})

	// Existing images count against the cap; one slot was free.
	require.Len(t, msgs, 1)
	assert.Equal(t, "maximum 2 files", msgs[0])
	require.Len(t, s.Files(), 1)
	assert.Equal(t, "a.jpg", s.Files()[0].Name)
}

func TestStagerSingleModeReplaces(t *testing.T) {
	t.Parallel()

	s := fixedStager(new(mockservice.MockBlobStore), 1)
	s.SetExisting([]ExistingImage{{URL: "https://cdn.example.com/uploads/1-old.jpg"}})

	msgs := s.AddFiles([]Candidate{{Name: "new.png", ContentType: "image/png", Payload: []byte("p")}})

	assert.Empty(t, msgs)
	assert.Empty(t, s.Existing())
	require.Len(t, s.Files(), 1)
	assert.Equal(t, "new.png", s.Files()[0].Name)
}

func TestStagerSingleModeKeepsStateOnRejection(t *testing.T) {
	t.Parallel()

	s := fixedStager(new(mockservice.MockBlobStore), 1)
	s.AddFiles([]Candidate{{Name: "good.png", ContentType: "image/png", Payload: []byte("p")}})
	require.Len(t, s.Files(), 1)

	msgs := s.AddFiles([]Candidate{{Name: "notes.txt", ContentType: "text/plain", Payload: []byte("t")}})

	require.Len(t, msgs, 1)
	assert.Equal(t, "notes.txt: not an image", msgs[0])
	// A rejected candidate never displaces the valid staged file.
	require.Len(t, s.Files(), 1)
	assert.Equal(t, "good.png", s.Files()[0].Name)
}

func TestStagerSingleModeKeepsExistingOnRejection(t *testing.T) {
	t.Parallel()

	s := fixedStager(new(mockservice.MockBlobStore), 1)
	s.SetExisting([]ExistingImage{{URL: "https://cdn.example.com/uploads/1-old.jpg"}})

	msgs := s.AddFiles([]Candidate{
		{Name: "huge.jpg", ContentType: "image/jpeg", Payload: make([]byte, DefaultMaxFileSize+1)},
	})

	require.Len(t, msgs, 1)
	require.Len(t, s.Existing(), 1)
	assert.Equal(t, "https://cdn.example.com/uploads/1-old.jpg", s.Existing()[0].URL)
}

func TestStagerUploadAllStartIndex(t *testing.T) {
	t.Parallel()

	store := new(mockservice.MockBlobStore)
	s := fixedStager(store, 4)
	s.SetStartIndex(2)
	s.AddFiles([]Candidate{{Name: "next.jpg", ContentType: "image/jpeg", Payload: []byte("n")}})

	// One file continuing an earlier batch keeps its position suffix.
	store.On("Upload", context.Background(), "uploads/1735689600123-gallery-2.jpg", []byte("n"), "image/jpeg").
		Return("https://cdn.example.com/uploads/1735689600123-gallery-2.jpg", nil)

	results, err := s.UploadAll(context.Background(), "Gallery")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "gallery-2.jpg", results[0].Name)
	store.AssertExpectations(t)
}

func TestStagerRemoveFile(t *testing.T) {
	t.Parallel()

	s := fixedStager(new(mockservice.MockBlobStore), 4)
	s.AddFiles([]Candidate{
		{Name: "a.jpg", ContentType: "image/jpeg", Payload: []byte("a")},
		{Name: "b.jpg", ContentType: "image/jpeg", Payload: []byte("b")},
	})

	s.RemoveFile(s.Files()[0].ID)

	require.Len(t, s.Files(), 1)
	assert.Equal(t, "b.jpg", s.Files()[0].Name)
}

func TestStagerUploadAllPreservesOrder(t *testing.T) {
	t.Parallel()

	store := new(mockservice.MockBlobStore)
	s := fixedStager(store, 4)
	s.AddFiles([]Candidate{
		{Name: "first.jpg", ContentType: "image/jpeg", Payload: []byte("1")},
		{Name: "second.jpg", ContentType: "image/jpeg", Payload: []byte("2")},
		{Name: "third.jpg", ContentType: "image/jpeg", Payload: []byte("3")},
	})

	store.On("Upload", context.Background(), "uploads/1735689600123-gallery-1.jpg", []byte("1"), "image/jpeg").
		Return("https://cdn.example.com/uploads/1735689600123-gallery-1.jpg", nil)
	store.On("Upload", context.Background(), "uploads/1735689600123-gallery-2.jpg", []byte("2"), "image/jpeg").
		Return("https://cdn.example.com/uploads/1735689600123-gallery-2.jpg", nil)
	store.On("Upload", context.Background(), "uploads/1735689600123-gallery-3.jpg", []byte("3"), "image/jpeg").
		Return("https://cdn.example.com/uploads/1735689600123-gallery-3.jpg", nil)

	results, err := s.UploadAll(context.Background(), "Gallery")

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "gallery-1.jpg", results[0].Name)
	assert.Equal(t, "gallery-2.jpg", results[1].Name)
	assert.Equal(t, "gallery-3.jpg", results[2].Name)
	assert.Equal(t, "https://cdn.example.com/uploads/1735689600123-gallery-2.jpg", results[1].URL)
	store.AssertExpectations(t)
}

func TestStagerUploadAllAbortsOnFailure(t *testing.T) {
	t.Parallel()

	store := new(mockservice.MockBlobStore)
	s := fixedStager(store, 4)
	s.AddFiles([]Candidate{
		{Name: "first.jpg", ContentType: "image/jpeg", Payload: []byte("1")},
		{Name: "second.jpg", ContentType: "image/jpeg", Payload: []byte("2")},
	})

	store.On("Upload", context.Background(), "uploads/1735689600123-batch-1.jpg", []byte("1"), "image/jpeg").
		Return("", errors.New("bucket unavailable"))

	results, err := s.UploadAll(context.Background(), "Batch")

	require.Error(t, err)
	assert.Nil(t, results)
	// The second file must never reach the store once the first fails.
	store.AssertNumberOfCalls(t, "Upload", 1)
}

func TestStagerUploadAllEmpty(t *testing.T) {
	t.Parallel()

	store := new(mockservice.MockBlobStore)
	s := fixedStager(store, 4)

	results, err := s.UploadAll(context.Background(), "Gallery")

	require.NoError(t, err)
	assert.Empty(t, results)
	store.AssertNotCalled(t, "Upload")
}

func TestStagerRemainingURLs(t *testing.T) {
	t.Parallel()

	s := fixedStager(new(mockservice.MockBlobStore), 4)
	s.SetExisting([]ExistingImage{
		{URL: "https://cdn.example.com/uploads/1-a.jpg"},
		{URL: "https://cdn.example.com/uploads/2-b.jpg"},
	})
	s.RemoveExisting(s.Existing()[0].ID)

	assert.Equal(t, []string{"https://cdn.example.com/uploads/2-b.jpg"}, s.RemainingURLs())
}
