package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	mockUsecase "vitrine/internal/mocks/usecase"
	"vitrine/internal/upload"
	"vitrine/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// buildMultipart assembles a multipart body with the given file field values.
func buildMultipart(t *testing.T, field string, names []string, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	for _, name := range names {
		part, err := writer.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	for key, value := range extra {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func newUploadTestContext(t *testing.T, body io.Reader, contentType string) (*UploadHandler, *mockUsecase.MockUploadUsecase, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	uc := new(mockUsecase.MockUploadUsecase)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewUploadHandler(uc, logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return h, uc, c, rec
}

func TestUploadHandler_SingleFileAnswersObject(t *testing.T) {
	body, contentType := buildMultipart(t, "file", []string{"photo.jpg"}, nil)
	h, uc, c, rec := newUploadTestContext(t, body, contentType)

	uc.On("UploadImages", mock.Anything, mock.MatchedBy(func(input *usecase.UploadImagesInput) bool {
		return len(input.Files) == 1 && input.Files[0].Name == "photo.jpg"
	})).Return([]upload.Result{
		{URL: "https://cdn.example.com/uploads/1-photo.jpg", Name: "photo.jpg"},
	}, nil)

	err := h.UploadImages(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	// A single "file" part answers one object, not an array.
	assert.Contains(t, rec.Body.String(), `"data":{`)
	assert.Contains(t, rec.Body.String(), "1-photo.jpg")
}

func TestUploadHandler_MultipleFilesAnswerArray(t *testing.T) {
	body, contentType := buildMultipart(t, "files", []string{"a.jpg", "b.jpg"}, map[string]string{"customName": "gallery"})
	h, uc, c, rec := newUploadTestContext(t, body, contentType)

	uc.On("UploadImages", mock.Anything, mock.MatchedBy(func(input *usecase.UploadImagesInput) bool {
		return len(input.Files) == 2 && input.CustomName == "gallery"
	})).Return([]upload.Result{
		{URL: "https://cdn.example.com/uploads/1-gallery-1.jpg"},
		{URL: "https://cdn.example.com/uploads/2-gallery-2.jpg"},
	}, nil)

	err := h.UploadImages(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[`)
}

func TestUploadHandler_IndexFieldStartsNumbering(t *testing.T) {
	body, contentType := buildMultipart(t, "file", []string{"c.jpg"}, map[string]string{
		"customName": "gallery",
		"index":      "3",
	})
	h, uc, c, rec := newUploadTestContext(t, body, contentType)

	uc.On("UploadImages", mock.Anything, mock.MatchedBy(func(input *usecase.UploadImagesInput) bool {
		return input.StartIndex == 3 && input.CustomName == "gallery"
	})).Return([]upload.Result{
		{URL: "https://cdn.example.com/uploads/1-gallery-3.jpg", Name: "gallery-3.jpg"},
	}, nil)

	err := h.UploadImages(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestUploadHandler_InvalidIndex(t *testing.T) {
	body, contentType := buildMultipart(t, "file", []string{"c.jpg"}, map[string]string{"index": "zero"})
	h, uc, c, rec := newUploadTestContext(t, body, contentType)

	err := h.UploadImages(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "UploadImages")
}

func TestUploadHandler_NoFile(t *testing.T) {
	body, contentType := buildMultipart(t, "files", nil, map[string]string{"customName": "empty"})
	h, uc, c, rec := newUploadTestContext(t, body, contentType)

	err := h.UploadImages(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "UploadImages")
}
