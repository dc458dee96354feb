package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"vitrine/internal/delivery/http/response"
	"vitrine/internal/upload"
	"vitrine/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for the image upload endpoint.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, logger: logger}
}

// UploadImages accepts one "file" or several "files" multipart parts plus an
// optional customName and an optional 1-based index the filename numbering
// starts at, and answers with one result per file in form order. A single
// "file" part gets a single object back instead of an array.
func (h *UploadHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Expected multipart form data")
	}

	fileHeaders := form.File["files"]
	single := false
	if len(fileHeaders) == 0 {
		fileHeaders = form.File["file"]
		single = len(fileHeaders) > 0
	}
	if len(fileHeaders) == 0 {
		return response.BadRequest(c, "UPLOAD_REJECTED", "No file provided")
	}

	candidates := make([]upload.Candidate, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		src, err := header.Open()
		if err != nil {
			return errors.Wrapf(err, "failed to open %q", header.Filename)
		}

		payload, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return errors.Wrapf(err, "failed to read %q", header.Filename)
		}

		candidates = append(candidates, upload.Candidate{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Payload:     payload,
		})
	}

	startIndex := 0
	if raw := c.FormValue("index"); raw != "" {
		startIndex, err = strconv.Atoi(raw)
		if err != nil || startIndex < 1 {
			return response.BadRequest(c, "VALIDATION_FAILED", "Invalid index value")
		}
	}

	results, err := h.uc.UploadImages(c.Request().Context(), &usecase.UploadImagesInput{
		Files:      candidates,
		CustomName: c.FormValue("customName"),
		MaxFiles:   len(candidates),
		StartIndex: startIndex,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if single {
		return response.Success(c, http.StatusCreated, results[0], "File uploaded")
	}

	return response.Success(c, http.StatusCreated, results, "Files uploaded")
}

// DeleteImage best-effort removes an uploaded blob by its public URL.
func (h *UploadHandler) DeleteImage(c echo.Context) error {
	var input struct {
		URL string `json:"url" validate:"required,url"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteImage(c.Request().Context(), input.URL); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true}, "Image deleted")
}
