package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"vitrine/internal/delivery/http/response"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeroHandler holds dependencies for hero-carousel handlers.
type HeroHandler struct {
	uc     usecase.HeroUsecase
	logger *slog.Logger
}

// NewHeroHandler is the constructor for HeroHandler, injected by Fx.
func NewHeroHandler(uc usecase.HeroUsecase, logger *slog.Logger) *HeroHandler {
	return &HeroHandler{uc: uc, logger: logger}
}

// ListHeroImages returns the carousel tiles in display order.
func (h *HeroHandler) ListHeroImages(c echo.Context) error {
	heroes, err := h.uc.ListHeroImages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, heroes, "")
}

// CreateHeroImages handles tile creation. The body is either one tile or an
// array of tiles; the response shape mirrors the request shape.
func (h *HeroHandler) CreateHeroImages(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hero image input")
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	batch := len(trimmed) > 0 && trimmed[0] == '['

	var inputs []*usecase.CreateHeroImageInput
	if batch {
		if err := json.Unmarshal(body, &inputs); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid hero image input")
		}
	} else {
		var input usecase.CreateHeroImageInput
		if err := json.Unmarshal(body, &input); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid hero image input")
		}
		inputs = append(inputs, &input)
	}

	for _, input := range inputs {
		if err := c.Validate(input); err != nil {
			return errors.WithStack(err)
		}
	}

	if !batch {
		hero, err := h.uc.CreateHeroImage(c.Request().Context(), inputs[0])
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusCreated, hero, "Hero image created")
	}

	// The whole batch passes or fails as one; a cap overflow mid-array must
	// not leave earlier rows behind.
	created, err := h.uc.CreateHeroImages(c.Request().Context(), inputs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Hero images created")
}

// UpdateHeroImage handles a partial edit of one tile.
func (h *HeroHandler) UpdateHeroImage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid hero image id")
	}

	var input *usecase.UpdateHeroImageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hero image input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	hero, err := h.uc.UpdateHeroImage(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hero, "Hero image updated")
}

// DeleteHeroImage removes a tile after explicit confirmation.
func (h *HeroHandler) DeleteHeroImage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid hero image id")
	}

	return runConfirmed(c, "Delete hero image",
		"The tile and its stored image will be removed from the carousel.",
		func(ctx context.Context) error {
			return h.uc.DeleteHeroImage(ctx, id)
		})
}
