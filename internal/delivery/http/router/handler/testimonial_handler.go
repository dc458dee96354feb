package handler

import (
	"context"
	"log/slog"
	"net/http"

	"vitrine/internal/delivery/http/response"
	"vitrine/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TestimonialHandler holds dependencies for testimonial handlers.
type TestimonialHandler struct {
	uc     usecase.TestimonialUsecase
	logger *slog.Logger
}

// NewTestimonialHandler is the constructor for TestimonialHandler, injected by Fx.
func NewTestimonialHandler(uc usecase.TestimonialUsecase, logger *slog.Logger) *TestimonialHandler {
	return &TestimonialHandler{uc: uc, logger: logger}
}

// ListTestimonials returns the testimonials in display order.
func (h *TestimonialHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.uc.ListTestimonials(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, testimonials, "")
}

// CreateTestimonial handles testimonial creation.
func (h *TestimonialHandler) CreateTestimonial(c echo.Context) error {
	var input *usecase.CreateTestimonialInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid testimonial input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	testimonial, err := h.uc.CreateTestimonial(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, testimonial, "Testimonial created")
}

// UpdateTestimonial handles a partial edit of one testimonial.
func (h *TestimonialHandler) UpdateTestimonial(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid testimonial id")
	}

	var input *usecase.UpdateTestimonialInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid testimonial input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	testimonial, err := h.uc.UpdateTestimonial(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, testimonial, "Testimonial updated")
}

// DeleteTestimonial removes a testimonial after explicit confirmation.
func (h *TestimonialHandler) DeleteTestimonial(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid testimonial id")
	}

	return runConfirmed(c, "Delete testimonial",
		"The testimonial and its author photo will be removed.",
		func(ctx context.Context) error {
			return h.uc.DeleteTestimonial(ctx, id)
		})
}
