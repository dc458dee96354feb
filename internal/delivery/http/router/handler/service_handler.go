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

// ServiceHandler holds dependencies for catalog handlers.
type ServiceHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewServiceHandler is the constructor for ServiceHandler, injected by Fx.
func NewServiceHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *ServiceHandler {
	return &ServiceHandler{uc: uc, logger: logger}
}

// ListServices returns the catalog in display order.
func (h *ServiceHandler) ListServices(c echo.Context) error {
	services, err := h.uc.ListServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "")
}

// CreateService handles catalog entry creation. A duplicate normalized
// title answers 409.
func (h *ServiceHandler) CreateService(c echo.Context) error {
	var input *usecase.CreateServiceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	svc, err := h.uc.CreateService(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, svc, "Service created")
}

// UpdateService handles a partial edit of one catalog entry.
func (h *ServiceHandler) UpdateService(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid service id")
	}

	var input *usecase.UpdateServiceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	svc, err := h.uc.UpdateService(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "Service updated")
}

// DeleteService removes a catalog entry after explicit confirmation.
func (h *ServiceHandler) DeleteService(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid service id")
	}

	return runConfirmed(c, "Delete service",
		"The service and its cover image will be removed. Its projects stay behind.",
		func(ctx context.Context) error {
			return h.uc.DeleteService(ctx, id)
		})
}
