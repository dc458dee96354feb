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

// ProjectHandler holds dependencies for portfolio-project handlers.
type ProjectHandler struct {
	uc     usecase.ProjectUsecase
	logger *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler, injected by Fx.
func NewProjectHandler(uc usecase.ProjectUsecase, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{uc: uc, logger: logger}
}

// ListProjects returns every project, optionally filtered by the
// service_id query parameter.
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	var serviceID *uuid.UUID
	if raw := c.QueryParam("service_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_FAILED", "Invalid service_id filter")
		}
		serviceID = &id
	}

	projects, err := h.uc.ListProjects(c.Request().Context(), serviceID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "")
}

// ListThemes returns the distinct theme tags in use across all galleries.
func (h *ProjectHandler) ListThemes(c echo.Context) error {
	themes, err := h.uc.ListThemes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, themes, "")
}

// CreateProject handles project creation under a service.
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var input *usecase.CreateProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.uc.CreateProject(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project, "Project created")
}

// UpdateProject handles a partial edit of one project.
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid project id")
	}

	var input *usecase.UpdateProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.uc.UpdateProject(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "Project updated")
}

// DeleteProject removes a project after explicit confirmation.
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid project id")
	}

	return runConfirmed(c, "Delete project",
		"The project and every image of its gallery will be removed.",
		func(ctx context.Context) error {
			return h.uc.DeleteProject(ctx, id)
		})
}
