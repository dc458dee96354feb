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

// TeamHandler holds dependencies for team-page handlers.
type TeamHandler struct {
	uc     usecase.TeamUsecase
	logger *slog.Logger
}

// NewTeamHandler is the constructor for TeamHandler, injected by Fx.
func NewTeamHandler(uc usecase.TeamUsecase, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{uc: uc, logger: logger}
}

// ListTeamMembers returns the team in display order.
func (h *TeamHandler) ListTeamMembers(c echo.Context) error {
	members, err := h.uc.ListTeamMembers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, members, "")
}

// CreateTeamMember handles team member creation.
func (h *TeamHandler) CreateTeamMember(c echo.Context) error {
	var input *usecase.CreateTeamMemberInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid team member input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	member, err := h.uc.CreateTeamMember(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, member, "Team member created")
}

// UpdateTeamMember handles a partial edit of one team member.
func (h *TeamHandler) UpdateTeamMember(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid team member id")
	}

	var input *usecase.UpdateTeamMemberInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid team member input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	member, err := h.uc.UpdateTeamMember(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, member, "Team member updated")
}

// DeleteTeamMember removes a team member after explicit confirmation.
func (h *TeamHandler) DeleteTeamMember(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Invalid team member id")
	}

	return runConfirmed(c, "Delete team member",
		"The team member and their photo will be removed.",
		func(ctx context.Context) error {
			return h.uc.DeleteTeamMember(ctx, id)
		})
}
