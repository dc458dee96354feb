package handler

import (
	"net/http"

	"vitrine/internal/delivery/http/response"
	"vitrine/internal/guard"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// confirmParam is the query parameter acknowledging a destructive action.
const confirmParam = "confirm"

// runConfirmed places a destructive action behind a request-scoped
// confirmation gate. Without confirm=true the armed action is cancelled and
// the prompt goes back with 428; with it the gate is confirmed, which runs
// the action exactly once.
func runConfirmed(c echo.Context, title string, message string, action guard.Action) error {
	var gate guard.Gate
	if err := gate.Request(action, title, message); err != nil {
		return errors.WithStack(err)
	}

	if c.QueryParam(confirmParam) != "true" {
		prompt, _ := gate.Pending()
		gate.Cancel()

		return response.PreconditionRequired(c, "CONFIRMATION_REQUIRED", prompt.Title, prompt.Message)
	}

	if err := gate.Confirm(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"success": true}, "Deleted successfully")
}
