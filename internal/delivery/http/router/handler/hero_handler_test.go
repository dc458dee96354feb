package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mockUsecase "vitrine/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHeroTestContext(t *testing.T, method string, target string) (*HeroHandler, *mockUsecase.MockHeroUsecase, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	uc := new(mockUsecase.MockHeroUsecase)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHeroHandler(uc, logger)

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return h, uc, c, rec
}

func TestHeroHandler_Delete_WithoutConfirmAnswers428(t *testing.T) {
	h, uc, c, rec := newHeroTestContext(t, http.MethodDelete, "/api/hero-images/x")
	id := uuid.New()
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := h.DeleteHeroImage(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "CONFIRMATION_REQUIRED", errInfo["code"])
	// The cancelled gate must leave no side effect.
	uc.AssertNotCalled(t, "DeleteHeroImage")
}

func TestHeroHandler_Delete_WithConfirmRuns(t *testing.T) {
	h, uc, c, rec := newHeroTestContext(t, http.MethodDelete, "/api/hero-images/x?confirm=true")
	id := uuid.New()
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	uc.On("DeleteHeroImage", mock.Anything, id).Return(nil)

	err := h.DeleteHeroImage(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	uc.AssertExpectations(t)
}

func TestHeroHandler_Delete_InvalidID(t *testing.T) {
	h, uc, c, rec := newHeroTestContext(t, http.MethodDelete, "/api/hero-images/nope?confirm=true")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.DeleteHeroImage(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "DeleteHeroImage")
}
