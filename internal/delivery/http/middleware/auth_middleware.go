package middleware

import (
	"strings"

	"vitrine/internal/delivery/http/response"
	"vitrine/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards the admin routes behind a valid access token.
type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUsecase usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUsecase: authUsecase}
}

// Authenticate validates the bearer access token and stores the admin id on
// the request context for handlers to use.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "SESSION_INVALID", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "SESSION_INVALID", "Invalid token format, must be Bearer token")
		}

		adminID, err := m.authUsecase.ValidateAccess(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "SESSION_INVALID", "Invalid or expired token")
		}

		c.Set("adminID", adminID)

		return next(c)
	}
}
