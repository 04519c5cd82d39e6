package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"dzdeals/internal/usecase"
)

type AuthMiddleware struct {
	tokens usecase.TokenManager
}

func NewAuthMiddleware(tokens usecase.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Authenticate guards a route with bearer-token auth. A missing header is
// refused with 403 "Access denied"; a present but invalid token with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusForbidden, "Access denied")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := m.tokens.Verify(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set("uid", userID)

		return next(c)
	}
}
