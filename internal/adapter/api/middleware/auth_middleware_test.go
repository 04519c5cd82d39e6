package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dzdeals/internal/infrastructure/auth"
)

func newAuthFixture(t *testing.T) (*AuthMiddleware, *auth.JWTManager) {
	t.Helper()
	jwtManager := auth.NewJWTManager("test-secret", 0)
	return NewAuthMiddleware(jwtManager), jwtManager
}

func runMiddleware(m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("uid").(string))
	})
	return rec, handler(c)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m, _ := newAuthFixture(t)

	_, err := runMiddleware(m, "")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	assert.Equal(t, "Access denied", httpErr.Message)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	m, _ := newAuthFixture(t)

	_, err := runMiddleware(m, "Bearer not-a-real-token")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAuthenticateValidToken(t *testing.T) {
	m, jwtManager := newAuthFixture(t)

	token, err := jwtManager.Issue("user-7")
	require.NoError(t, err)

	rec, err := runMiddleware(m, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-7", rec.Body.String())
}

func TestAuthenticateBareTokenWithoutBearerPrefix(t *testing.T) {
	m, jwtManager := newAuthFixture(t)

	token, err := jwtManager.Issue("user-7")
	require.NoError(t, err)

	// Historical clients send the raw token without the Bearer prefix.
	rec, err := runMiddleware(m, token)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
