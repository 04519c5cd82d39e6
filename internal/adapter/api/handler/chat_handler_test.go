package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dzdeals/internal/adapter/api"
	"dzdeals/internal/usecase"
)

func markSeenContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = api.NewValidator()
	req := httptest.NewRequest(http.MethodPatch, "/conversations/conv-1/view", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("conv-1")
	return c, rec
}

func TestMarkSeenMissingTimeIsBadRequest(t *testing.T) {
	h := NewChatHandler(usecase.NewChatUseCase(nil, nil))

	c, rec := markSeenContext(`{"userId":"alice"}`)
	require.NoError(t, h.MarkSeen(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestMarkSeenMissingUserIsBadRequest(t *testing.T) {
	h := NewChatHandler(usecase.NewChatUseCase(nil, nil))

	c, rec := markSeenContext(`{"time":"2025-03-14T09:26:53Z"}`)
	require.NoError(t, h.MarkSeen(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
