package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NotFound("User", nil).Status)
	assert.Equal(t, http.StatusBadRequest, BadRequest("bad", nil).Status)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("no", nil).Status)
	assert.Equal(t, http.StatusForbidden, Forbidden("no", nil).Status)
	assert.Equal(t, http.StatusConflict, Conflict("dup").Status)
	assert.Equal(t, http.StatusTooManyRequests, TooManyRequests("slow down").Status)
	assert.Equal(t, http.StatusInternalServerError, Internal("boom", nil).Status)
}

func TestIsMatchesThroughWrapping(t *testing.T) {
	base := NotFound("Post", nil)
	wrapped := fmt.Errorf("handling request: %w", base)

	assert.True(t, Is(wrapped, "NOT_FOUND"))
	assert.False(t, Is(wrapped, "BAD_REQUEST"))
	assert.False(t, Is(fmt.Errorf("plain"), "NOT_FOUND"))
	assert.False(t, Is(nil, "NOT_FOUND"))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("network down")
	err := Internal("failed to fetch", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
}
