package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendContactMessage(t *testing.T) {
	var got sendEmailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "xkeysib-test", r.Header.Get("api-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	s := NewEmailService("xkeysib-test", server.URL, "contact@dzdeals.example")

	err := s.SendContactMessage(context.Background(), ContactMessage{
		Name:    "Yacine",
		Email:   "yacine@example.com",
		Phone:   "0661000000",
		Message: "Question sur une annonce",
	})
	require.NoError(t, err)

	assert.Equal(t, "contact@dzdeals.example", got.Sender.Email)
	require.Len(t, got.To, 1)
	assert.Equal(t, "contact@dzdeals.example", got.To[0].Email)
	require.NotNil(t, got.ReplyTo)
	assert.Equal(t, "yacine@example.com", got.ReplyTo.Email)
	assert.Contains(t, got.Subject, "Yacine")
	assert.Contains(t, got.TextContent, "Question sur une annonce")
}

func TestSendContactMessageAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	s := NewEmailService("bad-key", server.URL, "contact@dzdeals.example")

	err := s.SendContactMessage(context.Background(), ContactMessage{Name: "X", Email: "x@y.z", Message: "m"})
	assert.Error(t, err)
}
