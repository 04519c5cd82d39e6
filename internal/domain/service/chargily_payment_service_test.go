package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	s := NewChargilyPaymentService("whsec_test", "https://pay.example.com/api/v2")
	payload := []byte(`{"id":"evt_1","type":"checkout.paid"}`)

	assert.True(t, s.VerifySignature(payload, signPayload("whsec_test", payload)))
	assert.False(t, s.VerifySignature(payload, signPayload("wrong_secret", payload)))
	assert.False(t, s.VerifySignature(payload, "deadbeef"))
	assert.False(t, s.VerifySignature(payload, ""))
	assert.False(t, s.VerifySignature([]byte("tampered"), signPayload("whsec_test", payload)))
}

func TestCreateCheckout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkouts", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"chk_1","checkout_url":"https://pay.example.com/c/chk_1","status":"pending","amount":2500,"currency":"dzd"}`))
	}))
	defer server.Close()

	s := NewChargilyPaymentService("sk_test", server.URL)

	checkout, err := s.CreateCheckout(context.Background(), CheckoutRequest{
		Amount:     2500,
		SuccessURL: "https://app.example.com/merci",
	})
	require.NoError(t, err)
	assert.Equal(t, "chk_1", checkout.ID)
	assert.Equal(t, "https://pay.example.com/c/chk_1", checkout.CheckoutURL)
	assert.Equal(t, int64(2500), checkout.Amount)
}

func TestCreateCheckoutGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"invalid amount"}`))
	}))
	defer server.Close()

	s := NewChargilyPaymentService("sk_test", server.URL)

	_, err := s.CreateCheckout(context.Background(), CheckoutRequest{Amount: -1, SuccessURL: "https://x"})
	assert.Error(t, err)
}
