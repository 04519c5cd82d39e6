package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dzdeals/pkg/logger"
)

// ChargilyPaymentService talks to the Chargily Pay checkout API over HTTP
// and verifies its webhook signatures.
type ChargilyPaymentService struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewChargilyPaymentService(secretKey, baseURL string) *ChargilyPaymentService {
	return &ChargilyPaymentService{
		secretKey: secretKey,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type CheckoutRequest struct {
	Amount     int64  `json:"amount"`
	Currency   string `json:"currency"`
	SuccessURL string `json:"success_url"`
}

type CheckoutResponse struct {
	ID          string `json:"id"`
	CheckoutURL string `json:"checkout_url"`
	Status      string `json:"status"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
}

// WebhookEvent is the payload Chargily posts back after a checkout settles.
type WebhookEvent struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	EventCheckoutPaid   = "checkout.paid"
	EventCheckoutFailed = "checkout.failed"
)

func (s *ChargilyPaymentService) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	if req.Currency == "" {
		req.Currency = "dzd"
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checkout request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/checkouts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build checkout request: %v", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("checkout request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		logger.Error("Chargily checkout failed: status=%d body=%s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var checkout CheckoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&checkout); err != nil {
		return nil, fmt.Errorf("failed to decode checkout response: %v", err)
	}

	logger.Info("Chargily checkout created: id=%s amount=%d %s", checkout.ID, checkout.Amount, checkout.Currency)
	return &checkout, nil
}

// VerifySignature checks the hex HMAC-SHA256 of the raw webhook body against
// the value from the `signature` header, in constant time.
func (s *ChargilyPaymentService) VerifySignature(payload []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(s.secretKey))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
