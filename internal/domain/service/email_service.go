package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"dzdeals/pkg/logger"
)

// EmailService forwards contact-form messages to a transactional email HTTP
// API (Brevo-style JSON body with an api-key header).
type EmailService struct {
	apiKey     string
	apiURL     string
	sender     string
	httpClient *http.Client
}

func NewEmailService(apiKey, apiURL, sender string) *EmailService {
	return &EmailService{
		apiKey: apiKey,
		apiURL: apiURL,
		sender: sender,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type emailAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type sendEmailRequest struct {
	Sender      emailAddress   `json:"sender"`
	To          []emailAddress `json:"to"`
	ReplyTo     *emailAddress  `json:"replyTo,omitempty"`
	Subject     string         `json:"subject"`
	TextContent string         `json:"textContent"`
}

func (s *EmailService) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	req := sendEmailRequest{
		Sender:  emailAddress{Name: "dzdeals", Email: s.sender},
		To:      []emailAddress{{Email: s.sender}},
		ReplyTo: &emailAddress{Name: msg.Name, Email: msg.Email},
		Subject: fmt.Sprintf("Contact de %s", msg.Name),
		TextContent: fmt.Sprintf("Nom: %s\nEmail: %s\nTéléphone: %s\n\n%s",
			msg.Name, msg.Email, msg.Phone, msg.Message),
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal email request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %v", err)
	}
	httpReq.Header.Set("api-key", s.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("email request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		logger.Error("Email API error: status=%d body=%s", resp.StatusCode, string(respBody))
		return fmt.Errorf("email API returned status %d", resp.StatusCode)
	}

	logger.Info("Contact email forwarded for %s", msg.Email)
	return nil
}
