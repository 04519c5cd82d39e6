package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"dzdeals/internal/domain/service"
	"dzdeals/pkg/logger"
	"dzdeals/pkg/response"
)

type PaymentHandler struct {
	paymentService *service.ChargilyPaymentService
}

func NewPaymentHandler(paymentService *service.ChargilyPaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

type createPaymentRequest struct {
	Amount     int64  `json:"amount" validate:"required,gt=0"`
	Currency   string `json:"currency"`
	SuccessURL string `json:"successUrl" validate:"required,url"`
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	checkout, err := h.paymentService.CreateCheckout(c.Request().Context(), service.CheckoutRequest{
		Amount:     req.Amount,
		Currency:   req.Currency,
		SuccessURL: req.SuccessURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, checkout)
}

// HandleWebhook verifies the gateway signature before acting on the event.
// The body must be read raw: the signature covers the exact bytes sent.
func (h *PaymentHandler) HandleWebhook(c echo.Context) error {
	signature := c.Request().Header.Get("signature")
	if signature == "" {
		return c.NoContent(http.StatusBadRequest)
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	if !h.paymentService.VerifySignature(body, signature) {
		logger.Warn("Webhook rejected: bad signature")
		return c.NoContent(http.StatusForbidden)
	}

	var event service.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	switch event.Type {
	case service.EventCheckoutPaid:
		logger.Info("Checkout paid: %s", event.ID)
	case service.EventCheckoutFailed:
		logger.Warn("Checkout failed: %s", event.ID)
	default:
		logger.Debug("Unhandled webhook event type: %s", event.Type)
	}

	return c.NoContent(http.StatusOK)
}
