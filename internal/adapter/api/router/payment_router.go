package router

import (
	"dzdeals/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupPaymentRouter(e *echo.Echo) {
	paymentHandler := handler.GetPaymentHandler()

	e.POST("/create-payment", paymentHandler.CreatePayment)
	e.POST("/webhook", paymentHandler.HandleWebhook)
}
