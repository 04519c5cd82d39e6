package router

import (
	"dzdeals/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupEmailRouter(e *echo.Echo) {
	emailHandler := handler.GetEmailHandler()

	e.POST("/send-email", emailHandler.SendEmail)
}
