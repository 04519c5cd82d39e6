package router

import (
	"dzdeals/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupWebSocketRouter(e *echo.Echo) {
	websocketHandler := handler.GetWebSocketHandler()

	// Token auth happens inside the handler: browsers cannot set headers on
	// a websocket upgrade request.
	e.GET("/ws", websocketHandler.HandleWebSocket)
}
