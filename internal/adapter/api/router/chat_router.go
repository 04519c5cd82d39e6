package router

import (
	"dzdeals/internal/adapter/api/handler"
	"dzdeals/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	e.POST("/conversations", chatHandler.CreateConversation, authMiddleware.Authenticate)
	e.POST("/conversations/:id/messages", chatHandler.SendMessage, authMiddleware.Authenticate)
	e.PATCH("/conversations/:id/view", chatHandler.MarkSeen, authMiddleware.Authenticate)
	e.GET("/getconversations/:id", chatHandler.ListUserConversations, authMiddleware.Authenticate)
}
