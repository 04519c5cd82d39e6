package router

import (
	"dzdeals/internal/adapter/api/handler"
	"dzdeals/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupAuthRouter registers account lifecycle routes. Most live under the
// historical /post prefix the mobile clients still call.
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	e.PATCH("/post/modifiercompte/:id", authHandler.UpdateProfile, authMiddleware.Authenticate)
	e.PATCH("/post/motdepasse", authHandler.UpdatePassword, authMiddleware.Authenticate)
	e.POST("/post/verification", authHandler.VerifyPassword, authMiddleware.Authenticate)
	e.DELETE("/post/suppression", authHandler.DeleteAccount, authMiddleware.Authenticate)
}
