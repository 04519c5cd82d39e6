package router

import (
	"dzdeals/internal/adapter/api/handler"
	"dzdeals/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

// SetupUserRouter registers the social routes (followers, user-level ratings
// and comments); these also live under the historical /post prefix.
func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	e.GET("/post/user/:userId", userHandler.GetUser)
	e.GET("/post/users", userHandler.ListUsers)

	e.PATCH("/post/abonnees", userHandler.ToggleFollow, authMiddleware.Authenticate)
	e.GET("/post/getabonees/:id/:userid", userHandler.GetFollowState)

	e.PATCH("/post/rating", userHandler.RateUser)
	e.PATCH("/post/getrating", userHandler.GetUserRating)

	e.PATCH("/post/comments", userHandler.CommentOnUser)
	e.GET("/post/getcomments2/:id", userHandler.GetUserComments)
	e.DELETE("/post/deleteusercomment/:commentId/:id", userHandler.DeleteUserComment)
}
