package router

import (
	"dzdeals/internal/adapter/api/handler"
	"dzdeals/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPostRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	postHandler := handler.GetPostHandler()

	e.POST("/posts", postHandler.CreatePost, authMiddleware.Authenticate)

	e.GET("/post/", postHandler.ListPosts)
	e.GET("/post/getposts/:id", postHandler.GetPost)
	e.GET("/post/getuserposts/:userId", postHandler.ListUserPosts)

	e.PATCH("/post/modifierAnnonce/:id", postHandler.UpdatePost, authMiddleware.Authenticate)
	e.DELETE("/post/deletepost/:id", postHandler.DeletePost, authMiddleware.Authenticate)

	e.PATCH("/post/views/:id", postHandler.AddView)

	e.PATCH("/post/rating/:id", postHandler.RatePost)
	e.PATCH("/post/getrating/:id", postHandler.GetPostRating)

	e.PATCH("/post/comments/:id", postHandler.CommentOnPost)
	e.GET("/post/getcomments/:id", postHandler.GetPostComments)
	e.DELETE("/post/deletepostcomment/:commentId/:id", postHandler.DeletePostComment)

	e.GET("/post/commande/:userId", postHandler.GetBuyerOrders)
	e.GET("/post/getsellercommands/:userId", postHandler.GetSellerOrders)
}
