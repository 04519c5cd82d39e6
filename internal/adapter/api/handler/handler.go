package handler

import (
	"dzdeals/internal/domain/service"
	"dzdeals/internal/infrastructure/websocket"
	"dzdeals/internal/usecase"
)

var (
	authHandler      *AuthHandler
	userHandler      *UserHandler
	postHandler      *PostHandler
	chatHandler      *ChatHandler
	websocketHandler *WebSocketHandler
	paymentHandler   *PaymentHandler
	emailHandler     *EmailHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	postUseCase *usecase.PostUseCase,
	chatUseCase *usecase.ChatUseCase,
	wsManager *websocket.Manager,
	tokens usecase.TokenManager,
	uploader usecase.FileUploader,
	paymentService *service.ChargilyPaymentService,
	emailService *service.EmailService,
) {
	authHandler = NewAuthHandler(authUseCase, uploader)
	userHandler = NewUserHandler(userUseCase)
	postHandler = NewPostHandler(postUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	websocketHandler = NewWebSocketHandler(wsManager, tokens)
	paymentHandler = NewPaymentHandler(paymentService)
	emailHandler = NewEmailHandler(emailService)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetPostHandler() *PostHandler {
	return postHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return websocketHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetEmailHandler() *EmailHandler {
	return emailHandler
}
