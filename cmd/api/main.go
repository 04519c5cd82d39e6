package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"dzdeals/internal/adapter/api"
	"dzdeals/internal/adapter/api/handler"
	apimiddleware "dzdeals/internal/adapter/api/middleware"
	"dzdeals/internal/adapter/api/router"
	"dzdeals/internal/adapter/repository"
	"dzdeals/internal/domain/service"
	"dzdeals/internal/infrastructure/auth"
	"dzdeals/internal/infrastructure/storage"
	"dzdeals/internal/infrastructure/websocket"
	"dzdeals/internal/usecase"
	"dzdeals/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")

	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.GCPProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.GCPProject, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	postRepo := repository.NewFirestorePostRepository(firestoreClient)
	convRepo := repository.NewFirestoreConversationRepository(firestoreClient)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	paymentService := service.NewChargilyPaymentService(cfg.ChargilySecretKey, cfg.ChargilyBaseURL)
	emailService := service.NewEmailService(cfg.EmailAPIKey, cfg.EmailAPIURL, cfg.EmailSender)

	authUseCase := usecase.NewAuthUseCase(userRepo, jwtManager)
	userUseCase := usecase.NewUserUseCase(userRepo)
	postUseCase := usecase.NewPostUseCase(postRepo, userRepo, storageClient)
	chatUseCase := usecase.NewChatUseCase(convRepo, wsManager)

	handler.Setup(authUseCase, userUseCase, postUseCase, chatUseCase, wsManager, jwtManager, storageClient, paymentService, emailService)
	handler.SetupHealthHandler(wsManager)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(jwtManager)

	router.Setup(e, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
