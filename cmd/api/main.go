package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"tutorhub/internal/adapter/api"
	"tutorhub/internal/adapter/api/handler"
	apimiddleware "tutorhub/internal/adapter/api/middleware"
	"tutorhub/internal/adapter/api/router"
	"tutorhub/internal/adapter/repository"
	"tutorhub/internal/infrastructure/firebase"
	"tutorhub/internal/infrastructure/storage"
	"tutorhub/internal/infrastructure/websocket"
	"tutorhub/internal/usecase"
	"tutorhub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}

		opt = option.WithCredentialsFile(credentialsPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	messageRepo := repository.NewFirestoreMessageRepository(firestoreClient)
	projectRepo := repository.NewFirestoreProjectRepository(firestoreClient)
	eventRepo := repository.NewFirestoreEventRepository(firestoreClient)
	paymentRepo := repository.NewFirestorePaymentRepository(firestoreClient)
	activityRepo := repository.NewFirestoreActivityRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)
	notifier := websocket.NewNotifier(wsManager)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	userUseCase := usecase.NewUserUseCase(userRepo, activityRepo, firebaseAuthClient)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, userRepo, activityRepo)
	eventUseCase := usecase.NewEventUseCase(eventRepo, activityRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, userRepo, activityRepo)
	documentUseCase := usecase.NewDocumentUseCase(storageClient, activityRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(userRepo, projectRepo, activityRepo, paymentUseCase)

	chatUseCase := usecase.NewChatUseCase(messageRepo, userRepo, activityRepo, storageClient, notifier)
	inboxUseCase := usecase.NewInboxUseCase(messageRepo, userRepo, notifier)
	sessions := usecase.NewSessionRegistry()

	handler.Setup(authUseCase, userUseCase, projectUseCase, eventUseCase, paymentUseCase, documentUseCase, dashboardUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	chatHandler := handler.NewChatHandler(chatUseCase, inboxUseCase, authUseCase, sessions, notifier)
	wsHandler := handler.NewWebSocketHandler(wsManager, notifier, authMiddleware, authUseCase, chatUseCase, inboxUseCase, sessions)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupChatRouter(e, chatHandler, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
