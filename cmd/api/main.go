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

	"campusfound/internal/adapter/api"
	"campusfound/internal/adapter/api/handler"
	apimiddleware "campusfound/internal/adapter/api/middleware"
	"campusfound/internal/adapter/api/router"
	"campusfound/internal/adapter/repository"
	"campusfound/internal/domain/service"
	"campusfound/internal/infrastructure/identity"
	"campusfound/internal/infrastructure/storage"
	"campusfound/internal/usecase"
	"campusfound/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption
	credentialsPath := ""

	// Service account from environment variable (for production), file path
	// as the local development fallback.
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		credentialsPath = os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if credentialsPath == "" {
			credentialsPath = "./service-account.json"
		}

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", credentialsPath)
		}

		log.Printf("Using Firebase service account from file: %s", credentialsPath)
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

	storageClient, err := storage.NewCloudStorageClient(
		ctx,
		cfg.StorageBucket,
		cfg.FirebaseProject,
		credentialsPath,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	mailService, err := service.NewSMTPMailService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize mail service: %v", err)
	}

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	reportRepo := repository.NewFirestoreReportRepository(firestoreClient)
	deadlineRepo := repository.NewFirestoreClaimDeadlineRepository(firestoreClient)
	adminLogRepo := repository.NewFirestoreAdminLogRepository(firestoreClient)
	userLogRepo := repository.NewFirestoreUserLogRepository(firestoreClient)
	contactRepo := repository.NewFirestoreContactMessageRepository(firestoreClient)

	tokenVerifier := identity.NewFirebaseVerifier(authClient)

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenVerifier, cfg.AdminEmails, cfg.AllowedEmailDomain, cfg.AllowedEmails)
	userUseCase := usecase.NewUserUseCase(userRepo)
	reportUseCase := usecase.NewReportUseCase(reportRepo, userRepo, deadlineRepo, mailService, storageClient, cfg.ClaimWindow)
	logUseCase := usecase.NewLogUseCase(adminLogRepo, userLogRepo)
	contactUseCase := usecase.NewContactUseCase(contactRepo, mailService, cfg.SecurityInbox)

	handler.Setup(authUseCase, reportUseCase, userUseCase, logUseCase, contactUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(apimiddleware.GeneralRateLimit())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenVerifier, userRepo)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	router.Setup(e, authMiddleware, adminMiddleware)

	// Revert unverified claims once their pickup window lapses. Runs once at
	// startup so deadlines that fired while the server was down are caught up.
	reportUseCase.StartDeadlineSweepJob(ctx, cfg.SweepInterval)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
