package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mikiasgoitom/ClubConnect/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/ClubConnect/internal/handler/http"
	redisclient "github.com/mikiasgoitom/ClubConnect/internal/infrastructure/cache"
	"github.com/mikiasgoitom/ClubConnect/internal/infrastructure/config"
	database "github.com/mikiasgoitom/ClubConnect/internal/infrastructure/database"
	"github.com/mikiasgoitom/ClubConnect/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/ClubConnect/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/ClubConnect/internal/infrastructure/logger"
	"github.com/mikiasgoitom/ClubConnect/internal/infrastructure/metrics"
	passwordservice "github.com/mikiasgoitom/ClubConnect/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/ClubConnect/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/ClubConnect/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/ClubConnect/internal/infrastructure/sanitizer"
	"github.com/mikiasgoitom/ClubConnect/internal/infrastructure/store"
	"github.com/mikiasgoitom/ClubConnect/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/ClubConnect/internal/infrastructure/validator"
	"github.com/mikiasgoitom/ClubConnect/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(ctx, cfg.MongoURI)
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect() }()

	db := mongoClient.Database(cfg.MongoDBName)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatalf("Failed to create indexes: %v", err)
	}

	// Register custom validators
	if err := validator.RegisterCustomValidators(); err != nil {
		appLogger.Fatalf("Failed to register validators: %v", err)
	}

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection(mongodb.UsersCollection))
	tokenRepo := mongodb.NewTokenRepository(db.Collection(mongodb.TokensCollection))
	clubRepo := mongodb.NewClubRepository(db)
	joinRepo := mongodb.NewJoinRequestRepository(db)
	eventRepo := mongodb.NewEventRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	announcementRepo := mongodb.NewAnnouncementRepository(db)
	transactor := mongodb.NewTransactor(mongoClient.Client)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher(0)
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(cfg.JWTSecret, cfg.AccessTokenExpiry, cfg.RefreshTokenExpiry))
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	htmlSanitizer := sanitizer.New()
	recorder := metrics.NewRecorder()

	var mailService contract.IEmailService
	if cfg.MailEnabled() {
		mailService = external_services.NewEmailService(cfg.EmailHost, cfg.EmailPort, cfg.EmailUsername, cfg.EmailAppPassword, cfg.EmailFrom)
	} else {
		appLogger.Infof("EMAIL_HOST not set, e-mail notifications disabled")
	}

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, tokenRepo, hasher, jwtService, appLogger, cfg, appValidator, uuidGenerator, randomGenerator)
	notificationUsecase := usecase.NewNotificationUseCase(notificationRepo, userRepo, mailService, uuidGenerator, appLogger)
	clubUsecase := usecase.NewClubUseCase(clubRepo, userRepo, joinRepo, transactor, htmlSanitizer, uuidGenerator, recorder, appLogger)
	membershipUsecase := usecase.NewMembershipUseCase(userRepo, clubRepo, joinRepo, transactor, notificationUsecase, uuidGenerator, recorder, appLogger)
	eventUsecase := usecase.NewEventUseCase(eventRepo, clubRepo, userRepo, notificationUsecase, htmlSanitizer, uuidGenerator, recorder, appLogger)
	postUsecase := usecase.NewPostUseCase(postRepo, commentRepo, userRepo, transactor, notificationUsecase, htmlSanitizer, uuidGenerator, appLogger)
	announcementUsecase := usecase.NewAnnouncementUseCase(announcementRepo, clubRepo, userRepo, htmlSanitizer, uuidGenerator)

	// Optional Dependency Injection: Redis cache
	if cfg.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, cfg.RedisURL)
		if err != nil {
			appLogger.Warnf("Redis unavailable, club cache disabled: %v", err)
		} else {
			defer redisclient.Close(rdb)
			clubCache := store.NewClubCacheStore(rdb, cfg.ClubCacheTTL)
			clubUsecase.SetClubCache(clubCache)
			membershipUsecase.SetClubCache(clubCache)
		}
	}

	var authHandler *handlerHttp.AuthHandler
	if cfg.GoogleEnabled() {
		authHandler = handlerHttp.NewAuthHandler(userUsecase, cfg.GetAppBaseURL(), cfg.GoogleClientID, cfg.GoogleClientSecret)
	}

	// Setup API routes
	if cfg.LogFormat != "console" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	appRouter := handlerHttp.NewRouter(handlerHttp.UseCases{
		User:         userUsecase,
		Club:         clubUsecase,
		Membership:   membershipUsecase,
		Event:        eventUsecase,
		Post:         postUsecase,
		Notification: notificationUsecase,
		Announcement: announcementUsecase,
	}, handlerHttp.RouterOptions{
		AllowedOrigins: cfg.AllowedOrigin,
		RateLimitRPS:   cfg.RateLimitRPS,
		Logger:         appLogger.Zap(),
		Metrics:        recorder,
		AuthHandler:    authHandler,
	})
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Infof("Server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorf("Failed to start server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Infof("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Graceful shutdown failed: %v", err)
	}
}
