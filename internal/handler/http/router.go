package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/ClubConnect/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/ClubConnect/internal/usecase/contract"
)

// UseCases groups everything the HTTP layer calls into.
type UseCases struct {
	User         usecasecontract.IUserUseCase
	Club         usecasecontract.IClubUseCase
	Membership   usecasecontract.IMembershipUseCase
	Event        usecasecontract.IEventUseCase
	Post         usecasecontract.IPostUseCase
	Notification usecasecontract.INotificationUseCase
	Announcement usecasecontract.IAnnouncementUseCase
}

// MetricsProvider is implemented by the Prometheus recorder.
type MetricsProvider interface {
	Middleware() gin.HandlerFunc
	Handler() http.Handler
}

// RouterOptions carries the transport level settings.
type RouterOptions struct {
	AllowedOrigins []string
	RateLimitRPS   float64
	Logger         *zap.Logger
	Metrics        MetricsProvider
	// AuthHandler is nil when Google sign-in is not configured.
	AuthHandler *AuthHandler
}

type Router struct {
	userHandler         *UserHandler
	clubHandler         *ClubHandler
	eventHandler        *EventHandler
	postHandler         *PostHandler
	notificationHandler *NotificationHandler
	announcementHandler *AnnouncementHandler
	authHandler         *AuthHandler
	userUsecase         usecasecontract.IUserUseCase
	opts                RouterOptions
}

func NewRouter(uc UseCases, opts RouterOptions) *Router {
	return &Router{
		userHandler:         NewUserHandler(uc.User, uc.Membership),
		clubHandler:         NewClubHandler(uc.Club, uc.Membership),
		eventHandler:        NewEventHandler(uc.Event),
		postHandler:         NewPostHandler(uc.Post),
		notificationHandler: NewNotificationHandler(uc.Notification),
		announcementHandler: NewAnnouncementHandler(uc.Announcement),
		authHandler:         opts.AuthHandler,
		userUsecase:         uc.User,
		opts:                opts,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	if r.opts.Logger != nil {
		router.Use(middleware.RequestLogger(r.opts.Logger))
	}
	if r.opts.Metrics != nil {
		router.Use(r.opts.Metrics.Middleware())
		router.GET("/metrics", gin.WrapH(r.opts.Metrics.Handler()))
	}
	if len(r.opts.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     r.opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	if r.opts.RateLimitRPS > 0 {
		router.Use(middleware.RateLimiter(r.opts.RateLimitRPS))
	}

	router.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.CreateUser)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/refresh-token", r.userHandler.RefreshToken)
		auth.POST("/logout", r.userHandler.Logout)

		if r.authHandler != nil {
			auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
			auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
		}
	}

	v1.GET("/clubs", r.clubHandler.ListClubs)
	v1.GET("/clubs/:clubID", r.clubHandler.GetClub)
	v1.GET("/events", r.eventHandler.ListApproved)
	v1.GET("/events/:eventID", middleware.OptionalAuth(r.userUsecase), r.eventHandler.GetEvent)
	v1.GET("/announcements", r.announcementHandler.List)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.userUsecase))
	{
		// Current user routes
		protected.GET("/me", r.userHandler.GetCurrentUser)
		protected.POST("/auth/logout-all", r.userHandler.LogoutAll)
		protected.PUT("/me", r.userHandler.UpdateProfile)
		protected.GET("/me/join-requests", r.clubHandler.ListMyRequests)
		protected.GET("/me/club/events", r.eventHandler.ListMyClubEvents)

		// Users and roles
		protected.GET("/users", r.userHandler.ListUsers)
		protected.GET("/users/:id", r.userHandler.GetUser)
		protected.PUT("/users/:id/role", r.userHandler.ChangeRole)

		// Clubs and membership
		protected.POST("/clubs", r.clubHandler.CreateClub)
		protected.GET("/clubs/:clubID/members", r.clubHandler.ListMembers)
		protected.DELETE("/clubs/:clubID/members/:userID", r.clubHandler.RemoveMember)
		protected.POST("/clubs/:clubID/join-requests", r.clubHandler.RequestJoin)
		protected.GET("/clubs/:clubID/join-requests", r.clubHandler.ListClubRequests)
		protected.PUT("/join-requests/:requestID", r.clubHandler.DecideJoin)

		// Events
		protected.POST("/events", r.eventHandler.ProposeEvent)
		protected.GET("/events/pending", r.eventHandler.ListPending)
		protected.PUT("/events/:eventID/status", r.eventHandler.DecideEvent)
		protected.POST("/events/:eventID/like", r.eventHandler.ToggleLike)
		protected.POST("/events/:eventID/interested", r.eventHandler.ToggleInterested)
		protected.DELETE("/events/:eventID", r.eventHandler.DeleteEvent)

		// Feed
		protected.GET("/posts", r.postHandler.ListPosts)
		protected.POST("/posts", r.postHandler.CreatePost)
		protected.GET("/posts/:postID", r.postHandler.GetPost)
		protected.DELETE("/posts/:postID", r.postHandler.DeletePost)
		protected.POST("/posts/:postID/like", r.postHandler.ToggleLike)
		protected.GET("/posts/:postID/comments", r.postHandler.ListComments)
		protected.POST("/posts/:postID/comments", r.postHandler.AddComment)
		protected.DELETE("/posts/:postID/comments/:commentID", r.postHandler.DeleteComment)

		// Notifications
		protected.GET("/notifications", r.notificationHandler.List)
		protected.PUT("/notifications/read-all", r.notificationHandler.MarkAllRead)
		protected.PUT("/notifications/:id/read", r.notificationHandler.MarkRead)

		// Announcements
		protected.POST("/announcements", r.announcementHandler.Create)
		protected.DELETE("/announcements/:id", r.announcementHandler.Delete)
	}
}
