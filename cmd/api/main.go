package main

import (
	"log"

	"mentorconnect/internal/config"
	"mentorconnect/internal/database"
	"mentorconnect/internal/domain"
	"mentorconnect/internal/middleware"
	"mentorconnect/internal/modules/admin"
	"mentorconnect/internal/modules/auth"
	"mentorconnect/internal/modules/catalog"
	"mentorconnect/internal/modules/dispute"
	"mentorconnect/internal/modules/feedback"
	"mentorconnect/internal/modules/session"
	"mentorconnect/internal/pkg/jwt"
	"mentorconnect/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.MentorProfile{},
		&domain.Session{},
		&domain.Booking{},
		&domain.CancellationRequest{},
		&domain.Feedback{},
		&domain.Dispute{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	jwtService := jwt.New(cfg.JWTSecret, cfg.JWTTTL)

	router := NewRouter(db, jwtService)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func NewRouter(db *gorm.DB, jwtService *jwt.Service) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	disputeRepo := repository.NewDisputeRepository(db)
	cancellationRepo := repository.NewCancellationRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	catalogHandler := catalog.NewHandler(catalog.NewService(profileRepo, sessionRepo, feedbackRepo))
	sessionHandler := session.NewHandler(session.NewService(sessionRepo))
	feedbackHandler := feedback.NewHandler(feedback.NewService(sessionRepo, feedbackRepo))
	disputeHandler := dispute.NewHandler(dispute.NewService(bookingRepo, disputeRepo))
	adminHandler := admin.NewHandler(admin.NewService(userRepo, cancellationRepo, statsRepo))

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorLogger())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	authHandler.RegisterPublicRoutes(v1)
	catalogHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	authHandler.RegisterProtectedRoutes(protected)
	sessionHandler.RegisterProtectedRoutes(protected)

	mentee := protected.Group("")
	mentee.Use(middleware.MenteeOnly())
	sessionHandler.RegisterMenteeRoutes(mentee)
	feedbackHandler.RegisterMenteeRoutes(mentee)
	disputeHandler.RegisterMenteeRoutes(mentee)

	mentor := protected.Group("")
	mentor.Use(middleware.MentorOnly())
	sessionHandler.RegisterMentorRoutes(mentor)
	catalogHandler.RegisterMentorRoutes(mentor)

	adminGroup := protected.Group("/admin")
	adminGroup.Use(middleware.AdminOnly())
	adminHandler.RegisterAdminRoutes(adminGroup)
	sessionHandler.RegisterAdminRoutes(adminGroup)
	disputeHandler.RegisterAdminRoutes(adminGroup)

	return router
}
