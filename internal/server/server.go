// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"fmt"

	_ "chirp/docs" // swagger docs
	"chirp/internal/config"
	"chirp/internal/database"
	"chirp/internal/middleware"
	"chirp/internal/repository"
	"chirp/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	tweetRepo      repository.TweetRepository
	likeRepo       repository.LikeRepository
	followerRepo   repository.FollowerRepository
	mediaRepo      repository.MediaRepository
	uploads        *storage.Uploads
}

// NewServer creates a new server instance, connecting the database itself.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database
// handle. Use this in tests or when a bootstrap layer establishes the DB.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	return &Server{
		config:         cfg,
		db:             db,
		promMiddleware: middleware.InitMetrics("chirp-api"),
		userRepo:       repository.NewUserRepository(db),
		tweetRepo:      repository.NewTweetRepository(db),
		likeRepo:       repository.NewLikeRepository(db),
		followerRepo:   repository.NewFollowerRepository(db),
		mediaRepo:      repository.NewMediaRepository(db),
		uploads:        storage.NewUploads(cfg.UploadDir),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into logs
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, api-key",
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	auth := middleware.APIKeyAuth(s.userRepo)

	// Tweet routes
	api.Post("/tweets", auth, s.CreateTweet)
	api.Get("/tweets", auth, s.GetFeed)
	// Deletion carries no authorship check on purpose; see DeleteTweet.
	api.Delete("/tweets/:id", s.DeleteTweet)
	// Both verbs toggle: the like's present/absent state decides the effect.
	api.Post("/tweets/:id/likes", auth, s.ToggleLike)
	api.Delete("/tweets/:id/likes", auth, s.ToggleLike)

	// Media routes
	api.Post("/medias", auth, s.UploadMedia)

	// User routes
	api.Get("/users/me", auth, s.GetMyProfile)
	api.Get("/users/:id", s.GetUserProfile)
	api.Post("/users/:id/follow", auth, s.FollowUser)
	api.Delete("/users/:id/follow", auth, s.UnfollowUser)
}
