package main

import (
	"log"
	"time"

	"accounts-be/internal/config"
	"accounts-be/internal/controllers"
	"accounts-be/internal/database"
	"accounts-be/internal/hasher"
	"accounts-be/internal/jwt"
	"accounts-be/internal/middleware"
	"accounts-be/internal/repository"
	"accounts-be/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load and validate configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)

	// Initialize password hasher and JWT service
	passwordHasher := hasher.New(cfg.HasherSchemes)
	jwtService, err := jwt.NewJWTService(
		cfg.SecretKey,
		cfg.Algorithm,
		time.Duration(cfg.AccessTokenExpireMinutes)*time.Minute,
	)
	if err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}

	// Initialize services
	userService := service.NewUserService(userRepo, passwordHasher)
	authService := service.NewAuthService(userRepo, passwordHasher, jwtService)

	// Initialize controllers
	userController := controllers.NewUserController(userService)
	authController := controllers.NewAuthController(authService)

	// Create a Gin router
	router := gin.Default()
	router.Use(middleware.CORS(cfg.CORSOrigins))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes group
	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/token", authController.Token)
		}

		users := api.Group("/users")
		{
			users.POST("/", userController.Create)
			users.GET("/", userController.List)
			users.GET("/:id", userController.Get)
			users.PUT("/:id", userController.Update)
			users.DELETE("/:id", userController.Delete)
		}
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
