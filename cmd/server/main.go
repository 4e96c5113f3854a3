package main

import (
	"github.com/gin-gonic/gin"
	"github.com/taskbot/taskbot-api/internal/auth"
	"github.com/taskbot/taskbot-api/internal/config"
	"github.com/taskbot/taskbot-api/internal/database"
	"github.com/taskbot/taskbot-api/internal/handlers"
	"github.com/taskbot/taskbot-api/internal/logger"
	"github.com/taskbot/taskbot-api/internal/middleware"
	"github.com/taskbot/taskbot-api/internal/repository"
	"github.com/taskbot/taskbot-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.Init(cfg.LogLevel)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	log.WithField("driver", cfg.DBDriver).Info("database connection established")

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	// Token manager owns session-token minting and verification; created here
	// and passed by reference, never ambient.
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	authService := services.NewAuthService(userRepo, tokens)
	taskService := services.NewTaskService(taskRepo)

	var chatService *services.ChatService
	if cfg.OpenAIAPIKey != "" {
		chatService = services.NewChatService(cfg.OpenAIAPIKey)
	} else {
		log.Warn("OPENAI_API_KEY not set, chat relay disabled")
	}

	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	chatHandler := handlers.NewChatHandler(chatService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "TaskBot API is running",
		})
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", middleware.MetricsHandler())

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, except /me)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", middleware.RequireAuth(tokens), authHandler.GetCurrentUser)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(tokens))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Chat relay (protected)
		api.POST("/chat", middleware.RequireAuth(tokens), chatHandler.Chat)
	}

	// Start server
	log.WithField("addr", cfg.HTTPAddr).Info("server starting")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
