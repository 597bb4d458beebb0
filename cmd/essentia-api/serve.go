package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Vcortez99-hub/essentia/backend/internal/config"
	"github.com/Vcortez99-hub/essentia/backend/internal/handlers"
	"github.com/Vcortez99-hub/essentia/backend/internal/logger"
	"github.com/Vcortez99-hub/essentia/backend/internal/middleware"
	"github.com/Vcortez99-hub/essentia/backend/internal/repository"
	"github.com/Vcortez99-hub/essentia/backend/internal/service"
	"github.com/Vcortez99-hub/essentia/backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env for local development; production uses real env vars
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}))

	log := logger.Default()
	log.Info("starting EssentIA API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	entryRepo := repository.NewEntryRepository(supabaseClient)
	userRepo := repository.NewUserRepository(supabaseClient)

	// Initialize services
	predictorService := service.NewMoodPredictorService(entryRepo, userRepo, cfg.Forecast.GroupConcurrency)
	analyticsService := service.NewMoodAnalyticsService(entryRepo)

	// Initialize handlers
	predictionHandler := handlers.NewPredictionHandler(predictorService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			// Prediction routes
			protected.GET("/predictions/mood", predictionHandler.GetMoodForecast)
			protected.GET("/predictions/recommendations", predictionHandler.GetRecommendations)
			protected.GET("/predictions/group",
				middleware.RateLimitGroup(),
				middleware.RequireStaff(userRepo),
				predictionHandler.GetGroupForecast,
			)

			// Analytics routes
			protected.GET("/analytics/mood-summary", analyticsHandler.GetMoodSummary)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
