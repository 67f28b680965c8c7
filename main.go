package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"osteria-backend/analytics"
	"osteria-backend/config"
	"osteria-backend/database"
	"osteria-backend/metrics"
	"osteria-backend/middleware"
	"osteria-backend/routes"
	"osteria-backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	// Load environment variables
	if err := config.LoadEnv(); err != nil {
		logger.Fatal().Err(err).Msg("error loading .env file")
	}

	// Validate critical environment variables
	if err := config.ValidateEnv(); err != nil {
		logger.Fatal().Err(err).Msg("environment validation failed")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Create default admin user if not exists
	if err := database.CreateDefaultAdmin(db); err != nil {
		logger.Warn().Err(err).Msg("could not create default admin")
	}

	// Seed the weekly hours grid if empty
	if err := database.SeedDefaultHours(db); err != nil {
		logger.Warn().Err(err).Msg("could not seed default business hours")
	}

	// Firebase storage init
	storage.Init()
	storageClient := storage.NewClient()

	tracker := analytics.NewTracker(db)
	metrics.Register()

	// Nightly maintenance: drop stale analytics events and dead refresh tokens.
	scheduler := cron.New()
	_, err = scheduler.AddFunc("30 3 * * *", func() {
		removed, err := tracker.Purge(time.Now(), analytics.DefaultRetentionDays)
		if err != nil {
			logger.Error().Err(err).Msg("analytics purge failed")
			return
		}
		logger.Info().Int64("removed", removed).Msg("analytics events purged")
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to schedule analytics purge")
	}
	_, err = scheduler.AddFunc("45 3 * * *", func() {
		removed, err := database.PurgeExpiredRefreshTokens(db, time.Now())
		if err != nil {
			logger.Error().Err(err).Msg("refresh token purge failed")
			return
		}
		logger.Info().Int64("removed", removed).Msg("refresh tokens purged")
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to schedule refresh token purge")
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup Gin router
	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	// Limit multipart form memory to 10MB
	r.MaxMultipartMemory = 10 << 20

	// CORS configuration - filter out empty strings from AllowOrigins
	origins := []string{os.Getenv("FRONTEND_URL"), os.Getenv("ADMIN_URL")}
	var filteredOrigins []string
	for _, o := range origins {
		if o != "" {
			filteredOrigins = append(filteredOrigins, o)
		}
	}
	if len(filteredOrigins) == 0 {
		filteredOrigins = []string{"http://localhost:3000"}
		logger.Warn().Msg("no CORS origins configured, defaulting to http://localhost:3000")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     filteredOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, storageClient, tracker)

	// Start server with graceful shutdown
	port := config.GetEnv("PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Run server in a goroutine
	go func() {
		logger.Info().Str("port", port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing database connection")
		} else {
			logger.Info().Msg("database connection closed")
		}
	}

	logger.Info().Msg("server exited gracefully")
}
