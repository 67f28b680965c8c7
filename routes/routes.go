package routes

import (
	"time"

	"osteria-backend/analytics"
	"osteria-backend/handlers"
	"osteria-backend/middleware"
	"osteria-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, storageClient storage.Client, tracker *analytics.Tracker) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	announcementHandler := &handlers.AnnouncementHandler{DB: db}
	closureHandler := &handlers.ClosureHandler{DB: db}
	hoursHandler := &handlers.HoursHandler{DB: db}
	mediaHandler := &handlers.MediaHandler{DB: db, Storage: storageClient}
	galleryHandler := &handlers.GalleryHandler{DB: db}
	analyticsHandler := &handlers.AnalyticsHandler{Tracker: tracker}

	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	trackLimiter := middleware.NewRateLimiter(60, time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/auth/login", loginLimiter.Middleware(), authHandler.Login)
		api.POST("/auth/refresh", authHandler.Refresh)

		// Public content routes
		api.GET("/announcements", announcementHandler.GetAnnouncements)
		api.GET("/closures", closureHandler.GetClosures)
		api.GET("/hours", hoursHandler.GetHours)
		api.GET("/gallery", galleryHandler.GetGallery)

		// Page view beacon
		api.POST("/analytics/events", trackLimiter.Middleware(), analyticsHandler.TrackEvent)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
		protected.PUT("/auth/password", authHandler.ChangePassword)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Announcement management
		admin.GET("/announcements", announcementHandler.ListAnnouncements)
		admin.POST("/announcements", announcementHandler.CreateAnnouncement)
		admin.PUT("/announcements/:id", announcementHandler.UpdateAnnouncement)
		admin.DELETE("/announcements/:id", announcementHandler.DeleteAnnouncement)

		// One-off closures
		admin.GET("/closures", closureHandler.ListClosures)
		admin.POST("/closures", closureHandler.CreateClosure)
		admin.DELETE("/closures/:id", closureHandler.DeleteClosure)

		// Recurring closure rules
		admin.GET("/closures/recurring", closureHandler.ListRecurring)
		admin.POST("/closures/recurring", closureHandler.CreateRecurring)
		admin.PUT("/closures/recurring/:id", closureHandler.UpdateRecurring)
		admin.DELETE("/closures/recurring/:id", closureHandler.DeleteRecurring)

		// Business hours
		admin.PUT("/hours", hoursHandler.UpdateHours)

		// Media library
		admin.GET("/media", mediaHandler.ListMedia)
		admin.POST("/media", mediaHandler.UploadMedia)
		admin.DELETE("/media/:id", mediaHandler.DeleteMedia)

		// Gallery management
		admin.POST("/gallery", galleryHandler.CreateGalleryImage)
		admin.PUT("/gallery/reorder", galleryHandler.ReorderGallery)
		admin.PUT("/gallery/:id", galleryHandler.UpdateGalleryImage)
		admin.DELETE("/gallery/:id", galleryHandler.DeleteGalleryImage)

		// Analytics dashboard
		admin.GET("/analytics/summary", analyticsHandler.GetSummary)
		admin.GET("/analytics/export", analyticsHandler.ExportSummary)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
