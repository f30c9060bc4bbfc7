package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	userRepo "saathi/database/repository/user"
	"saathi/handlers"
	"saathi/middleware"
	"saathi/models"
)

// RegisterAuthRoutes registers account endpoints, including the spoken
// registration flow for workers without smartphone literacy.
func RegisterAuthRoutes(r *gin.Engine, users userRepo.UserRepository) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", handlers.RegisterHandler)
		api.POST("/login", handlers.SignInHandler)
		api.POST("/voice-register/parse", handlers.ParseVoiceRegistrationHandler)
		api.POST("/voice-register/confirm", handlers.ConfirmVoiceRegistrationHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(users))
		protected.GET("/me", handlers.MeHandler)
		protected.POST("/logout", handlers.SignOutHandler)
	}
}

// RegisterWorkerRoutes registers the public worker registry plus
// worker-only profile actions.
func RegisterWorkerRoutes(r *gin.Engine, users userRepo.UserRepository) {
	api := r.Group("/api/workers")
	{
		api.GET("", handlers.ListWorkersHandler)
		api.GET("/search", handlers.ListWorkersHandler)
		api.GET("/:id", handlers.GetWorkerHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(users), middleware.RequireRole(models.RoleWorker))
		protected.PUT("/availability", handlers.ToggleAvailabilityHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, users userRepo.UserRepository) {
	api := r.Group("/api/bookings")
	api.Use(middleware.JWTAuthMiddleware(users))
	{
		api.GET("/workers", handlers.EligibleWorkersHandler)
		api.POST("/confirm", middleware.RequireRole(models.RoleCustomer), handlers.ConfirmBookingHandler)
		api.GET("/my", handlers.MyBookingsHandler)
		api.GET("/jobs", middleware.RequireRole(models.RoleWorker), handlers.WorkerJobsHandler)
		api.PUT("/:id/accept", middleware.RequireRole(models.RoleWorker), handlers.AcceptBookingHandler)
		api.PUT("/:id/complete", middleware.RequireRole(models.RoleWorker), handlers.CompleteBookingHandler)
		api.PUT("/:id/cancel", middleware.RequireRole(models.RoleCustomer), handlers.CancelBookingHandler)
	}
}

// RegisterRatingRoutes registers rating submission and lookup.
func RegisterRatingRoutes(r *gin.Engine, users userRepo.UserRepository) {
	api := r.Group("/api/ratings")
	{
		api.GET("/booking/:bookingId", handlers.BookingRatingHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(users), middleware.RequireRole(models.RoleCustomer))
		protected.POST("", handlers.SubmitRatingHandler)
	}
}

// RegisterEarningsRoutes registers the worker earnings and income
// prediction views.
func RegisterEarningsRoutes(r *gin.Engine, users userRepo.UserRepository) {
	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(users), middleware.RequireRole(models.RoleWorker))
	{
		api.GET("/earnings", handlers.EarningsSummaryHandler)
		api.GET("/prediction/income", handlers.PredictIncomeHandler)
	}
}

// RegisterSkillRoutes registers audio skill intake and the vocabulary
// listing.
func RegisterSkillRoutes(r *gin.Engine, users userRepo.UserRepository) {
	api := r.Group("/api/skills")
	{
		api.GET("/valid", handlers.ValidSkillsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(users), middleware.RequireRole(models.RoleWorker))
		protected.POST("/extract", handlers.ExtractSkillsHandler)
	}
}

// RegisterVerificationRoutes registers the identity verification
// workflow. Review actions require the operator token.
func RegisterVerificationRoutes(r *gin.Engine, users userRepo.UserRepository) {
	api := r.Group("/api/verification")
	{
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(users), middleware.RequireRole(models.RoleWorker))
		protected.POST("/submit", handlers.SubmitVerificationHandler)
		protected.GET("/status", handlers.VerificationStatusHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminAuthMiddleware())
		admin.PUT("/approve/:workerId", handlers.ApproveVerificationHandler)
		admin.PUT("/reject/:workerId", handlers.RejectVerificationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Saathi"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and
// global middleware.
func RegisterRoutes(r *gin.Engine, users userRepo.UserRepository) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, users)
	RegisterWorkerRoutes(r, users)
	RegisterBookingRoutes(r, users)
	RegisterRatingRoutes(r, users)
	RegisterEarningsRoutes(r, users)
	RegisterSkillRoutes(r, users)
	RegisterVerificationRoutes(r, users)
}
