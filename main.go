package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"saathi/config"
	"saathi/database"
	bookingRepoPkg "saathi/database/repository/booking"
	ratingRepoPkg "saathi/database/repository/rating"
	userRepoPkg "saathi/database/repository/user"
	workerRepoPkg "saathi/database/repository/worker"
	"saathi/handlers"
	"saathi/middleware"
	"saathi/routes"
	"saathi/services/auth"
	"saathi/services/booking"
	"saathi/services/earnings"
	ai "saathi/services/intelligence"
	"saathi/services/rating"
	"saathi/services/worker"
	"saathi/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	geminiClient, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	aiSvc := ai.NewDefaultService(geminiClient, time.Duration(config.AppConfig.GeminiTimeout)*time.Second)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	workerRepo := workerRepoPkg.NewMongoWorkerRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	ratingRepo := ratingRepoPkg.NewMongoRatingRepo()

	// services.
	handlers.AuthService = &auth.DefaultAuthService{
		Users:    userRepo,
		Workers:  workerRepo,
		AI:       aiSvc,
		TokenTTL: time.Duration(config.AppConfig.TokenExpiryHrs) * time.Hour,
	}
	handlers.WorkerService = &worker.DefaultWorkerService{
		Workers: workerRepo,
		Users:   userRepo,
		AI:      aiSvc,
	}
	handlers.BookingService = &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Workers:  workerRepo,
		Users:    userRepo,
	}
	handlers.RatingService = &rating.DefaultRatingService{
		Ratings:  ratingRepo,
		Bookings: bookingRepo,
		Workers:  workerRepo,
		Users:    userRepo,
	}
	handlers.EarningsService = &earnings.DefaultEarningsService{
		Workers:  workerRepo,
		Users:    userRepo,
		Bookings: bookingRepo,
		AI:       aiSvc,
	}

	routes.RegisterRoutes(router, userRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
