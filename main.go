// File: snapvroom/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snapvroom/config"
	"snapvroom/database"
	recordsRepo "snapvroom/database/repository/records"
	"snapvroom/handlers"
	"snapvroom/middleware"
	"snapvroom/routes"
	ai "snapvroom/services/intelligence"
	"snapvroom/services/rentalapi"
	"snapvroom/services/session"
	"snapvroom/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream rental API client.
	apiClient, err := rentalapi.NewClient(
		config.AppConfig.RentalAPIURL,
		time.Duration(config.AppConfig.RentalAPITimeoutSeconds)*time.Second,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to configure rental API client: %v", err)
	}

	// Session registry and archive.
	sessions := session.NewManager(apiClient)
	records := recordsRepo.NewMongoRecordRepo()

	// Advisory classifier.
	predictionStore := ai.NewRedisPredictionStore(utils.GetCacheClient(), 30*time.Minute)
	advisor := ai.NewDefaultAdvisorService(
		config.AppConfig.OpenAIAPIKey,
		config.AppConfig.OpenAIAPIURL,
		config.AppConfig.OpenAIModel,
		predictionStore,
	)

	bookingHandler := handlers.NewBookingHandler(sessions, records, logger)
	aiHandler := handlers.NewAIHandler(advisor, sessions, logger)

	handlerBundle := &handlers.HandlerBundle{
		Booking: bookingHandler,
		AI:      aiHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.CacheClient, utils.AuthCacheClient},
		database.MongoClient,
	)

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
