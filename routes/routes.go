package routes

import (
	"time"

	"snapvroom/handlers"
	"snapvroom/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the device-token endpoint.
func RegisterAuthRoutes(r *gin.Engine) {
	api := r.Group("/api/auth")
	{
		api.POST("/device", handlers.IssueDeviceTokenHandler)
	}
}

// RegisterSessionRoutes sets up the endpoints for the booking session.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	sessionGroup := r.Group("/api/session")
	{
		sessionGroup.Use(middleware.DeviceAuthMiddleware())
		sessionGroup.POST("", hb.Booking.StartSession)
		sessionGroup.GET("/:sessionID", hb.Booking.GetSession)
		sessionGroup.POST("/:sessionID/refresh", hb.Booking.RefreshSession)
		sessionGroup.GET("/:sessionID/initial-vehicle", hb.Booking.GetInitialVehicle)
		sessionGroup.POST("/:sessionID/vehicles/:vehicleID", hb.Booking.AssignVehicle)
		sessionGroup.POST("/:sessionID/protections/:packageID", hb.Booking.AssignProtection)
		sessionGroup.POST("/:sessionID/addons/:addonID", hb.Booking.AssignAddon)
		sessionGroup.POST("/:sessionID/complete", hb.Booking.CompleteSession)
		sessionGroup.DELETE("/:sessionID", hb.Booking.CancelSession)

		// Advisory recommendation side-channel.
		sessionGroup.POST("/:sessionID/recommendation", hb.AI.RecommendHandler)
		sessionGroup.GET("/:sessionID/recommendation", hb.AI.GetRecommendationHandler)
		sessionGroup.DELETE("/:sessionID/recommendation", hb.AI.ClearRecommendationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r)
	RegisterSessionRoutes(r, hb)
	RegisterHealthRoute(r)
}
