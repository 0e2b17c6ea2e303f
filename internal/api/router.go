package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flexpass/gympass-backend-go/internal/config"
	"github.com/flexpass/gympass-backend-go/internal/handler"
	"github.com/flexpass/gympass-backend-go/internal/middleware"
	"github.com/flexpass/gympass-backend-go/internal/payment"
	"github.com/flexpass/gympass-backend-go/internal/repository"
	"github.com/flexpass/gympass-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto a gin engine.
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	listingRepo := repository.NewListingRepository(db)
	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	savedRepo := repository.NewSavedRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret)
	listingService := service.NewListingService(listingRepo)
	bookingService := service.NewBookingService(bookingRepo, listingRepo)
	reviewService := service.NewReviewService(reviewRepo, listingRepo, userRepo)
	savedService := service.NewSavedService(savedRepo, listingRepo)
	stripeClient := payment.NewClient(cfg.StripeSecretKey)

	authHandler := handler.NewAuthHandler(authService)
	listingHandler := handler.NewListingHandler(listingService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	savedHandler := handler.NewSavedHandler(savedService)
	paymentHandler := handler.NewPaymentHandler(stripeClient)

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "GymPass API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(300, time.Minute))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.Auth(cfg.JWTSecret), authHandler.Me)
		}

		listings := api.Group("/listings")
		{
			listings.GET("", listingHandler.GetListings)
			listings.GET("/:id", listingHandler.GetListingByID)
			listings.GET("/:id/reviews", reviewHandler.GetReviews)
			listings.POST("", middleware.Auth(cfg.JWTSecret), listingHandler.CreateListing)
			listings.POST("/:id/reviews", middleware.Auth(cfg.JWTSecret), reviewHandler.CreateReview)
		}

		bookings := api.Group("/bookings", middleware.Auth(cfg.JWTSecret))
		{
			bookings.GET("", bookingHandler.GetBookings)
			bookings.POST("", bookingHandler.CreateBooking)
		}

		saved := api.Group("/saved", middleware.Auth(cfg.JWTSecret))
		{
			saved.GET("", savedHandler.GetSaved)
			saved.GET("/listings", savedHandler.GetSavedListings)
			saved.PUT("/:listingId", savedHandler.SaveListing)
			saved.DELETE("/:listingId", savedHandler.UnsaveListing)
		}

		payments := api.Group("/payments", middleware.Auth(cfg.JWTSecret))
		{
			payments.POST("/intent", paymentHandler.CreateIntent)
		}
	}

	return r
}
