package api

import (
	"log"
	stdhttp "net/http"

	intconfig "travelapp/internal/config"
	h "travelapp/internal/http/handlers"
	"travelapp/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.ConfigureAuth(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"message": "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	auth := middleware.Auth([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.POST("/auth/login", h.Login)
		api.POST("/auth/register", h.Register)

		listings := api.Group("/listings")
		listings.GET("", h.GetListings)
		listings.GET("/:id", h.GetListingByID)
		listings.GET("/:id/reviews", h.GetListingReviews)
		listings.POST("", auth, h.CreateListing)
		listings.PUT("/:id", auth, h.UpdateListing)
		listings.PATCH("/:id", auth, h.UpdateListing)
		listings.DELETE("/:id", auth, h.DeleteListing)

		bookings := api.Group("/bookings")
		bookings.GET("", h.GetBookings)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.GET("/:id/invoice", h.GetBookingInvoicePDF)
		bookings.POST("", auth, h.CreateBooking)
		bookings.PUT("/:id", auth, h.UpdateBooking)
		bookings.PATCH("/:id", auth, h.UpdateBooking)
		bookings.DELETE("/:id", auth, h.DeleteBooking)

		reviews := api.Group("/reviews")
		reviews.POST("", auth, h.CreateReview)
	}

	return r
}
