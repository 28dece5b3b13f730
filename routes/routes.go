package routes

import (
	"net/http"
	"time"

	"farmstead/handlers"
	"farmstead/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers guest session issuance.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.POST("", hb.Session.CreateSession)
	}
}

// RegisterCatalogRoutes registers the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/products", hb.Catalog.ListProducts)
		api.GET("/products/:id", hb.Catalog.GetProduct)
		api.GET("/products/:id/nutrition", hb.Catalog.GetProductNutrition)
		api.GET("/categories", hb.Catalog.ListCategories)
		api.GET("/rooms", hb.Catalog.ListRooms)
		api.GET("/rooms/:id", hb.Catalog.GetRoom)
		api.GET("/activities", hb.Catalog.ListActivities)
		api.GET("/packages", hb.Catalog.ListPackages)
	}
}

// RegisterCartRoutes registers the session cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.Cart.GetCart)
		api.POST("/items", hb.Cart.AddItem)
		api.PUT("/items/:productID", hb.Cart.UpdateQuantity)
		api.DELETE("/items/:productID", hb.Cart.RemoveItem)
		api.DELETE("", hb.Cart.ClearCart)
		api.GET("/summary", hb.Cart.GetSummary)
		api.POST("/coupon", hb.Cart.ApplyCoupon)
		api.DELETE("/coupon", hb.Cart.RemoveCoupon)
		api.POST("/checkout", hb.Cart.Checkout)
	}
}

// RegisterWishlistRoutes registers the saved-products endpoints.
func RegisterWishlistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/wishlist")
	{
		api.GET("", hb.Wishlist.ListWishlist)
		api.PUT("/:productID", hb.Wishlist.AddToWishlist)
		api.POST("/:productID", hb.Wishlist.ToggleWishlist)
		api.DELETE("/:productID", hb.Wishlist.RemoveFromWishlist)
	}
}

// RegisterSubscriptionRoutes registers the recurring-delivery endpoints.
func RegisterSubscriptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/subscriptions")
	{
		api.POST("", hb.Subscription.CreateSubscription)
		api.GET("", hb.Subscription.ListSubscriptions)
		api.POST("/preview", hb.Subscription.PreviewNextDelivery)
		api.GET("/:id", hb.Subscription.GetSubscription)
		api.PUT("/:id/schedule", hb.Subscription.UpdateSchedule)
		api.PUT("/:id/start-date", hb.Subscription.SetStartDate)
		api.POST("/:id/skip-dates", hb.Subscription.AddSkipDate)
		api.PUT("/:id/vacation", hb.Subscription.SetVacation)
		api.POST("/:id/pause", hb.Subscription.PauseSubscription)
		api.POST("/:id/resume", hb.Subscription.ResumeSubscription)
		api.POST("/:id/cancel", hb.Subscription.CancelSubscription)
	}
}

// RegisterStayRoutes sets up the endpoints for the farm-stay booking engine.
func RegisterStayRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	stayGroup := r.Group("/api/stay")
	{
		stayGroup.POST("/session", hb.Stay.InitiateSession)
		stayGroup.PUT("/session/:sessionID", hb.Stay.UpdateSession)
		stayGroup.DELETE("/session/:sessionID", hb.Stay.CancelSession)
		stayGroup.POST("/confirm", hb.Stay.ConfirmBooking)
		stayGroup.GET("/bookings", hb.Stay.ListBookings)
		stayGroup.DELETE("/bookings/:bookingID", hb.Stay.CancelBooking)
		stayGroup.GET("/rooms/:roomID/availability", hb.Stay.GetRoomAvailability)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Session-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSessionRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterWishlistRoutes(r, hb)
	RegisterSubscriptionRoutes(r, hb)
	RegisterStayRoutes(r, hb)
	RegisterHealthRoute(r)
}
