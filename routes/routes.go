package routes

import (
	"net/http"
	"time"

	"airlace/handlers"
	"airlace/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers property catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		api.GET("", hb.ListPropertiesHandler)
		api.GET("/featured", hb.GetFeaturedHandler)
		api.GET("/new", hb.GetNewHandler)
		api.GET("/region/:region", hb.GetByRegionHandler)
		api.GET("/:id", hb.GetPropertyByIDHandler)
	}
}

// RegisterSearchRoutes registers recent-search endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.GET("/recent", hb.GetRecentSearchesHandler)
		api.POST("/recent", hb.RememberSearchHandler)
	}
}

// RegisterCartRoutes registers cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.GetCartHandler)
		api.POST("", hb.AddToCartHandler)
		api.DELETE("/:id", hb.RemoveFromCartHandler)
		api.DELETE("", hb.ClearCartHandler)
	}
}

// RegisterCheckoutRoutes registers checkout endpoints.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.POST("", hb.PlaceOrderHandler)
		api.GET("/last-order", hb.GetLastOrderHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Airlace",
			"checks":  utils.GetHealthStatus(),
		})
	})
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

	RegisterCatalogRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterHealthRoute(r)
}
