package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every endpoint handler for route registration.
type HandlerBundle struct {
	// Catalog endpoints.
	GetPropertyByIDHandler gin.HandlerFunc
	GetFeaturedHandler     gin.HandlerFunc
	GetNewHandler          gin.HandlerFunc
	GetByRegionHandler     gin.HandlerFunc

	// Search endpoints.
	ListPropertiesHandler    gin.HandlerFunc
	GetRecentSearchesHandler gin.HandlerFunc
	RememberSearchHandler    gin.HandlerFunc

	// Cart endpoints.
	GetCartHandler        gin.HandlerFunc
	AddToCartHandler      gin.HandlerFunc
	RemoveFromCartHandler gin.HandlerFunc
	ClearCartHandler      gin.HandlerFunc

	// Checkout endpoints.
	PlaceOrderHandler   gin.HandlerFunc
	GetLastOrderHandler gin.HandlerFunc
}
