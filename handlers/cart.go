package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	catalogRepo "airlace/database/repository/catalog"
	"airlace/models"
	"airlace/services/cart"
	"airlace/utils"
)

// CartHandler exposes the cart operations.
type CartHandler struct {
	Cart    cart.CartService
	Catalog catalogRepo.CatalogRepository
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(cartSvc cart.CartService, catalog catalogRepo.CatalogRepository) *CartHandler {
	return &CartHandler{Cart: cartSvc, Catalog: catalog}
}

// GetCartHandler returns the cart contents with derived totals.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	items := h.Cart.Items()
	if items == nil {
		items = []models.CartItem{}
	}
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": h.Cart.CartTotal(),
		"count": h.Cart.CartCount(),
	})
}

// AddToCartHandler adds a booking to the cart. The property is snapshotted
// from the catalog, and when no price is supplied the total for the stay
// is computed as nights times the nightly rate.
func (h *CartHandler) AddToCartHandler(c *gin.Context) {
	var input struct {
		PropertyID string  `json:"propertyId"`
		CheckIn    string  `json:"checkIn"`
		CheckOut   string  `json:"checkOut"`
		Guests     int     `json:"guests"`
		Price      float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	nights, err := validateStay(input.CheckIn, input.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid stay", err.Error())
		return
	}
	if input.Guests <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid stay", "guest count must be positive")
		return
	}

	prop, err := h.Catalog.GetByID(input.PropertyID)
	if err != nil {
		var notFound *catalogRepo.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message":  "Property not found",
				"redirect": "/places",
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch property", err.Error())
		return
	}

	price := input.Price
	if price == 0 {
		price = float64(nights) * prop.Price
	}

	item := models.CartItem{
		ID:       prop.ID,
		Property: *prop,
		CheckIn:  input.CheckIn,
		CheckOut: input.CheckOut,
		Guests:   input.Guests,
		Price:    price,
	}

	updated, err := h.Cart.AddToCart(item)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save cart", err.Error())
		return
	}

	message := "Added to cart"
	if updated {
		message = "Booking updated in cart"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"updated": updated,
		"count":   h.Cart.CartCount(),
		"total":   h.Cart.CartTotal(),
	})
}

// RemoveFromCartHandler removes every entry for a property ID.
func (h *CartHandler) RemoveFromCartHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Cart.RemoveFromCart(id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Removed from cart",
		"count":   h.Cart.CartCount(),
		"total":   h.Cart.CartTotal(),
	})
}

// ClearCartHandler empties the cart unconditionally.
func (h *CartHandler) ClearCartHandler(c *gin.Context) {
	if err := h.Cart.ClearCart(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear cart", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// validateStay parses the date pair and returns the number of nights.
func validateStay(checkIn, checkOut string) (int, error) {
	const layout = "2006-01-02"
	in, err := time.Parse(layout, checkIn)
	if err != nil {
		return 0, fmt.Errorf("invalid check-in date %q: %w", checkIn, err)
	}
	out, err := time.Parse(layout, checkOut)
	if err != nil {
		return 0, fmt.Errorf("invalid check-out date %q: %w", checkOut, err)
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights <= 0 {
		return 0, fmt.Errorf("check-out must be after check-in")
	}
	return nights, nil
}
