package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"airlace/models"
	"airlace/services/checkout"
	"airlace/utils"
)

// CheckoutHandler exposes the checkout flow.
type CheckoutHandler struct {
	Checkout checkout.CheckoutService
}

// NewCheckoutHandler creates a CheckoutHandler.
func NewCheckoutHandler(checkoutSvc checkout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Checkout: checkoutSvc}
}

// PlaceOrderHandler validates the posted form against the current cart
// and finalizes the order. Validation failures come back as one field
// error map, an empty cart as a redirect notice.
func (h *CheckoutHandler) PlaceOrderHandler(c *gin.Context) {
	var form models.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	order, err := h.Checkout.PlaceOrder(c.Request.Context(), form)
	if err != nil {
		var emptyCart *checkout.EmptyCartError
		if errors.As(err, &emptyCart) {
			c.JSON(http.StatusConflict, gin.H{
				"message":  "Your cart is empty",
				"redirect": "/cart",
			})
			return
		}
		var validation checkout.ValidationErrors
		if errors.As(err, &validation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "Please correct the highlighted fields",
				"errors":  validation,
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to place order", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully!",
		"order":   order,
	})
}

// GetLastOrderHandler returns the confirmation ID of the most recent
// completed checkout.
func (h *CheckoutHandler) GetLastOrderHandler(c *gin.Context) {
	id, err := h.Checkout.LastOrder()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load last order", err.Error())
		return
	}
	if id == "" {
		c.JSON(http.StatusNotFound, gin.H{
			"message":  "No completed order",
			"redirect": "/",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"confirmationId": id})
}
