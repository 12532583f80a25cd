package checkout

import (
	"context"

	"airlace/models"
)

// CheckoutService validates a checkout form against the current cart and,
// on success, finalizes the order.
type CheckoutService interface {
	// PlaceOrder refuses with an EmptyCartError when the cart is empty and
	// with ValidationErrors when the form is invalid; in both cases nothing
	// is mutated. On success the cart is cleared and the order snapshot
	// returned.
	PlaceOrder(ctx context.Context, form models.CheckoutForm) (*models.Order, error)
	// LastOrder returns the confirmation ID of the most recent completed
	// checkout, or "" when none exists.
	LastOrder() (string, error)
}
