package cart

import "airlace/models"

// CartService is the single source of truth for the user's in-progress
// bookings. Every mutation persists the full cart before returning.
type CartService interface {
	Items() []models.CartItem
	// AddToCart inserts the item, replacing in place any existing entry
	// with the same (property ID, check-in, check-out) triple. The returned
	// flag is true when an entry was replaced rather than appended.
	AddToCart(item models.CartItem) (updated bool, err error)
	// RemoveFromCart removes every entry for the given property ID,
	// regardless of date range.
	RemoveFromCart(id string) error
	ClearCart() error
	CartTotal() float64
	CartCount() int
}
