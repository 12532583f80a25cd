package models

// CartItem is one booking in the user's cart. The property is an owned
// snapshot, not a reference, and Price is the total captured at add time
// for the whole stay.
type CartItem struct {
	ID       string   `json:"id"` // equals the property ID
	Property Property `json:"property"`
	CheckIn  string   `json:"checkIn"`  // "YYYY-MM-DD"
	CheckOut string   `json:"checkOut"` // "YYYY-MM-DD"
	Guests   int      `json:"guests"`
	Price    float64  `json:"price"`
}

// SameStay reports whether two items share the identity triple
// (property ID, check-in, check-out) that makes a cart entry unique.
func (i CartItem) SameStay(other CartItem) bool {
	return i.ID == other.ID && i.CheckIn == other.CheckIn && i.CheckOut == other.CheckOut
}

// CartState is the full persisted cart, serialized as a whole on every
// mutation. Last writer wins.
type CartState struct {
	Items []CartItem `json:"items"`
}
