package models

import "time"

// PaymentRequest carries what the payment processor needs to charge for
// an order.
type PaymentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"`
	Email    string  `json:"email"`
}

// Invoice records the outcome of a payment attempt.
type Invoice struct {
	InvoiceID string    `json:"invoiceId"`
	PaymentID string    `json:"paymentId,omitempty"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Method    string    `json:"method"`
	Status    string    `json:"status"` // "pending", "paid"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Order is the confirmation produced by a successful checkout: the
// confirmation number plus a snapshot of the cart as it stood at
// submission time.
type Order struct {
	ConfirmationID string     `json:"confirmationId"`
	Items          []CartItem `json:"items"`
	Total          float64    `json:"total"`
	PaymentMethod  string     `json:"paymentMethod"`
	Email          string     `json:"email"`
	Invoice        *Invoice   `json:"invoice,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}
