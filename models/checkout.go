package models

// Payment methods accepted by the checkout form.
const (
	PaymentMethodCredit     = "credit"
	PaymentMethodDebit      = "debit"
	PaymentMethodUPI        = "upi"
	PaymentMethodNetBanking = "netbanking"
)

// CheckoutForm is the full payload collected on the checkout page. It only
// exists for the duration of a checkout attempt and is validated as a whole.
type CheckoutForm struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`

	PaymentMethod string `json:"paymentMethod"`

	// Card fields, required for credit/debit.
	CardName   string `json:"cardName,omitempty"`
	CardNumber string `json:"cardNumber,omitempty"`
	CardExpiry string `json:"cardExpiry,omitempty"`
	CardCvv    string `json:"cardCvv,omitempty"`

	// Required for upi.
	UpiID string `json:"upiId,omitempty"`

	// Required for netbanking.
	BankName string `json:"bankName,omitempty"`

	Notes string `json:"notes,omitempty"`
}
