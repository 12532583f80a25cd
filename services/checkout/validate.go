package checkout

import (
	"regexp"
	"strings"

	"airlace/models"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// fieldLabels humanize field keys for error messages.
var fieldLabels = map[string]string{
	"fullName":      "Full Name",
	"email":         "Email",
	"phone":         "Phone",
	"address":       "Address",
	"city":          "City",
	"state":         "State",
	"zipCode":       "Zip Code",
	"paymentMethod": "Payment Method",
	"cardName":      "Card Name",
	"cardNumber":    "Card Number",
	"cardExpiry":    "Card Expiry",
	"cardCvv":       "Card Cvv",
	"upiId":         "Upi Id",
	"bankName":      "Bank Name",
}

// ValidateForm checks the checkout form as a whole: all required fields
// first (including the payment-method-specific ones), then the email and
// phone format rules. Every violation is collected; nil means the form is
// valid.
func ValidateForm(form models.CheckoutForm) ValidationErrors {
	errs := ValidationErrors{}

	values := map[string]string{
		"fullName":      form.FullName,
		"email":         form.Email,
		"phone":         form.Phone,
		"address":       form.Address,
		"city":          form.City,
		"state":         form.State,
		"zipCode":       form.ZipCode,
		"paymentMethod": form.PaymentMethod,
		"cardName":      form.CardName,
		"cardNumber":    form.CardNumber,
		"cardExpiry":    form.CardExpiry,
		"cardCvv":       form.CardCvv,
		"upiId":         form.UpiID,
		"bankName":      form.BankName,
	}

	required := []string{"fullName", "email", "phone", "address", "city", "state", "zipCode", "paymentMethod"}
	switch form.PaymentMethod {
	case models.PaymentMethodCredit, models.PaymentMethodDebit:
		required = append(required, "cardName", "cardNumber", "cardExpiry", "cardCvv")
	case models.PaymentMethodUPI:
		required = append(required, "upiId")
	case models.PaymentMethodNetBanking:
		required = append(required, "bankName")
	case "":
		// paymentMethod itself is already in the required set.
	default:
		errs.Add("paymentMethod", "Unsupported payment method")
	}

	for _, field := range required {
		if strings.TrimSpace(values[field]) == "" {
			errs.Add(field, fieldLabels[field]+" is required")
		}
	}

	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		errs.Add("email", "Invalid email address")
	}

	if form.Phone != "" {
		digits := stripNonDigits(form.Phone)
		if len(digits) < 10 || len(digits) > 15 {
			errs.Add("phone", "Invalid phone number")
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
