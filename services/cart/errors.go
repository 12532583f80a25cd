package cart

import "fmt"

// CartError is a cart persistence failure surfaced to handlers.
type CartError struct {
	Code    string
	Message string
}

func (e *CartError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewCartError(msg string) error {
	return &CartError{
		Code:    "cartError",
		Message: msg,
	}
}
