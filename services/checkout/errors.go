package checkout

import (
	"fmt"
	"sort"
	"strings"
)

// EmptyCartError is returned when checkout is attempted with nothing in
// the cart. Handlers redirect the caller back to the cart.
type EmptyCartError struct{}

func (e *EmptyCartError) Error() string {
	return "cart is empty"
}

// ValidationErrors collects every form violation, keyed by field, so the
// caller can display all problems at once instead of the first one.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("invalid checkout form: %s", strings.Join(fields, ", "))
}

// Add records a violation for a field, keeping the first message when the
// field already has one.
func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}
