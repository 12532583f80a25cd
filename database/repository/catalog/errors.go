package catalogRepo

import "fmt"

// NotFoundError is returned when a property ID is absent from the catalog.
// Handlers surface it as a redirect-with-notice, never a crash.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("property %q not found in catalog", e.ID)
}
