package localstore

import "airlace/models"

// CartStore persists the full cart as one record. Load returns (nil, nil)
// when nothing has been persisted yet; a decode failure is an error so the
// cart service can discard the corrupt state and start empty.
type CartStore interface {
	Load() (*models.CartState, error)
	Save(state models.CartState) error
	Clear() error
}

// SearchStore persists the bounded list of recent search selections,
// most recent first.
type SearchStore interface {
	LoadRecent() ([]models.RecentSearch, error)
	SaveRecent(searches []models.RecentSearch) error
}

// OrderStore remembers the confirmation ID of the last completed checkout.
type OrderStore interface {
	SaveLastOrder(confirmationID string) error
	LastOrder() (string, error)
}

// Store combines the durable keys the demo keeps: the cart, the recent
// searches, and the last order confirmation.
type Store interface {
	CartStore
	SearchStore
	OrderStore
}
