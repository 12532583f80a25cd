package cart

import (
	"errors"
	"testing"

	"airlace/database/repository/localstore"
	"airlace/models"
)

func item(id, checkIn, checkOut string, guests int, price float64) models.CartItem {
	return models.CartItem{
		ID:       id,
		Property: models.Property{ID: id, Title: "Property " + id, Price: price},
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   guests,
		Price:    price,
	}
}

func TestAddToCartAppendsNewStay(t *testing.T) {
	svc := NewCartService(localstore.NewMemoryStore())

	updated, err := svc.AddToCart(item("1", "2026-09-01", "2026-09-05", 2, 19960))
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if updated {
		t.Fatalf("first add should not report an update")
	}
	if svc.CartCount() != 1 {
		t.Fatalf("count = %d, want 1", svc.CartCount())
	}
}

func TestAddToCartReplacesSameStayInPlace(t *testing.T) {
	svc := NewCartService(localstore.NewMemoryStore())

	if _, err := svc.AddToCart(item("1", "2026-09-01", "2026-09-05", 2, 19960)); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if _, err := svc.AddToCart(item("2", "2026-09-01", "2026-09-05", 4, 15560)); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	// Re-adding the same (id, checkIn, checkOut) replaces the entry,
	// keeping its position; here the guest count and price change.
	updated, err := svc.AddToCart(item("1", "2026-09-01", "2026-09-05", 3, 21000))
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if !updated {
		t.Fatalf("re-adding the same stay should report an update")
	}

	items := svc.Items()
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].ID != "1" || items[0].Guests != 3 || items[0].Price != 21000 {
		t.Fatalf("replaced entry = %+v", items[0])
	}
}

func TestAddToCartSamePropertyDifferentDatesCoexist(t *testing.T) {
	svc := NewCartService(localstore.NewMemoryStore())

	if _, err := svc.AddToCart(item("1", "2026-09-01", "2026-09-05", 2, 19960)); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	updated, err := svc.AddToCart(item("1", "2026-10-01", "2026-10-03", 2, 9980))
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if updated {
		t.Fatalf("a different date range is a new entry, not an update")
	}
	if svc.CartCount() != 2 {
		t.Fatalf("count = %d, want 2", svc.CartCount())
	}
}

func TestRemoveFromCartRemovesAllDateRangesForProperty(t *testing.T) {
	svc := NewCartService(localstore.NewMemoryStore())

	svc.AddToCart(item("1", "2026-09-01", "2026-09-05", 2, 19960))
	svc.AddToCart(item("1", "2026-10-01", "2026-10-03", 2, 9980))
	svc.AddToCart(item("2", "2026-09-01", "2026-09-05", 4, 15560))

	if err := svc.RemoveFromCart("1"); err != nil {
		t.Fatalf("RemoveFromCart: %v", err)
	}

	items := svc.Items()
	if len(items) != 1 || items[0].ID != "2" {
		t.Fatalf("items = %+v, want only property 2", items)
	}
}

func TestCartTotalSumsStoredPrices(t *testing.T) {
	svc := NewCartService(localstore.NewMemoryStore())

	svc.AddToCart(item("1", "2026-09-01", "2026-09-05", 2, 19960))
	svc.AddToCart(item("2", "2026-09-01", "2026-09-05", 4, 15560))

	if got := svc.CartTotal(); got != 35520 {
		t.Fatalf("CartTotal = %v, want 35520", got)
	}
}

func TestClearCartEmptiesEverything(t *testing.T) {
	store := localstore.NewMemoryStore()
	svc := NewCartService(store)

	svc.AddToCart(item("1", "2026-09-01", "2026-09-05", 2, 19960))
	if err := svc.ClearCart(); err != nil {
		t.Fatalf("ClearCart: %v", err)
	}
	if svc.CartCount() != 0 {
		t.Fatalf("count = %d after clear", svc.CartCount())
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state != nil {
		t.Fatalf("persisted cart should be gone, got %+v", state)
	}
}

func TestCartReloadsPersistedState(t *testing.T) {
	store := localstore.NewMemoryStore()

	first := NewCartService(store)
	first.AddToCart(item("1", "2026-09-01", "2026-09-05", 2, 19960))

	second := NewCartService(store)
	if second.CartCount() != 1 {
		t.Fatalf("reloaded count = %d, want 1", second.CartCount())
	}
	if got := second.Items()[0]; got.ID != "1" || got.Price != 19960 {
		t.Fatalf("reloaded item = %+v", got)
	}
}

type corruptStore struct {
	localstore.CartStore
	cleared bool
}

func (s *corruptStore) Load() (*models.CartState, error) {
	return nil, errors.New("unexpected end of JSON input")
}

func (s *corruptStore) Clear() error {
	s.cleared = true
	return s.CartStore.Clear()
}

func TestCorruptPersistedCartIsDiscarded(t *testing.T) {
	store := &corruptStore{CartStore: localstore.NewMemoryStore()}

	svc := NewCartService(store)
	if svc.CartCount() != 0 {
		t.Fatalf("corrupt state should yield an empty cart")
	}
	if !store.cleared {
		t.Fatalf("corrupt persisted value should be cleared")
	}
}
