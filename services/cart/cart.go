package cart

import (
	"fmt"
	"sync"

	"airlace/database/repository/localstore"
	"airlace/models"
	"airlace/utils"

	"go.uber.org/zap"
)

// DefaultCartService implements CartService over a persistence port.
// Mutations serialize the whole cart synchronously: at-least-once,
// last-writer-wins, no transactional guarantee across processes.
type DefaultCartService struct {
	Store localstore.CartStore

	mu    sync.Mutex
	items []models.CartItem
}

// NewCartService creates a cart service and loads any persisted cart. A
// corrupt persisted value is discarded and the cart starts empty; the
// error is logged, never propagated.
func NewCartService(store localstore.CartStore) *DefaultCartService {
	svc := &DefaultCartService{Store: store}

	state, err := store.Load()
	if err != nil {
		utils.GetLogger().Warn("discarding corrupt persisted cart", zap.Error(err))
		if clearErr := store.Clear(); clearErr != nil {
			utils.GetLogger().Warn("failed to clear corrupt cart", zap.Error(clearErr))
		}
		return svc
	}
	if state != nil {
		svc.items = state.Items
	}
	return svc
}

// Items returns a copy of the current cart contents in insertion order.
func (s *DefaultCartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartItem(nil), s.items...)
}

func (s *DefaultCartService) AddToCart(item models.CartItem) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := false
	for i := range s.items {
		if s.items[i].SameStay(item) {
			// Same stay already in the cart: replace in place so the
			// entry keeps its position.
			s.items[i] = item
			updated = true
			break
		}
	}
	if !updated {
		s.items = append(s.items, item)
	}

	if err := s.persist(); err != nil {
		return updated, err
	}
	return updated, nil
}

func (s *DefaultCartService) RemoveFromCart(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept

	return s.persist()
}

func (s *DefaultCartService) ClearCart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.Store.Clear(); err != nil {
		return NewCartError(fmt.Sprintf("failed to clear persisted cart: %v", err))
	}
	return nil
}

// CartTotal sums the price captured on each item at add time. Prices are
// never recomputed from dates or current nightly rates.
func (s *DefaultCartService) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Price
	}
	return total
}

// CartCount returns the number of cart entries, not guests or nights.
func (s *DefaultCartService) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// persist writes the full cart. Callers hold the lock.
func (s *DefaultCartService) persist() error {
	state := models.CartState{Items: append([]models.CartItem(nil), s.items...)}
	if err := s.Store.Save(state); err != nil {
		return NewCartError(fmt.Sprintf("failed to persist cart: %v", err))
	}
	return nil
}
