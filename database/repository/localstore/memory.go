package localstore

import (
	"sync"

	"airlace/models"
)

// MemoryStore keeps everything in process memory. Used in tests and when
// no durable backend is configured.
type MemoryStore struct {
	mu        sync.Mutex
	cart      *models.CartState
	recent    []models.RecentSearch
	lastOrder string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (*models.CartState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cart == nil {
		return nil, nil
	}
	cp := models.CartState{Items: append([]models.CartItem(nil), s.cart.Items...)}
	return &cp, nil
}

func (s *MemoryStore) Save(state models.CartState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := models.CartState{Items: append([]models.CartItem(nil), state.Items...)}
	s.cart = &cp
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	return nil
}

func (s *MemoryStore) LoadRecent() ([]models.RecentSearch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.RecentSearch(nil), s.recent...), nil
}

func (s *MemoryStore) SaveRecent(searches []models.RecentSearch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = append([]models.RecentSearch(nil), searches...)
	return nil
}

func (s *MemoryStore) SaveLastOrder(confirmationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOrder = confirmationID
	return nil
}

func (s *MemoryStore) LastOrder() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastOrder, nil
}
