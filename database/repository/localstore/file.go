package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"airlace/models"
)

// FileStore persists each durable key as a JSON file next to the
// configured cart path. Writes go through a temp file and rename so a
// crash mid-write never leaves a truncated record.
type FileStore struct {
	cartPath   string
	recentPath string
	orderPath  string
}

// NewFileStore creates a FileStore rooted at the given cart file path.
// The directory is created if missing.
func NewFileStore(cartPath string) (*FileStore, error) {
	dir := filepath.Dir(cartPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &FileStore{
		cartPath:   cartPath,
		recentPath: filepath.Join(dir, "recent_searches.json"),
		orderPath:  filepath.Join(dir, "last_order.json"),
	}, nil
}

func (s *FileStore) Load() (*models.CartState, error) {
	data, err := os.ReadFile(s.cartPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}
	var state models.CartState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse cart file: %w", err)
	}
	return &state, nil
}

func (s *FileStore) Save(state models.CartState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	return s.writeFile(s.cartPath, data)
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.cartPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear cart file: %w", err)
	}
	return nil
}

func (s *FileStore) LoadRecent() ([]models.RecentSearch, error) {
	data, err := os.ReadFile(s.recentPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read recent searches file: %w", err)
	}
	var searches []models.RecentSearch
	if err := json.Unmarshal(data, &searches); err != nil {
		return nil, fmt.Errorf("failed to parse recent searches file: %w", err)
	}
	return searches, nil
}

func (s *FileStore) SaveRecent(searches []models.RecentSearch) error {
	data, err := json.Marshal(searches)
	if err != nil {
		return fmt.Errorf("failed to marshal recent searches: %w", err)
	}
	return s.writeFile(s.recentPath, data)
}

func (s *FileStore) SaveLastOrder(confirmationID string) error {
	data, err := json.Marshal(confirmationID)
	if err != nil {
		return fmt.Errorf("failed to marshal last order: %w", err)
	}
	return s.writeFile(s.orderPath, data)
}

func (s *FileStore) LastOrder() (string, error) {
	data, err := os.ReadFile(s.orderPath)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read last order file: %w", err)
	}
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return "", fmt.Errorf("failed to parse last order file: %w", err)
	}
	return id, nil
}

func (s *FileStore) writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
