package localstore

import (
	"os"
	"path/filepath"
	"testing"

	"airlace/models"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	store, err := NewFileStore(filepath.Join(t.TempDir(), "cart.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store
}

func TestFileStoreLoadBeforeSaveReturnsNil(t *testing.T) {
	store := newFileStore(t)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state != nil {
		t.Fatalf("expected nil state, got %+v", state)
	}
}

func TestFileStoreSaveLoadRoundTrip(t *testing.T) {
	store := newFileStore(t)

	in := models.CartState{Items: []models.CartItem{{
		ID:       "1",
		Property: models.Property{ID: "1", Title: "Hillside Cottage", Price: 4990},
		CheckIn:  "2026-09-01",
		CheckOut: "2026-09-05",
		Guests:   2,
		Price:    19960,
	}}}
	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out == nil || len(out.Items) != 1 {
		t.Fatalf("Load = %+v", out)
	}
	if out.Items[0].Price != 19960 || out.Items[0].Property.Title != "Hillside Cottage" {
		t.Fatalf("item = %+v", out.Items[0])
	}
}

func TestFileStoreCorruptFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cart.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatal("expected a parse error for corrupt state")
	}

	// Clear recovers: the next load starts empty.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	state, err := store.Load()
	if err != nil || state != nil {
		t.Fatalf("after clear: state=%+v err=%v", state, err)
	}
}

func TestFileStoreRecentSearches(t *testing.T) {
	store := newFileStore(t)

	searches := []models.RecentSearch{
		{Term: "goa", SearchedAt: "2026-08-30T10:00:00Z"},
		{Term: "kerala", SearchedAt: "2026-08-29T10:00:00Z"},
	}
	if err := store.SaveRecent(searches); err != nil {
		t.Fatalf("SaveRecent: %v", err)
	}

	out, err := store.LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent: %v", err)
	}
	if len(out) != 2 || out[0].Term != "goa" {
		t.Fatalf("LoadRecent = %+v", out)
	}
}

func TestFileStoreLastOrder(t *testing.T) {
	store := newFileStore(t)

	if id, err := store.LastOrder(); err != nil || id != "" {
		t.Fatalf("empty store: id=%q err=%v", id, err)
	}
	if err := store.SaveLastOrder("AIR1234567"); err != nil {
		t.Fatalf("SaveLastOrder: %v", err)
	}
	id, err := store.LastOrder()
	if err != nil {
		t.Fatalf("LastOrder: %v", err)
	}
	if id != "AIR1234567" {
		t.Fatalf("LastOrder = %q", id)
	}
}
