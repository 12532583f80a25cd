package catalogRepo

import (
	"sync"

	"airlace/models"
)

// MemoryCatalogRepo serves the catalog from memory. Records are loaded
// once and never mutated, so reads only copy slices.
type MemoryCatalogRepo struct {
	properties []models.Property
	byID       map[string]*models.Property
	mu         sync.RWMutex
}

// NewMemoryCatalogRepo creates a catalog repo over the given records,
// preserving their order.
func NewMemoryCatalogRepo(properties []models.Property) *MemoryCatalogRepo {
	repo := &MemoryCatalogRepo{
		properties: properties,
		byID:       make(map[string]*models.Property, len(properties)),
	}
	for i := range properties {
		repo.byID[properties[i].ID] = &repo.properties[i]
	}
	return repo
}

// NewSeededCatalogRepo creates a catalog repo over the built-in demo catalog.
func NewSeededCatalogRepo() *MemoryCatalogRepo {
	return NewMemoryCatalogRepo(SeedProperties())
}

func (r *MemoryCatalogRepo) All() ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Property, len(r.properties))
	copy(out, r.properties)
	return out, nil
}

func (r *MemoryCatalogRepo) GetByID(id string) (*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prop, ok := r.byID[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	cp := *prop
	return &cp, nil
}

func (r *MemoryCatalogRepo) Featured() ([]models.Property, error) {
	return r.filter(func(p models.Property) bool { return p.IsFeatured })
}

func (r *MemoryCatalogRepo) New() ([]models.Property, error) {
	return r.filter(func(p models.Property) bool { return p.IsNew })
}

func (r *MemoryCatalogRepo) ByRegion(region string) ([]models.Property, error) {
	return r.filter(func(p models.Property) bool { return p.Region == region })
}

func (r *MemoryCatalogRepo) filter(keep func(models.Property) bool) ([]models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Property
	for _, p := range r.properties {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
