package catalogRepo

import "airlace/models"

// CatalogRepository provides read-only access to the property catalog.
// Implementations must preserve catalog order in All: the filter engine
// relies on it as the display order.
type CatalogRepository interface {
	All() ([]models.Property, error)
	GetByID(id string) (*models.Property, error)
	Featured() ([]models.Property, error)
	New() ([]models.Property, error)
	ByRegion(region string) ([]models.Property, error)
}
