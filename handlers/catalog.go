package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	catalogRepo "airlace/database/repository/catalog"
	"airlace/models"
	"airlace/utils"
)

// CatalogHandler serves the read-only property catalog.
type CatalogHandler struct {
	Catalog catalogRepo.CatalogRepository
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalog catalogRepo.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog}
}

// GetPropertyByIDHandler fetches one property. An unknown ID is a
// redirect-with-notice, not a server error.
func (h *CatalogHandler) GetPropertyByIDHandler(c *gin.Context) {
	id := c.Param("id")
	prop, err := h.Catalog.GetByID(id)
	if err != nil {
		var notFound *catalogRepo.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message":  "Property not found",
				"redirect": "/places",
			})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch property", err.Error())
		return
	}
	c.JSON(http.StatusOK, prop)
}

// GetFeaturedHandler lists properties flagged as featured.
func (h *CatalogHandler) GetFeaturedHandler(c *gin.Context) {
	respondList(c, h.Catalog.Featured)
}

// GetNewHandler lists properties flagged as new.
func (h *CatalogHandler) GetNewHandler(c *gin.Context) {
	respondList(c, h.Catalog.New)
}

// GetByRegionHandler lists properties in a region.
func (h *CatalogHandler) GetByRegionHandler(c *gin.Context) {
	region := c.Param("region")
	respondList(c, func() ([]models.Property, error) {
		return h.Catalog.ByRegion(region)
	})
}

func respondList(c *gin.Context, fetch func() ([]models.Property, error)) {
	properties, err := fetch()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch properties", err.Error())
		return
	}
	if properties == nil {
		properties = []models.Property{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":      len(properties),
		"properties": properties,
	})
}
