package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"airlace/models"
	"airlace/services/search"
	"airlace/utils"
)

// SearchHandler serves the filtered catalog and the recent-search list.
type SearchHandler struct {
	Search search.SearchService
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(searchSvc search.SearchService) *SearchHandler {
	return &SearchHandler{Search: searchSvc}
}

// ListPropertiesHandler returns the catalog narrowed by the query params
// q, minPrice, maxPrice and tags (comma-separated). With no params it
// returns the full catalog in order. An empty match set is a normal
// response with a no-results message, never an error.
func (h *SearchHandler) ListPropertiesHandler(c *gin.Context) {
	query, err := parseSearchQuery(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search query", err.Error())
		return
	}

	results, err := h.Search.Search(query)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "search failed", err.Error())
		return
	}

	resp := gin.H{
		"count":      len(results),
		"properties": results,
	}
	if len(results) == 0 {
		resp["message"] = "No properties found matching your criteria"
	}
	c.JSON(http.StatusOK, resp)
}

// GetRecentSearchesHandler returns the remembered search selections,
// most recent first.
func (h *SearchHandler) GetRecentSearchesHandler(c *gin.Context) {
	searches, err := h.Search.RecentSearches()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load recent searches", err.Error())
		return
	}
	if searches == nil {
		searches = []models.RecentSearch{}
	}
	c.JSON(http.StatusOK, gin.H{"searches": searches})
}

// RememberSearchHandler records a search selection.
func (h *SearchHandler) RememberSearchHandler(c *gin.Context) {
	var input struct {
		Term string `json:"term"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Search.RememberSearch(input.Term); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save search", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseSearchQuery(c *gin.Context) (models.SearchQuery, error) {
	query := models.SearchQuery{Term: c.Query("q")}

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return query, err
		}
		query.MinPrice = v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return query, err
		}
		query.MaxPrice = v
	}
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				query.Tags = append(query.Tags, tag)
			}
		}
	}
	return query, nil
}
