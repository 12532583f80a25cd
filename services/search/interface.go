package search

import "airlace/models"

// SearchService narrows the catalog by a query and tracks recent search
// selections.
type SearchService interface {
	Search(q models.SearchQuery) ([]models.Property, error)
	// SearchDebounced schedules a search after the configured quiet window,
	// superseding any pending one. Results for a stale query are never
	// delivered.
	SearchDebounced(q models.SearchQuery, deliver func([]models.Property, error))
	RecentSearches() ([]models.RecentSearch, error)
	RememberSearch(term string) error
}
