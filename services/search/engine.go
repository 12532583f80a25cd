package search

import (
	"strings"

	"airlace/models"
)

// Filter narrows the catalog to properties matching the query. The result
// preserves catalog order; no re-sorting happens here. A range with
// min > max simply matches nothing — it is not an error.
func Filter(catalog []models.Property, q models.SearchQuery) []models.Property {
	results := make([]models.Property, 0, len(catalog))
	for _, p := range catalog {
		if Matches(p, q) {
			results = append(results, p)
		}
	}
	return results
}

// Matches reports whether one property satisfies the query: the search
// term (if any) must be a substring of title or location, the price must
// fall inside the inclusive range, and at least one selected tag (if any)
// must match an amenity, the region, or the location.
func Matches(p models.Property, q models.SearchQuery) bool {
	return matchesTerm(p, q.Term) && matchesPrice(p, q) && matchesTags(p, q.Tags)
}

func matchesTerm(p models.Property, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Location), needle)
}

func matchesPrice(p models.Property, q models.SearchQuery) bool {
	if p.Price < q.MinPrice {
		return false
	}
	if q.Unbounded() {
		return true
	}
	return p.Price <= q.MaxPrice
}

// matchesTags is an OR across the selected tags: amenities and region
// match by case-insensitive equality, the location by substring.
func matchesTags(p models.Property, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	location := strings.ToLower(p.Location)
	for _, tag := range tags {
		needle := strings.ToLower(tag)
		if strings.EqualFold(p.Region, tag) {
			return true
		}
		if strings.Contains(location, needle) {
			return true
		}
		for _, amenity := range p.Amenities {
			if strings.EqualFold(amenity, tag) {
				return true
			}
		}
	}
	return false
}
