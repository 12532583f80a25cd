package models

// SearchQuery narrows the catalog. Zero values mean "no constraint":
// an empty Term matches everything, an empty Tags set matches everything,
// and a zero MaxPrice is treated as unbounded.
type SearchQuery struct {
	Term     string   `json:"term"`
	MinPrice float64  `json:"minPrice"`
	MaxPrice float64  `json:"maxPrice"`
	Tags     []string `json:"tags"`
}

// Unbounded reports whether the price range places no upper constraint.
func (q SearchQuery) Unbounded() bool {
	return q.MaxPrice == 0
}

// RecentSearch is one remembered search selection, most recent first in
// the persisted list.
type RecentSearch struct {
	Term       string `json:"term"`
	SearchedAt string `json:"searchedAt"` // RFC 3339
}
