package search

import (
	"testing"

	"airlace/models"
)

func testCatalog() []models.Property {
	return []models.Property{
		{ID: "1", Title: "Floating Lake Cottage", Location: "Moirang, Manipur", Price: 3590, Region: "northeast", Amenities: []string{"Lake View", "Fishing"}},
		{ID: "2", Title: "Riverside Eco Retreat", Location: "Dawki, Meghalaya", Price: 3890, Region: "northeast", Amenities: []string{"Wifi", "Riverfront"}},
		{ID: "3", Title: "Hillside Cottage with Valley View", Location: "Shillong, Meghalaya", Price: 4990, Region: "northeast", Amenities: []string{"Wifi", "Kitchen"}},
		{ID: "4", Title: "Beachfront Villa in Goa", Location: "Anjuna, Goa", Price: 12990, Region: "west", Amenities: []string{"Beach Access", "Swimming Pool"}},
	}
}

func ids(properties []models.Property) []string {
	out := make([]string, len(properties))
	for i, p := range properties {
		out[i] = p.ID
	}
	return out
}

func assertIDs(t *testing.T, got []models.Property, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
	}
}

func TestFilterEmptyQueryReturnsCatalogInOrder(t *testing.T) {
	got := Filter(testCatalog(), models.SearchQuery{})
	assertIDs(t, got, "1", "2", "3", "4")
}

func TestFilterEmptyCatalog(t *testing.T) {
	got := Filter(nil, models.SearchQuery{Term: "goa"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
}

func TestFilterTermMatchesTitleOrLocation(t *testing.T) {
	catalog := testCatalog()

	// Title substring, case-insensitive.
	assertIDs(t, Filter(catalog, models.SearchQuery{Term: "cottage"}), "1", "3")

	// Location substring.
	assertIDs(t, Filter(catalog, models.SearchQuery{Term: "meghalaya"}), "2", "3")

	// No match is an empty result, not an error.
	assertIDs(t, Filter(catalog, models.SearchQuery{Term: "antarctica"}))
}

func TestFilterPriceRangeInclusive(t *testing.T) {
	catalog := testCatalog()

	// Prices 3590, 3890, 4990, 12990; [3000, 5000] keeps the first three.
	got := Filter(catalog, models.SearchQuery{MinPrice: 3000, MaxPrice: 5000})
	assertIDs(t, got, "1", "2", "3")

	// Boundary prices are included on both ends.
	assertIDs(t, Filter(catalog, models.SearchQuery{MinPrice: 3590, MaxPrice: 3590}), "1")
	assertIDs(t, Filter(catalog, models.SearchQuery{MinPrice: 4990, MaxPrice: 12990}), "3", "4")

	for _, p := range got {
		if p.Price < 3000 || p.Price > 5000 {
			t.Fatalf("property %s price %v outside range", p.ID, p.Price)
		}
	}
}

func TestFilterInvertedRangeMatchesNothing(t *testing.T) {
	got := Filter(testCatalog(), models.SearchQuery{MinPrice: 5000, MaxPrice: 3000})
	if len(got) != 0 {
		t.Fatalf("min > max should match nothing, got %v", ids(got))
	}
}

func TestFilterZeroMaxPriceIsUnbounded(t *testing.T) {
	got := Filter(testCatalog(), models.SearchQuery{MinPrice: 10000})
	assertIDs(t, got, "4")
}

func TestFilterTagsAreORed(t *testing.T) {
	catalog := testCatalog()

	// One amenity tag, case-insensitive equality.
	assertIDs(t, Filter(catalog, models.SearchQuery{Tags: []string{"wifi"}}), "2", "3")

	// Region tag.
	assertIDs(t, Filter(catalog, models.SearchQuery{Tags: []string{"west"}}), "4")

	// Location substring tag.
	assertIDs(t, Filter(catalog, models.SearchQuery{Tags: []string{"goa"}}), "4")

	// OR across tags: a property matching any selected tag passes.
	assertIDs(t, Filter(catalog, models.SearchQuery{Tags: []string{"fishing", "kitchen"}}), "1", "3")
}

func TestFilterCombinesAllClauses(t *testing.T) {
	got := Filter(testCatalog(), models.SearchQuery{
		Term:     "cottage",
		MinPrice: 4000,
		MaxPrice: 6000,
		Tags:     []string{"Wifi"},
	})
	assertIDs(t, got, "3")
}
