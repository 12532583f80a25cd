package models

// Property represents a bookable accommodation listing. Records are
// externally supplied at catalog load time and never mutated.
type Property struct {
	ID          string   `bson:"id" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Location    string   `bson:"location" json:"location"`
	Price       float64  `bson:"price" json:"price"` // nightly price, currency-agnostic
	Rating      float64  `bson:"rating" json:"rating"`
	ImageURL    string   `bson:"image_url" json:"imageUrl"`
	IsNew       bool     `bson:"is_new,omitempty" json:"isNew,omitempty"`
	IsFeatured  bool     `bson:"is_featured,omitempty" json:"isFeatured,omitempty"`
	Amenities   []string `bson:"amenities" json:"amenities"`
	MaxGuests   int      `bson:"max_guests" json:"maxGuests"`
	Bedrooms    int      `bson:"bedrooms" json:"bedrooms"`
	Beds        int      `bson:"beds" json:"beds"`
	Baths       int      `bson:"baths" json:"baths"`
	Region      string   `bson:"region,omitempty" json:"region,omitempty"` // north, northeast, east, west, south, central
}
