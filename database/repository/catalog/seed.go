package catalogRepo

import "airlace/models"

// SeedProperties returns the demo catalog. Order is significant: search
// results preserve it.
func SeedProperties() []models.Property {
	return []models.Property{
		{
			ID:          "1",
			Title:       "Hillside Cottage with Valley View",
			Description: "Enjoy panoramic views of the Khasi Hills from this charming cottage nestled in the clouds.",
			Location:    "Shillong, Meghalaya",
			Price:       4990,
			Rating:      4.92,
			ImageURL:    "https://images.unsplash.com/photo-1482938289607-e9573fc25ebb",
			IsNew:       true,
			IsFeatured:  true,
			Amenities:   []string{"Wifi", "Kitchen", "Mountain View", "Fireplace"},
			MaxGuests:   2,
			Bedrooms:    1,
			Beds:        1,
			Baths:       1,
			Region:      "northeast",
		},
		{
			ID:          "2",
			Title:       "Riverside Eco Retreat",
			Description: "Sustainable bamboo cottage set beside the crystal clear waters of the Umngot River.",
			Location:    "Dawki, Meghalaya",
			Price:       3890,
			Rating:      4.96,
			ImageURL:    "https://images.unsplash.com/photo-1469474968028-56623f02e42e",
			IsFeatured:  true,
			Amenities:   []string{"Wifi", "Riverfront", "Eco-friendly", "Breakfast"},
			MaxGuests:   4,
			Bedrooms:    2,
			Beds:        2,
			Baths:       1,
			Region:      "northeast",
		},
		{
			ID:          "3",
			Title:       "Tea Estate Bungalow",
			Description: "Colonial-era heritage bungalow surrounded by lush tea plantations with stunning sunrise views.",
			Location:    "Dibrugarh, Assam",
			Price:       5990,
			Rating:      4.88,
			ImageURL:    "https://images.unsplash.com/photo-1513836279014-a89f7a76ae86",
			IsNew:       true,
			Amenities:   []string{"Wifi", "Kitchen", "Garden", "Tea Tour"},
			MaxGuests:   6,
			Bedrooms:    3,
			Beds:        4,
			Baths:       2,
			Region:      "northeast",
		},
		{
			ID:          "4",
			Title:       "Misty Mountain Lodge",
			Description: "Traditional wooden homestay with sweeping views of the Eastern Himalayas and Buddhist monasteries.",
			Location:    "Tawang, Arunachal Pradesh",
			Price:       4590,
			Rating:      4.91,
			ImageURL:    "https://images.unsplash.com/photo-1472396961693-142e6e269027",
			IsFeatured:  true,
			Amenities:   []string{"Wifi", "Kitchen", "Mountain View", "Cultural Tours"},
			MaxGuests:   3,
			Bedrooms:    1,
			Beds:        2,
			Baths:       1,
			Region:      "northeast",
		},
		{
			ID:          "5",
			Title:       "Floating Lake Cottage",
			Description: "Unique stilt house on the famous Loktak Lake with views of the floating phumdis (islands).",
			Location:    "Moirang, Manipur",
			Price:       3590,
			Rating:      4.95,
			ImageURL:    "https://images.unsplash.com/photo-1509316975850-ff9c5deb0cd9",
			IsNew:       true,
			IsFeatured:  true,
			Amenities:   []string{"Lake View", "Fishing", "Boat Tour", "Local Cuisine"},
			MaxGuests:   2,
			Bedrooms:    1,
			Beds:        1,
			Baths:       1,
			Region:      "northeast",
		},
		{
			ID:          "6",
			Title:       "Heritage Tribal Longhouse",
			Description: "Experience authentic Naga tribal living in this modernized traditional longhouse with cultural activities.",
			Location:    "Kohima, Nagaland",
			Price:       4290,
			Rating:      4.87,
			ImageURL:    "https://images.unsplash.com/photo-1482938289607-e9573fc25ebb",
			Amenities:   []string{"Cultural Experience", "Home Cooking", "Guided Treks", "Bonfire"},
			MaxGuests:   8,
			Bedrooms:    3,
			Beds:        6,
			Baths:       2,
			Region:      "northeast",
		},
		{
			ID:          "7",
			Title:       "Beachfront Villa in Goa",
			Description: "Luxurious villa with private access to Anjuna Beach, featuring Portuguese-inspired architecture.",
			Location:    "Anjuna, Goa",
			Price:       12990,
			Rating:      4.93,
			ImageURL:    "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4",
			IsFeatured:  true,
			Amenities:   []string{"Beach Access", "Swimming Pool", "Air Conditioning", "Chef Service", "beaches", "Beachfront"},
			MaxGuests:   8,
			Bedrooms:    4,
			Beds:        5,
			Baths:       3,
			Region:      "west",
		},
		{
			ID:          "10",
			Title:       "Cozy Beach Hut in South Goa",
			Description: "Simple but charming beach hut just steps from the tranquil shores of Palolem Beach.",
			Location:    "Palolem, Goa",
			Price:       3990,
			Rating:      4.85,
			ImageURL:    "https://images.unsplash.com/photo-1518509562904-e7ef99cdcc86",
			IsNew:       true,
			Amenities:   []string{"Beach Access", "Wifi", "Air Conditioning", "Breakfast", "beaches", "Beachfront"},
			MaxGuests:   2,
			Bedrooms:    1,
			Beds:        1,
			Baths:       1,
			Region:      "west",
		},
		{
			ID:          "11",
			Title:       "Colonial Portuguese Villa",
			Description: "Restored Portuguese mansion with antique furniture, large garden, and swimming pool.",
			Location:    "Fontainhas, Goa",
			Price:       8990,
			Rating:      4.92,
			ImageURL:    "https://images.unsplash.com/photo-1542321993-8fc36217e26d",
			Amenities:   []string{"Swimming Pool", "Garden", "Heritage", "heritage", "Air Conditioning", "Chef Available"},
			MaxGuests:   10,
			Bedrooms:    5,
			Beds:        6,
			Baths:       4,
			Region:      "west",
		},
		{
			ID:          "8",
			Title:       "Houseboat on Kerala Backwaters",
			Description: "Traditional Kerala houseboat (kettuvallam) offering serene cruises through the picturesque backwaters.",
			Location:    "Alleppey, Kerala",
			Price:       7990,
			Rating:      4.97,
			ImageURL:    "https://images.unsplash.com/photo-1623691774023-4d14f2bb7e69",
			IsNew:       true,
			IsFeatured:  true,
			Amenities:   []string{"Full Board Meals", "Guided Tour", "Sunset Deck", "Air Conditioning"},
			MaxGuests:   6,
			Bedrooms:    3,
			Beds:        3,
			Baths:       3,
			Region:      "south",
		},
		{
			ID:          "9",
			Title:       "Heritage Haveli in Rajasthan",
			Description: "Restored 19th-century haveli with intricate jaali work, traditional courtyard, and royal Rajasthani hospitality.",
			Location:    "Jaipur, Rajasthan",
			Price:       8490,
			Rating:      4.89,
			ImageURL:    "https://images.unsplash.com/photo-1566552881560-0be862a7c445",
			IsFeatured:  true,
			Amenities:   []string{"Heritage Architecture", "Rooftop Restaurant", "Cultural Shows", "City Tours"},
			MaxGuests:   12,
			Bedrooms:    6,
			Beds:        8,
			Baths:       6,
			Region:      "north",
		},
	}
}
