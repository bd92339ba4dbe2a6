package shared

import (
	"time"

	"ceylon_stays/internal/domain"
)

// SeedHotels is the development catalog. IDs are stable; tests and the
// memory store rely on them.
func SeedHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:          "1",
			Name:        "Cinnamon Grand Colombo",
			Location:    "Colombo",
			Rating:      4.8,
			Price:       150,
			Description: "Luxury hotel in the heart of Colombo with stunning views of the Indian Ocean.",
			Image:       "https://images.unsplash.com/photo-1566073771259-6a8506099945",
		},
		{
			ID:          "2",
			Name:        "Amaya Hills",
			Location:    "Kandy",
			Rating:      4.6,
			Price:       120,
			Description: "Nestled in the hills of Kandy, offering a serene escape with cultural experiences.",
			Image:       "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4",
		},
		{
			ID:          "3",
			Name:        "Jetwing Lighthouse",
			Location:    "Galle",
			Rating:      4.7,
			Price:       180,
			Description: "Colonial-style beachfront hotel with stunning views of the Indian Ocean.",
			Image:       "https://images.unsplash.com/photo-1582719508461-905c673771fd",
		},
		{
			ID:          "4",
			Name:        "Heritance Tea Factory",
			Location:    "Nuwara Eliya",
			Rating:      4.5,
			Price:       140,
			Description: "Converted tea factory in the heart of Sri Lanka's tea country with panoramic mountain views.",
			Image:       "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb",
		},
	}
}

// SeedRooms is the shared room inventory. Every hotel currently offers the
// same three room types, so the rooms carry no hotel association; stores
// return this set for any hotel id.
func SeedRooms() []domain.Room {
	return []domain.Room{
		{
			ID:        "101",
			Name:      "Deluxe Room",
			Price:     150,
			Capacity:  domain.Capacity{Adults: 2, Children: 1},
			Size:      35,
			BedType:   "King",
			Amenities: []string{"Free WiFi", "Air conditioning", "Flat-screen TV", "Minibar", "Coffee machine"},
			Image:     "https://images.unsplash.com/photo-1590490360182-c33d57733427",
		},
		{
			ID:        "102",
			Name:      "Superior Room",
			Price:     200,
			Capacity:  domain.Capacity{Adults: 2, Children: 2},
			Size:      40,
			BedType:   "Queen",
			Amenities: []string{"Free WiFi", "Air conditioning", "Flat-screen TV", "Minibar", "Coffee machine", "Balcony"},
			Image:     "https://images.unsplash.com/photo-1566665797739-1674de7a421a",
		},
		{
			ID:        "103",
			Name:      "Suite",
			Price:     300,
			Capacity:  domain.Capacity{Adults: 4, Children: 2},
			Size:      60,
			BedType:   "King + Sofa Bed",
			Amenities: []string{"Free WiFi", "Air conditioning", "Flat-screen TV", "Minibar", "Coffee machine", "Balcony", "Living area", "Bathtub"},
			Image:     "https://images.unsplash.com/photo-1576675784201-0e142b423952",
		},
	}
}

// SeedReviews gives each hotel a couple of reviews for the listing endpoint.
func SeedReviews() []domain.Review {
	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	return []domain.Review{
		{ID: "r1", HotelID: "1", Author: "Ishara", Rating: 5.0, Title: "Perfect stay", Text: "Great pool and service.", CreatedAt: base},
		{ID: "r2", HotelID: "1", Author: "Marco", Rating: 4.5, Title: "Lovely views", Text: "Ocean view rooms are worth it.", CreatedAt: base.AddDate(0, 0, 3)},
		{ID: "r3", HotelID: "2", Author: "Priya", Rating: 4.5, Title: "Peaceful", Text: "Quiet hills, kind staff.", CreatedAt: base.AddDate(0, 0, 5)},
		{ID: "r4", HotelID: "3", Author: "Tom", Rating: 4.8, Title: "Beachfront gem", Text: "Colonial charm, superb breakfast.", CreatedAt: base.AddDate(0, 0, 7)},
		{ID: "r5", HotelID: "4", Author: "Sanduni", Rating: 4.2, Title: "Unique", Text: "Sleeping in a tea factory is special.", CreatedAt: base.AddDate(0, 0, 9)},
	}
}
