package domain

import "time"

const BookingStatusConfirmed = "confirmed"

// Booking is a durable, confirmed reservation. Price/Tax/Total are captured
// at creation time so later room price changes don't rewrite history.
type Booking struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	HotelID   string    `json:"hotelId"`
	RoomID    string    `json:"roomId"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  string    `json:"checkOut"`
	Adults    int       `json:"adults"`
	Children  int       `json:"children"`
	Price     int       `json:"price"`
	Tax       int       `json:"tax"`
	Total     int       `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type Review struct {
	ID        string    `json:"id"`
	HotelID   string    `json:"hotelId"`
	Author    string    `json:"author"`
	Rating    float64   `json:"rating"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
