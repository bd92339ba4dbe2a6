package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ceylon_stays/internal/domain"
)

// BookingService turns a complete booking intent into a durable booking.
type BookingService struct {
	catalog  domain.CatalogRepository
	bookings domain.BookingRepository
	cache    domain.Cache
}

func NewBookingService(catalog domain.CatalogRepository, bookings domain.BookingRepository, cache domain.Cache) *BookingService {
	return &BookingService{catalog: catalog, bookings: bookings, cache: cache}
}

type CreateBookingInput struct {
	HotelID  string `json:"hotelId"`
	RoomID   string `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
}

func (in CreateBookingInput) validate() error {
	if in.HotelID == "" || in.RoomID == "" || in.CheckIn == "" || in.CheckOut == "" {
		return domain.ErrValidation
	}
	ci, err := time.Parse(dateLayout, in.CheckIn)
	if err != nil {
		return domain.ErrValidation
	}
	co, err := time.Parse(dateLayout, in.CheckOut)
	if err != nil {
		return domain.ErrValidation
	}
	if !co.After(ci) {
		return domain.ErrValidation
	}
	if in.Adults < minAdults || in.Adults > maxAdults ||
		in.Children < minChildren || in.Children > maxChildren {
		return domain.ErrValidation
	}
	return nil
}

// Create validates the intent against the catalog, prices it with the quote
// rule, and persists it. The hotel and room must both exist and the room's
// capacity must cover the requested guests.
func (s *BookingService) Create(ctx context.Context, userID string, in CreateBookingInput) (domain.Booking, error) {
	if err := in.validate(); err != nil {
		return domain.Booking{}, err
	}
	if _, err := s.catalog.GetHotel(ctx, in.HotelID); err != nil {
		return domain.Booking{}, err
	}
	room, err := s.catalog.GetRoom(ctx, in.RoomID)
	if err != nil {
		return domain.Booking{}, err
	}
	if in.Adults > room.Capacity.Adults || in.Children > room.Capacity.Children {
		return domain.Booking{}, domain.ErrValidation
	}

	q := Quote(&room)
	b := domain.Booking{
		ID:        uuid.NewString(),
		UserID:    userID,
		HotelID:   in.HotelID,
		RoomID:    in.RoomID,
		CheckIn:   in.CheckIn,
		CheckOut:  in.CheckOut,
		Adults:    in.Adults,
		Children:  in.Children,
		Price:     q.Price,
		Tax:       q.Tax,
		Total:     q.Total,
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.bookings.CreateBooking(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, "bookings:"+userID)
	}
	return b, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	return s.bookings.ListBookingsByUser(ctx, userID)
}
