package memory_test

import (
	"context"
	"testing"
	"time"

	"ceylon_stays/internal/domain"
	"ceylon_stays/internal/shared"
	"ceylon_stays/internal/storage/memory"
)

func seeded() *memory.Store {
	s := memory.New()
	s.Seed(shared.SeedHotels(), shared.SeedRooms(), shared.SeedReviews())
	return s
}

func TestSeededCatalog(t *testing.T) {
	s := seeded()
	ctx := context.Background()

	hotels, err := s.ListHotels(ctx)
	if err != nil {
		t.Fatalf("list hotels: %v", err)
	}
	if len(hotels) != 4 {
		t.Fatalf("expected 4 seeded hotels, got %d", len(hotels))
	}

	h, err := s.GetHotel(ctx, "2")
	if err != nil || h.Name != "Amaya Hills" {
		t.Fatalf("get hotel 2: %v %+v", err, h)
	}

	if _, err := s.GetHotel(ctx, "999"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// every hotel exposes the shared room inventory
	rooms, err := s.ListRooms(ctx, "3")
	if err != nil || len(rooms) != 3 {
		t.Fatalf("list rooms: %v, %d", err, len(rooms))
	}
	r, err := s.GetRoom(ctx, "102")
	if err != nil || r.Price != 200 {
		t.Fatalf("get room 102: %v %+v", err, r)
	}
}

func TestReviewsOrderedNewestFirst(t *testing.T) {
	s := seeded()
	rs, err := s.ListRecentReviews(context.Background(), 3)
	if err != nil {
		t.Fatalf("recent reviews: %v", err)
	}
	if len(rs) != 3 {
		t.Fatalf("limit not applied: %d", len(rs))
	}
	for i := 1; i < len(rs); i++ {
		if rs[i].CreatedAt.After(rs[i-1].CreatedAt) {
			t.Fatalf("reviews not newest-first at %d", i)
		}
	}
}

func TestUpsertHotelClampsRating(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	if err := s.UpsertHotel(ctx, domain.Hotel{ID: "x", Rating: 9.9}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	h, _ := s.GetHotel(ctx, "x")
	if h.Rating != 5 {
		t.Fatalf("rating not clamped: %v", h.Rating)
	}
}

func TestUserUniqueness(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	now := time.Now()

	u := domain.User{ID: "u1", Email: "a@b.com", CreatedAt: now}
	if err := s.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	dup := domain.User{ID: "u2", Email: "A@B.COM"}
	if err := s.CreateUser(ctx, dup); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	got, err := s.GetUserByEmail(ctx, "A@b.Com")
	if err != nil || got.ID != "u1" {
		t.Fatalf("case-insensitive lookup failed: %v %+v", err, got)
	}
}

func TestBookingsByUser(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	_ = s.CreateBooking(ctx, domain.Booking{ID: "b1", UserID: "u1"})
	_ = s.CreateBooking(ctx, domain.Booking{ID: "b2", UserID: "u2"})
	_ = s.CreateBooking(ctx, domain.Booking{ID: "b3", UserID: "u1"})

	got, err := s.ListBookingsByUser(ctx, "u1")
	if err != nil || len(got) != 2 {
		t.Fatalf("bookings by user: %v, %d", err, len(got))
	}
}
