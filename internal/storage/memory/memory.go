// Package memory is an in-process store backing development mode and tests.
// The catalog it serves is the seeded one; users and bookings are mutable
// behind an RWMutex.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"ceylon_stays/internal/domain"
)

type Store struct {
	mu       sync.RWMutex
	hotels   []domain.Hotel
	rooms    []domain.Room
	reviews  []domain.Review
	users    map[string]domain.User // keyed by id
	bookings []domain.Booking
}

// New returns an empty store. Seed it with Seed() or the Upsert methods.
func New() *Store {
	return &Store{users: map[string]domain.User{}}
}

// Seed replaces the catalog content.
func (s *Store) Seed(hotels []domain.Hotel, rooms []domain.Room, reviews []domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hotels = append([]domain.Hotel(nil), hotels...)
	s.rooms = append([]domain.Room(nil), rooms...)
	s.reviews = append([]domain.Review(nil), reviews...)
}

// ---- domain.CatalogRepository ----

func (s *Store) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.hotels {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.Hotel{}, domain.ErrNotFound
}

func (s *Store) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Hotel(nil), s.hotels...), nil
}

func (s *Store) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}

// ListRooms returns the hotel's room inventory. Rooms without a hotel
// association belong to the shared inventory every hotel offers.
func (s *Store) ListRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		if r.HotelID == "" || r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) ListReviews(ctx context.Context, hotelID string) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Review
	for _, rv := range s.reviews {
		if rv.HotelID == hotelID {
			out = append(out, rv)
		}
	}
	sortReviews(out)
	return out, nil
}

func (s *Store) ListRecentReviews(ctx context.Context, limit int) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]domain.Review(nil), s.reviews...)
	sortReviews(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func sortReviews(rs []domain.Review) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].CreatedAt.After(rs[j].CreatedAt) })
}

func (s *Store) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	h.Rating = domain.ClampRating(h.Rating)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.hotels {
		if s.hotels[i].ID == h.ID {
			s.hotels[i] = h
			return nil
		}
	}
	s.hotels = append(s.hotels, h)
	return nil
}

func (s *Store) UpsertRoom(ctx context.Context, r domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == r.ID {
			s.rooms[i] = r
			return nil
		}
	}
	s.rooms = append(s.rooms, r)
	return nil
}

func (s *Store) UpsertReview(ctx context.Context, rv domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reviews {
		if s.reviews[i].ID == rv.ID {
			s.reviews[i] = rv
			return nil
		}
	}
	s.reviews = append(s.reviews, rv)
	return nil
}

// ---- domain.UserRepository ----

func (s *Store) CreateUser(ctx context.Context, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailTaken
		}
	}
	s.users[u.ID] = u
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (s *Store) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return domain.User{}, domain.ErrNotFound
}

// ---- domain.BookingRepository ----

func (s *Store) CreateBooking(ctx context.Context, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *Store) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}
