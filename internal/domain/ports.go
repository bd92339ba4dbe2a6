package domain

import "context"

type CatalogRepository interface {
	// Read paths
	GetHotel(ctx context.Context, id string) (Hotel, error)
	ListHotels(ctx context.Context) ([]Hotel, error)
	GetRoom(ctx context.Context, id string) (Room, error)
	ListRooms(ctx context.Context, hotelID string) ([]Room, error)
	ListReviews(ctx context.Context, hotelID string) ([]Review, error)
	ListRecentReviews(ctx context.Context, limit int) ([]Review, error)

	// Write paths (seeder)
	UpsertHotel(ctx context.Context, h Hotel) error
	UpsertRoom(ctx context.Context, r Room) error
	UpsertReview(ctx context.Context, rv Review) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, u User) error
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, b Booking) error
	ListBookingsByUser(ctx context.Context, userID string) ([]Booking, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// TokenIssuer abstracts session token issue/verify so the app layer stays
// free of the JWT library.
type TokenIssuer interface {
	Issue(userID, email, role string) (string, error)
	Verify(token string) (TokenClaims, error)
}

type TokenClaims struct {
	UserID string
	Email  string
	Role   string
}
