package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"ceylon_stays/internal/domain"
)

func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func strOf(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// duplicateKey reports a MySQL 1062 unique-constraint violation.
func duplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// ---- catalog writes ----

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	_, err := r.db.ExecContext(ctx, upsertHotelSQL,
		h.ID, h.Name, h.Location, domain.ClampRating(h.Rating), h.Price, h.Description, h.Image)
	return err
}

func (r *Repo) UpsertRoom(ctx context.Context, rm domain.Room) error {
	amen, _ := json.Marshal(rm.Amenities)
	_, err := r.db.ExecContext(ctx, upsertRoomSQL,
		rm.ID, nullStr(rm.HotelID), rm.Name, rm.Price,
		rm.Capacity.Adults, rm.Capacity.Children,
		rm.Size, rm.BedType, string(amen), rm.Image)
	return err
}

func (r *Repo) UpsertReview(ctx context.Context, rv domain.Review) error {
	var created any
	if !rv.CreatedAt.IsZero() {
		created = rv.CreatedAt
	}
	_, err := r.db.ExecContext(ctx, upsertReviewSQL,
		rv.ID, rv.HotelID, rv.Author, rv.Rating, rv.Title, rv.Text, created)
	return err
}

// ---- catalog reads ----

func (r *Repo) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.QueryRowContext(ctx, getHotelSQL, id).Scan(
		&h.ID, &h.Name, &h.Location, &h.Rating, &h.Price, &h.Description, &h.Image)
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Hotel{}, err
	}
	h.Rating = domain.ClampRating(h.Rating)
	return h, nil
}

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Location, &h.Rating, &h.Price, &h.Description, &h.Image); err != nil {
			return nil, err
		}
		h.Rating = domain.ClampRating(h.Rating)
		out = append(out, h)
	}
	return out, rows.Err()
}

func scanRoom(scan func(...any) error) (domain.Room, error) {
	var rm domain.Room
	var hotelID sql.NullString
	var amenities []byte
	if err := scan(&rm.ID, &hotelID, &rm.Name, &rm.Price,
		&rm.Capacity.Adults, &rm.Capacity.Children,
		&rm.Size, &rm.BedType, &amenities, &rm.Image); err != nil {
		return domain.Room{}, err
	}
	rm.HotelID = strOf(hotelID)
	_ = json.Unmarshal(amenities, &rm.Amenities)
	return rm, nil
}

func (r *Repo) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	row := r.db.QueryRowContext(ctx, getRoomSQL, id)
	rm, err := scanRoom(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Room{}, domain.ErrNotFound
	}
	return rm, err
}

func (r *Repo) ListRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, listRoomsSQL, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Room
	for rows.Next() {
		rm, err := scanRoom(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) ListReviews(ctx context.Context, hotelID string) ([]domain.Review, error) {
	return r.queryReviews(ctx, listReviewsSQL, hotelID)
}

func (r *Repo) ListRecentReviews(ctx context.Context, limit int) ([]domain.Review, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.queryReviews(ctx, listRecentReviewsSQL, limit)
}

func (r *Repo) queryReviews(ctx context.Context, query string, arg any) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.HotelID, &rv.Author, &rv.Rating, &rv.Title, &rv.Text, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

// ---- users ----

func (r *Repo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID, u.FirstName, u.LastName, strings.ToLower(u.Email), u.PasswordHash, nullStr(u.Phone),
		nullStr(u.Address.Street), nullStr(u.Address.City), nullStr(u.Address.State),
		nullStr(u.Address.ZipCode), nullStr(u.Address.Country),
		u.Role, nullStr(u.ProfilePicture), u.Verified,
		u.Preferences.Currency, u.Preferences.Language, u.Preferences.Notifications,
		nullStr(u.SocialLogins.Google), nullStr(u.SocialLogins.Facebook),
		u.CreatedAt, u.UpdatedAt)
	if duplicateKey(err) {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *Repo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, getUserByEmailSQL, email))
}

func (r *Repo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, getUserByIDSQL, id))
}

func (r *Repo) scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var phone, street, city, state, zip, country, picture, google, facebook sql.NullString
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &phone,
		&street, &city, &state, &zip, &country,
		&u.Role, &picture, &u.Verified,
		&u.Preferences.Currency, &u.Preferences.Language, &u.Preferences.Notifications,
		&google, &facebook, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return domain.User{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	u.Phone = strOf(phone)
	u.Address = domain.Address{
		Street: strOf(street), City: strOf(city), State: strOf(state),
		ZipCode: strOf(zip), Country: strOf(country),
	}
	u.ProfilePicture = strOf(picture)
	u.SocialLogins = domain.SocialLogins{Google: strOf(google), Facebook: strOf(facebook)}
	return u, nil
}

// ---- bookings ----

func (r *Repo) CreateBooking(ctx context.Context, b domain.Booking) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.ID, b.UserID, b.HotelID, b.RoomID, b.CheckIn, b.CheckOut,
		b.Adults, b.Children, b.Price, b.Tax, b.Total, b.Status, b.CreatedAt)
	return err
}

func (r *Repo) ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, listBookingsByUserSQL, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.HotelID, &b.RoomID, &b.CheckIn, &b.CheckOut,
			&b.Adults, &b.Children, &b.Price, &b.Tax, &b.Total, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
