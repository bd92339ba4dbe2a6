//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"ceylon_stays/internal/domain"
	mysqlrepo "ceylon_stays/internal/storage/mysql"
)

func migrationsDir(t *testing.T) string {
	t.Helper()
	if d := os.Getenv("MIGRATIONS_DIR"); d != "" {
		return d
	}
	return filepath.Join("..", "..", "..", "migrations")
}

// applyMigrations runs the *.up.sql files in lexical order.
func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir(t)

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .up.sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()

	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=ceylon",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/ceylon?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC", hostPort)

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func TestRepo_MySQL_CatalogRoundTrip(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	h := domain.Hotel{
		ID: "2", Name: "Amaya Hills", Location: "Kandy",
		Rating: 4.6, Price: 120, Description: "Hillside resort", Image: "/img/amaya.jpg",
	}
	if err := repo.UpsertHotel(ctx, h); err != nil {
		t.Fatalf("UpsertHotel: %v", err)
	}
	// upsert again with a new price; must update, not duplicate
	h.Price = 130
	if err := repo.UpsertHotel(ctx, h); err != nil {
		t.Fatalf("UpsertHotel (update): %v", err)
	}

	got, err := repo.GetHotel(ctx, "2")
	if err != nil {
		t.Fatalf("GetHotel: %v", err)
	}
	if got.Name != "Amaya Hills" || got.Price != 130 {
		t.Fatalf("unexpected hotel: %+v", got)
	}

	if _, err := repo.GetHotel(ctx, "missing"); err != domain.ErrNotFound {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	// Shared inventory: a room with no hotel id is listed for every hotel.
	shared := domain.Room{
		ID: "102", Name: "Deluxe Room", Price: 200,
		Capacity: domain.Capacity{Adults: 2, Children: 2},
		Size:     40, BedType: "Queen", Amenities: []string{"wifi", "minibar"},
	}
	owned := domain.Room{
		ID: "201", HotelID: "2", Name: "Hill Suite", Price: 260,
		Capacity: domain.Capacity{Adults: 3, Children: 1},
	}
	for _, rm := range []domain.Room{shared, owned} {
		if err := repo.UpsertRoom(ctx, rm); err != nil {
			t.Fatalf("UpsertRoom %s: %v", rm.ID, err)
		}
	}

	rooms, err := repo.ListRooms(ctx, "2")
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("want shared + owned rooms, got %d", len(rooms))
	}
	rooms, err = repo.ListRooms(ctx, "other-hotel")
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != "102" {
		t.Fatalf("want only the shared room, got %+v", rooms)
	}
	if len(rooms[0].Amenities) != 2 {
		t.Fatalf("amenities did not survive the round trip: %+v", rooms[0])
	}

	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	for i, rv := range []domain.Review{
		{ID: "r1", HotelID: "2", Author: "Nadia", Rating: 4.8, Title: "Lovely", Text: "Great views."},
		{ID: "r2", HotelID: "2", Author: "Tom", Rating: 4.2, Title: "Nice", Text: "Quiet and clean."},
	} {
		rv.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := repo.UpsertReview(ctx, rv); err != nil {
			t.Fatalf("UpsertReview %s: %v", rv.ID, err)
		}
	}
	reviews, err := repo.ListReviews(ctx, "2")
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(reviews) != 2 || reviews[0].ID != "r2" {
		t.Fatalf("want newest review first, got %+v", reviews)
	}
}

func TestRepo_MySQL_UsersAndBookings(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	u := domain.User{
		ID: "u1", FirstName: "Amara", LastName: "Perera",
		Email: "amara@example.com", PasswordHash: "$2a$10$fakefakefakefakefakefake",
		Role: domain.RoleUser, Preferences: domain.DefaultPreferences(),
		CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.CreateUser(ctx, u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	dup := u
	dup.ID = "u2"
	if err := repo.CreateUser(ctx, dup); err != domain.ErrEmailTaken {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}

	got, err := repo.GetUserByEmail(ctx, "amara@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got.ID != "u1" || got.Preferences.Currency != "USD" || !got.Preferences.Notifications {
		t.Fatalf("unexpected user: %+v", got)
	}

	// bookings carry hotel and room FKs
	if err := repo.UpsertHotel(ctx, domain.Hotel{ID: "2", Name: "Amaya Hills", Location: "Kandy", Rating: 4.6, Price: 120}); err != nil {
		t.Fatalf("UpsertHotel: %v", err)
	}
	if err := repo.UpsertRoom(ctx, domain.Room{ID: "102", Name: "Deluxe Room", Price: 200, Capacity: domain.Capacity{Adults: 2, Children: 2}}); err != nil {
		t.Fatalf("UpsertRoom: %v", err)
	}

	b := domain.Booking{
		ID: "b1", UserID: "u1", HotelID: "2", RoomID: "102",
		CheckIn: "2026-09-10", CheckOut: "2026-09-12",
		Adults: 2, Children: 0,
		Price: 200, Tax: 20, Total: 220,
		Status: domain.BookingStatusConfirmed,
	}
	if err := repo.CreateBooking(ctx, b); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	list, err := repo.ListBookingsByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListBookingsByUser: %v", err)
	}
	if len(list) != 1 || list[0].Total != 220 || list[0].CheckIn != "2026-09-10" {
		t.Fatalf("unexpected bookings: %+v", list)
	}

	list, err = repo.ListBookingsByUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListBookingsByUser (empty): %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("want no bookings, got %+v", list)
	}
}
