package main

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"ceylon_stays/internal/adapters/observability"
	"ceylon_stays/internal/domain"
	"ceylon_stays/internal/shared"
	mysqlrepo "ceylon_stays/internal/storage/mysql"
)

// The seeder applies migrations and loads the catalog (hotels, the shared
// room inventory, and reviews) into MySQL. Safe to re-run: everything is an
// upsert.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	hotels := shared.SeedHotels()
	reviews := shared.SeedReviews()

	log.Info().
		Int("workers", cfg.SeedWorkers).
		Int("hotels", len(hotels)).
		Msg("seeder starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	if err := runMigrations(db, cfg.Migrations); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	repo := mysqlrepo.New(db)

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, h := range hotels {
		h := h

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, int64(1)); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(h domain.Hotel) {
			defer wg.Done()
			defer sem.Release(int64(1))

			if err := repo.UpsertHotel(ctx, h); err != nil {
				log.Warn().Str("id", h.ID).Err(err).Msg("hotel upsert failed")
				return
			}
			log.Info().Str("id", h.ID).Str("name", h.Name).Msg("hotel ok")
		}(h)
	}
	wg.Wait()

	// Rooms reference hotels only optionally (the inventory is shared), but
	// reviews carry a hotel FK, so both wait for the hotels above.
	for _, rm := range shared.SeedRooms() {
		if err := repo.UpsertRoom(ctx, rm); err != nil {
			log.Warn().Str("id", rm.ID).Err(err).Msg("room upsert failed")
		}
	}
	for _, rv := range reviews {
		if err := repo.UpsertReview(ctx, rv); err != nil {
			log.Warn().Str("id", rv.ID).Err(err).Msg("review upsert failed")
		}
	}

	log.Info().Msg("seeding completed")
}

func runMigrations(db *sql.DB, dir string) error {
	driver, err := migratemysql.WithInstance(db, &migratemysql.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+dir, "mysql", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
