package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"

	server "ceylon_stays/internal/adapters/http_server"
	"ceylon_stays/internal/adapters/observability"
	redisad "ceylon_stays/internal/adapters/redis"
	"ceylon_stays/internal/adapters/token"
	"ceylon_stays/internal/app"
	"ceylon_stays/internal/domain"
	"ceylon_stays/internal/shared"
	"ceylon_stays/internal/storage/memory"
	mysqlrepo "ceylon_stays/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	var (
		catalog  domain.CatalogRepository
		users    domain.UserRepository
		bookings domain.BookingRepository
	)
	switch cfg.Store {
	case "memory":
		st := memory.New()
		st.Seed(shared.SeedHotels(), shared.SeedRooms(), shared.SeedReviews())
		catalog, users, bookings = st, st, st
		log.Info().Msg("using in-memory store with seed catalog")
	default:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")

		if err := runMigrations(db, cfg.Migrations); err != nil {
			log.Fatal().Err(err).Msg("migrations failed")
		}

		repo := mysqlrepo.New(db)
		catalog, users, bookings = repo, repo, repo
	}

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)
	q := app.NewQueryService(catalog, cache, cfg.CacheTTL)
	auth := app.NewAuthService(users, tokens)
	booking := app.NewBookingService(catalog, bookings, cache)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, Auth: auth, Bookings: booking, Tokens: tokens})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// runMigrations applies any pending schema migrations from dir. An already
// current schema is not an error.
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
