// Package main is the entry point for the Nautica API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nautica/internal/config"
	"nautica/internal/core/clock"
	"nautica/internal/domain/auth"
	"nautica/internal/domain/catalog/category"
	"nautica/internal/domain/catalog/club"
	"nautica/internal/domain/catalog/tour"
	"nautica/internal/domain/catalog/yacht"
	"nautica/internal/domain/folio"
	"nautica/internal/domain/geo"
	"nautica/internal/domain/reservation"
	"nautica/internal/infrastructure/bucket"
	"nautica/internal/infrastructure/cache"
	v1 "nautica/internal/infrastructure/http/v1"
	"nautica/internal/infrastructure/storage/postgres"
	"nautica/pkg/logger"
)

// catalogLookup resolves reservation product references through the
// catalog services, so bookings carry images and characteristics.
type catalogLookup struct {
	yachts *yacht.Service
	tours  *tour.Service
	clubs  *club.Service
}

func (l catalogLookup) Yacht(ctx context.Context, id int64) (*yacht.Yacht, error) {
	return l.yachts.GetByID(ctx, id)
}

func (l catalogLookup) Tour(ctx context.Context, id int64) (*tour.Tour, error) {
	return l.tours.GetByID(ctx, id)
}

func (l catalogLookup) Club(ctx context.Context, id int64) (*club.Club, error) {
	return l.clubs.GetByID(ctx, id)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting nautica server")

	// --- PostgreSQL ---
	poolCfg := postgres.DefaultPoolConfig(cfg.DatabaseURL)
	poolCfg.MaxConns = cfg.DBMaxConns
	poolCfg.MinConns = cfg.DBMinConns
	poolCfg.MaxConnLifetime = cfg.DBMaxConnLife
	poolCfg.MaxConnIdleTime = cfg.DBMaxConnIdle

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Redis response cache (optional) ---
	rdb, err := cache.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Warnw("redis unavailable, response caching disabled", "error", err)
		rdb = nil
	}
	if rdb != nil {
		defer rdb.Close()
		log.Infow("redis cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.CacheTTL)
	}

	// --- Repositories ---
	folioRepo := postgres.NewFolioRepo(txManager)
	reservationRepo := postgres.NewReservationRepo(txManager)
	categoryRepo := postgres.NewCategoryRepo(txManager)
	geoRepo := postgres.NewGeoRepo(txManager)
	yachtRepo := postgres.NewYachtRepo(txManager, categoryRepo)
	tourRepo := postgres.NewTourRepo(txManager, categoryRepo)
	clubRepo := postgres.NewClubRepo(txManager, categoryRepo, geoRepo)
	userRepo := postgres.NewUserRepo(txManager)

	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// --- Image bucket ---
	uploader := bucket.NewClient(cfg.BucketURL, cfg.BucketKey, cfg.BucketName)

	// --- Domain services ---
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL, clock.System{})
	authService := auth.NewService(userRepo, tokens)

	folioService := folio.NewService(folioRepo, txManager, clock.System{}, cfg.FolioRetries)

	categoryService := category.NewService(categoryRepo)
	geoService := geo.NewService(geoRepo)
	yachtService := yacht.NewService(yachtRepo, categoryRepo, uploader)
	tourService := tour.NewService(tourRepo, categoryRepo, uploader)
	clubService := club.NewService(clubRepo, categoryRepo, geoRepo, uploader)

	reservationService := reservation.NewService(
		reservationRepo,
		folioService,
		catalogLookup{yachts: yachtService, tours: tourService, clubs: clubService},
		auditService,
	)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:           pool,
		Logger:         log,
		Auth:           authService,
		Folios:         folioService,
		Reservations:   reservationService,
		Yachts:         yachtService,
		Tours:          tourService,
		Clubs:          clubService,
		Categories:     categoryService,
		Geo:            geoService,
		Redis:          rdb,
		CacheTTL:       cfg.CacheTTL,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		ShutdownCtx:    ctx,
	})

	// --- HTTP server ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
