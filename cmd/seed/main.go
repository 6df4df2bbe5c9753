// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"nautica/internal/domain/auth"
	"nautica/internal/domain/catalog/category"
	"nautica/internal/infrastructure/storage/postgres"
	"nautica/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@nautica.io"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID int64
	err := pool.QueryRow(ctx,
		"SELECT id FROM users WHERE email = $1", adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var id int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, first_name, last_name, role)
		VALUES ($1, $2, 'Admin', '', $3)
		RETURNING id`,
		adminEmail, string(hash), auth.RoleAdmin,
	).Scan(&id)
	if err != nil {
		return err
	}

	log.Infow("admin user created", "email", adminEmail, "id", id)
	return nil
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	categories := []struct {
		kind category.Kind
		name string
	}{
		{category.KindYacht, "Sailing"},
		{category.KindYacht, "Motor"},
		{category.KindYacht, "Catamaran"},
		{category.KindTour, "Snorkeling"},
		{category.KindTour, "Sunset Cruise"},
		{category.KindClub, "Beach Club"},
		{category.KindClub, "Marina"},
	}
	for _, c := range categories {
		_, err := pool.Exec(ctx, `
			INSERT INTO categories (kind, name)
			VALUES ($1, $2)
			ON CONFLICT (kind, name) DO NOTHING`,
			c.kind, c.name)
		if err != nil {
			return fmt.Errorf("seed category %s/%s: %w", c.kind, c.name, err)
		}
	}
	log.Infow("categories seeded", "count", len(categories))

	states := []string{"Quintana Roo", "Baja California Sur", "Jalisco"}
	for _, name := range states {
		_, err := pool.Exec(ctx, `
			INSERT INTO states (name)
			VALUES ($1)
			ON CONFLICT (name) DO NOTHING`,
			name)
		if err != nil {
			return fmt.Errorf("seed state %s: %w", name, err)
		}
	}
	log.Infow("states seeded", "count", len(states))

	return nil
}
