// Package main provides a CLI tool for preparing the database schema and
// seeding it with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"insural/internal/core/id"
	"insural/internal/domain/insurance"
	"insural/internal/domain/user"
	"insural/internal/infrastructure/storage/postgres"
	"insural/pkg/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS feedbacks (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		content TEXT NOT NULL,
		is_purchase BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS insurances (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		price NUMERIC(12,2) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payments (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		bank_account TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Pending',
		reason TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id),
		insurance_id UUID NOT NULL REFERENCES insurances(id),
		status TEXT NOT NULL DEFAULT 'Pending',
		purchase_date TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_insurance_user
		ON purchases (insurance_id, user_id)`,
}

func main() {
	_ = godotenv.Load()

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

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalw("failed to apply schema", "error", err)
		}
	}
	log.Info("schema applied")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoInsurances(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo insurances", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@insural.io"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1`,
		adminEmail,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "email", adminEmail, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	hash, err := user.NewBcryptHasher().Hash(adminPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	admin := user.New("Administrator", adminEmail, "")
	admin.PasswordHash = hash
	admin.EnsureID()

	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, name, email, phone, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, admin.ID, admin.Name, admin.Email, admin.Phone, admin.PasswordHash, admin.CreatedAt, admin.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "email", adminEmail, "user_id", admin.ID)
	return nil
}

func seedDemoInsurances(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM insurances`).Scan(&count); err != nil {
		return fmt.Errorf("count insurances: %w", err)
	}
	if count > 0 {
		log.Infow("insurances already present, skipping demo data", "count", count)
		return nil
	}

	demo := []*insurance.Insurance{
		insurance.New("Travel Basic", decimal.NewFromInt(49), "Trip cancellation and lost luggage cover."),
		insurance.New("Auto Comprehensive", decimal.NewFromInt(320), "Collision, theft and third-party liability."),
		insurance.New("Home Standard", decimal.NewFromInt(180), "Fire, flood and burglary protection."),
	}

	for _, ins := range demo {
		ins.EnsureID()
		_, err := pool.Exec(ctx, `
			INSERT INTO insurances (id, name, price, description, image_url, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, ins.ID, ins.Name, ins.Price, ins.Description, ins.ImageURL, ins.CreatedAt, ins.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert insurance %q: %w", ins.Name, err)
		}
	}

	log.Infow("demo insurances created", "count", len(demo))
	return nil
}
