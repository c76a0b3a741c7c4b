package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// STAFF
	// -------------------------------
	staffTableSQL := `
		CREATE TABLE IF NOT EXISTS staff (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'COORDINATOR',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, staffTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(50) NOT NULL,
			unit_price NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (name, category)
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// APPOINTMENTS
	// -------------------------------
	appointmentsSQL := `
		CREATE TABLE IF NOT EXISTS appointments (
			id SERIAL PRIMARY KEY,
			reference UUID UNIQUE NOT NULL,
			customer_name VARCHAR(255) NOT NULL,
			contact_number VARCHAR(50),
			event_type VARCHAR(50) NOT NULL,
			event_date DATE NOT NULL,
			guest_count INT NOT NULL,
			menu_selection JSONB NOT NULL,
			venue JSONB,
			subtotal NUMERIC(12,2) NOT NULL,
			service_fee NUMERIC(12,2) NOT NULL,
			add_on_fee NUMERIC(12,2) NOT NULL DEFAULT 0,
			total NUMERIC(12,2) NOT NULL,
			down_payment NUMERIC(12,2) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING_DEPOSIT',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, appointmentsSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
