package main

import (
	"database/sql"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/lakshanchamidu/Blog-Platform/config"
	"github.com/lakshanchamidu/Blog-Platform/pkg/helpers"
)

// Seeds a demo account and starter categories for local development.
// Safe to run repeatedly; existing rows are left untouched.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to reach database: %v", err)
	}

	hash, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatalf("failed to hash demo password: %v", err)
	}

	res, err := db.Exec(`
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING
	`, "Demo Author", "demo@example.com", hash)
	if err != nil {
		log.Fatalf("failed to seed demo user: %v", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Println("seeded demo user demo@example.com (password: password123)")
	} else {
		log.Println("demo user already present")
	}

	categories := []struct {
		name        string
		description string
	}{
		{"Technology", "Software, hardware and everything in between"},
		{"Travel", "Trip reports and destination guides"},
		{"Food", "Recipes and restaurant reviews"},
		{"Lifestyle", ""},
	}
	seeded := 0
	for _, c := range categories {
		res, err := db.Exec(`
			INSERT INTO categories (name, description)
			VALUES ($1, NULLIF($2, ''))
			ON CONFLICT (name) DO NOTHING
		`, c.name, c.description)
		if err != nil {
			log.Fatalf("failed to seed category %q: %v", c.name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			seeded++
		}
	}
	log.Printf("seeded %d of %d starter categories", seeded, len(categories))
}
