package main

import (
	"log"

	"github.com/hazelkitchen/recipebook/backend/config"
	"github.com/hazelkitchen/recipebook/backend/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.StoreBackend != config.StorePostgres {
		log.Fatalf("migrations only apply to the postgres backend (STORE_BACKEND=%s)", cfg.StoreBackend)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations applied")
}
