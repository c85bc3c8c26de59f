package main

import (
	"context"
	"log"

	"github.com/valeriaulyamaeva/living-budget/internal/config"
	"github.com/valeriaulyamaeva/living-budget/internal/database"
)

// Creates the schema in DATABASE_URL. Safe to run repeatedly.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	pool, err := database.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.NewPgStore(pool).Migrate(ctx); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration finished")
}
