package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/valeriaulyamaeva/living-budget/internal/config"
	"github.com/valeriaulyamaeva/living-budget/internal/database"
	"github.com/valeriaulyamaeva/living-budget/utils"
)

func main() {
	users := flag.Int("users", 3, "number of demo accounts")
	months := flag.Int("months", 3, "months of transaction history per account")
	perMonth := flag.Int("per-month", 25, "expenses per month")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	ctx := context.Background()
	pool, err := database.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	store := database.NewPgStore(pool)
	if err := store.Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	g := utils.NewGenerator(store, *seed, cfg.BcryptCost)
	accounts, err := g.GenerateTestUsers(ctx, *users)
	if err != nil {
		log.Fatalf("Failed to create demo users: %v", err)
	}
	now := time.Now().In(loc)
	for _, u := range accounts {
		s, err := g.GenerateTestSettings(ctx, u.ID)
		if err != nil {
			log.Fatalf("Failed to create settings for %d: %v", u.ID, err)
		}
		n, err := g.GenerateTestTransactions(ctx, s, *months, *perMonth, now)
		if err != nil {
			log.Fatalf("Failed to create transactions for %d: %v", u.ID, err)
		}
		if err := g.GenerateTestHoldings(ctx, u.ID, 3); err != nil {
			log.Fatalf("Failed to create holdings for %d: %v", u.ID, err)
		}
		if err := g.GenerateTestRiskItems(ctx, u.ID, 3); err != nil {
			log.Fatalf("Failed to create risk items for %d: %v", u.ID, err)
		}
		fmt.Printf("%-40s %-12s %d transactions\n", u.Email, u.Password, n)
	}
}
