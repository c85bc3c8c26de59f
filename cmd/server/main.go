package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/valeriaulyamaeva/living-budget/internal/auth"
	"github.com/valeriaulyamaeva/living-budget/internal/config"
	"github.com/valeriaulyamaeva/living-budget/internal/database"
	"github.com/valeriaulyamaeva/living-budget/internal/jobs"
	"github.com/valeriaulyamaeva/living-budget/internal/middleware"
	"github.com/valeriaulyamaeva/living-budget/internal/routes"
	"github.com/valeriaulyamaeva/living-budget/internal/service"
)

func main() {
	memory := flag.Bool("memory", false, "keep everything in memory instead of Postgres")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}
	defaults, err := cfg.DefaultSettings()
	if err != nil {
		log.Fatalf("Invalid default settings: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store database.Store
	if *memory {
		log.Println("Using in-memory store, data is lost on exit")
		store = database.NewMemoryStore()
	} else {
		pool, err := database.ConnectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		pg := database.NewPgStore(pool)
		if err := pg.Migrate(ctx); err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}
		store = pg
	}

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	svc := service.New(store, issuer, service.Options{
		Defaults:   defaults,
		Currency:   cfg.Currency,
		Location:   loc,
		BcryptCost: cfg.BcryptCost,
	})

	scheduler, err := jobs.ScheduleRolloverNotices(cfg.RolloverCron, loc, svc, jobs.LogNotifier)
	if err != nil {
		log.Fatalf("Failed to schedule rollover scan: %v", err)
	}
	defer scheduler.Stop()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID(), middleware.CORSMiddleware(cfg.CORSOrigins))
	routes.SetupRouter(r, svc, issuer)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Printf("Listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
}
