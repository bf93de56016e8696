package main

import (
	"context"
	"log"

	"effectsize/adapters/postgres"
	"effectsize/adapters/rng"
	"effectsize/app"
	"effectsize/internal/config"
	"effectsize/ports"
	"effectsize/ui"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	var reports ports.ReportRepository
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		if err := db.Ping(); err != nil {
			log.Fatalf("failed to ping database: %v", err)
		}
		if err := postgres.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("failed to prepare schema: %v", err)
		}
		reports = postgres.NewReportRepository(db)
		log.Println("Report persistence enabled")
	} else {
		log.Println("DATABASE_URL not set; running compute-only")
	}

	service := app.NewAnalysisService(rng.NewSeededAdapter(), reports)
	server := ui.NewServer(service, reports, cfg.Analysis)

	addr := ":" + cfg.Server.Port
	log.Printf("Listening on %s", addr)
	if err := server.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
