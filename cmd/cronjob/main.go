package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"geoaccess-backend/internal/config"
	"geoaccess-backend/internal/jobs"
	"geoaccess-backend/internal/logger"
	"geoaccess-backend/internal/repository/postgres"
	"geoaccess-backend/internal/scheduler"
	"geoaccess-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit ('snapshot-summary', 'purge-deleted-locations', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Geoaccess Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories and Services
	store := postgres.NewStore(db)
	summarySvc := service.NewSummaryService(store.SummaryRepository)
	jobRunner := jobs.NewJobRunner(store.AllowedLocationRepository, summarySvc, cfg)

	// One-shot mode for manual runs
	if *runOnce != "" {
		switch *runOnce {
		case "snapshot-summary":
			jobRunner.SnapshotSummary()
		case "purge-deleted-locations":
			jobRunner.PurgeDeletedLocations()
		case "all":
			jobRunner.SnapshotSummary()
			jobRunner.PurgeDeletedLocations()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	// Scheduled mode
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Block until interrupted
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutdown signal received")
}
