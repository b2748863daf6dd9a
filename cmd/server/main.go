package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "geoaccess-backend/internal/api/http"
	"geoaccess-backend/internal/config"
	"geoaccess-backend/internal/logger"
	"geoaccess-backend/internal/repository/postgres"
	"geoaccess-backend/internal/security"
	"geoaccess-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Geoaccess Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
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

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailSvc = service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
		logger.Info("Review decision emails enabled", "notify_email", cfg.SendGrid.NotifyEmail)
	} else {
		logger.Info("Review decision emails disabled (no SendGrid API key)")
	}

	// Initialize Services
	reqSvc := service.NewLocationRequestService(store.LocationRequestRepository, store.PolicyRepository)
	workflowSvc := service.NewWorkflowService(store.WorkflowRepository, emailSvc, cfg.SendGrid.NotifyEmail)
	locSvc := service.NewAllowedLocationService(store.AllowedLocationRepository)
	policySvc := service.NewPolicyService(store.PolicyRepository, store.AllowedLocationRepository)
	evalSvc := service.NewEvaluatorService(store.PolicyRepository, store.AllowedLocationRepository)
	summarySvc := service.NewSummaryService(store.SummaryRepository)

	// Initialize HTTP handlers and router
	router := api.NewRouter(api.Handlers{
		Requests:  api.NewLocationRequestHandler(reqSvc),
		Review:    api.NewReviewHandler(workflowSvc),
		Locations: api.NewAllowedLocationHandler(locSvc),
		Policy:    api.NewPolicyHandler(policySvc),
		Evaluate:  api.NewEvaluateHandler(evalSvc),
		Summary:   api.NewSummaryHandler(summarySvc),
	}, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
