package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	api "waterbill-backend/internal/api/http"
	"waterbill-backend/internal/config"
	"waterbill-backend/internal/logger"
	"waterbill-backend/internal/paygate"
	"waterbill-backend/internal/repository/postgres"
	"waterbill-backend/internal/security"
	"waterbill-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Waterbill Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Payment gateway configuration", "base_url", cfg.Paygate.BaseURL)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize payment gateway client
	gateway := paygate.NewClient(cfg.Paygate.BaseURL, cfg.Paygate.APIKey, time.Duration(cfg.Paygate.TimeoutSeconds)*time.Second)

	// Initialize Services
	ledgerSvc := service.NewLedgerService(
		store.CustomerRepository,
		store.BillRepository,
		store.CashierPaymentRepository,
		gateway,
	)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Set up HTTP server
	ledgerHandler := api.NewLedgerHandler(ledgerSvc)
	router := api.NewRouter(ledgerHandler, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
