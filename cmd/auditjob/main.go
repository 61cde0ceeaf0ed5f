package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waterbill-backend/internal/config"
	"waterbill-backend/internal/jobs"
	"waterbill-backend/internal/logger"
	"waterbill-backend/internal/paygate"
	"waterbill-backend/internal/repository/postgres"
	"waterbill-backend/internal/scheduler"
	"waterbill-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.Bool("run-once", false, "Run the ledger audit once and exit")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Waterbill Audit Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Repositories and Services
	store := postgres.NewStore(db)
	gateway := paygate.NewClient(cfg.Paygate.BaseURL, cfg.Paygate.APIKey, time.Duration(cfg.Paygate.TimeoutSeconds)*time.Second)
	ledgerSvc := service.NewLedgerService(
		store.CustomerRepository,
		store.BillRepository,
		store.CashierPaymentRepository,
		gateway,
	)

	jobRunner := jobs.NewJobRunner(store.CustomerRepository, ledgerSvc, cfg)

	if *runOnce {
		jobRunner.AuditLedgers()
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	sched.Stop()
}
