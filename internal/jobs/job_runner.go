package jobs

import (
	"waterbill-backend/internal/config"
	"waterbill-backend/internal/logger"
	"waterbill-backend/internal/repository"
	"waterbill-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	customerRepo repository.CustomerRepository
	ledgerSvc    service.LedgerService
	config       *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(customerRepo repository.CustomerRepository, ledgerSvc service.LedgerService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		customerRepo: customerRepo,
		ledgerSvc:    ledgerSvc,
		config:       cfg,
	}
}

// Config exposes configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
