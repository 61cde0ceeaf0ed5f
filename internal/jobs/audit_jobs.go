package jobs

import (
	"context"
	"time"

	"waterbill-backend/internal/logger"

	"github.com/google/uuid"
)

// AuditLedgers recomputes the ledger for every account billed inside the
// audit window and compares the result against the posted balance on the
// customer record. Mismatches and dropped payment records are logged as
// data-quality conditions; the job never mutates anything.
func (jr *JobRunner) AuditLedgers() {
	jr.runWithRecovery("AuditLedgers", jr.auditLedgers)
}

func (jr *JobRunner) auditLedgers() {
	runID := uuid.NewString()
	ctx := context.Background()
	since := time.Now().AddDate(0, 0, -jr.config.Scheduler.AuditWindowDays)

	customers, err := jr.customerRepo.ListActiveSince(ctx, since)
	if err != nil {
		logger.Error("Ledger audit could not list accounts", "runID", runID, "error", err)
		return
	}

	var mismatches, failures, droppedTotal int
	for _, customer := range customers {
		c, report, err := jr.ledgerSvc.GetCustomerLedger(ctx, customer.AccountNo)
		if err != nil {
			failures++
			logger.Warn("Ledger audit skipped account", "runID", runID, "accountNo", customer.AccountNo, "error", err)
			continue
		}

		droppedTotal += report.DroppedPayments
		if report.CurrentBalanceCents != c.BalanceCents {
			mismatches++
			logger.Warn("Ledger balance mismatch",
				"runID", runID,
				"accountNo", c.AccountNo,
				"postedBalanceCents", c.BalanceCents,
				"recomputedBalanceCents", report.CurrentBalanceCents,
				"deduplicatedPayments", report.DeduplicatedPayments)
		}
	}

	logger.Info("Ledger audit finished",
		"runID", runID,
		"accounts", len(customers),
		"mismatches", mismatches,
		"fetchFailures", failures,
		"droppedPayments", droppedTotal)
}
