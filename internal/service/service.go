package service

import (
	"context"

	"waterbill-backend/internal/domain"
)

type LedgerService interface {
	// GetCustomerLedger reconciles the account's bills against payments from
	// both channels and returns the customer with their ledger report. Any
	// collaborator fetch failure fails the whole report; the engine never
	// partially reconciles.
	GetCustomerLedger(ctx context.Context, accountNo string) (*domain.Customer, *domain.LedgerReport, error)
}
