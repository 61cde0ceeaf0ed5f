package service

import (
	"context"
	"fmt"
	"time"

	"waterbill-backend/internal/domain"
	"waterbill-backend/internal/ledger"
	"waterbill-backend/internal/logger"
	"waterbill-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

type ledgerService struct {
	customerRepo repository.CustomerRepository
	billRepo     repository.BillRepository
	cashierRepo  repository.CashierPaymentRepository
	onlineSource repository.OnlinePaymentSource
}

func NewLedgerService(
	customerRepo repository.CustomerRepository,
	billRepo repository.BillRepository,
	cashierRepo repository.CashierPaymentRepository,
	onlineSource repository.OnlinePaymentSource,
) LedgerService {
	return &ledgerService{
		customerRepo: customerRepo,
		billRepo:     billRepo,
		cashierRepo:  cashierRepo,
		onlineSource: onlineSource,
	}
}

func (s *ledgerService) GetCustomerLedger(ctx context.Context, accountNo string) (*domain.Customer, *domain.LedgerReport, error) {
	logger.EnterMethod("ledgerService.GetCustomerLedger", "accountNo", accountNo)

	customer, err := s.customerRepo.GetByAccountNo(ctx, accountNo)
	if err != nil {
		logger.ExitMethodWithError("ledgerService.GetCustomerLedger", err, "accountNo", accountNo)
		return nil, nil, err
	}

	// The three feeds are independent, so fetch them in parallel. The engine
	// itself is synchronous compute and needs all three resolved first.
	var (
		bills   []domain.BillRecord
		cashier []domain.PaymentRecord
		online  any
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bills, err = s.billRepo.ListByAccount(gctx, accountNo)
		if err != nil {
			return fmt.Errorf("failed to fetch bills: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		cashier, err = s.cashierRepo.ListByAccount(gctx, accountNo)
		if err != nil {
			return fmt.Errorf("failed to fetch cashier payments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		online, err = s.onlineSource.FetchSubmissions(gctx, accountNo)
		if err != nil {
			return fmt.Errorf("failed to fetch online payments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		logger.ExitMethodWithError("ledgerService.GetCustomerLedger", err, "accountNo", accountNo)
		return nil, nil, err
	}

	report := ledger.BuildReport(bills, cashier, online, time.Now())

	if report.DroppedPayments > 0 {
		logger.Warn("Payment records excluded from ledger",
			"accountNo", accountNo, "dropped", report.DroppedPayments)
	}

	logger.ExitMethod("ledgerService.GetCustomerLedger",
		"accountNo", accountNo,
		"year", report.Year,
		"balanceCents", report.CurrentBalanceCents,
		"deduplicated", report.DeduplicatedPayments)
	return customer, report, nil
}
