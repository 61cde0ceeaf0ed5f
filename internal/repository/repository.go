package repository

import (
	"context"
	"time"

	"waterbill-backend/internal/domain"
)

type CustomerRepository interface {
	GetByAccountNo(ctx context.Context, accountNo string) (*domain.Customer, error)
	ListActiveSince(ctx context.Context, since time.Time) ([]domain.Customer, error)
}

type BillRepository interface {
	ListByAccount(ctx context.Context, accountNo string) ([]domain.BillRecord, error)
}

type CashierPaymentRepository interface {
	ListByAccount(ctx context.Context, accountNo string) ([]domain.PaymentRecord, error)
}

// OnlinePaymentSource fetches online submissions for an account from the
// payment gateway. The payload shape is owned by the gateway (a bare record
// array or a wrapper object); the normalizer unwraps it.
type OnlinePaymentSource interface {
	FetchSubmissions(ctx context.Context, accountNo string) (any, error)
}
