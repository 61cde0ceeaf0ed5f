package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"waterbill-backend/internal/domain"
	"waterbill-backend/internal/logger"
	"waterbill-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) GetByAccountNo(ctx context.Context, accountNo string) (*domain.Customer, error) {
	logger.EnterMethod("customerRepository.GetByAccountNo", "accountNo", accountNo)

	query := `
		SELECT id, account_no, COALESCE(name, ''), COALESCE(address, ''), COALESCE(barangay, ''),
		       COALESCE(meter_no, ''), status, COALESCE(balance_cents, 0), created_at
		FROM customers WHERE account_no = $1
	`

	customer := &domain.Customer{}
	err := r.db.QueryRowContext(ctx, query, accountNo).Scan(
		&customer.ID, &customer.AccountNo, &customer.Name, &customer.Address, &customer.Barangay,
		&customer.MeterNo, &customer.Status, &customer.BalanceCents, &customer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethod("customerRepository.GetByAccountNo", "accountNo", accountNo, "found", false)
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		logger.ExitMethodWithError("customerRepository.GetByAccountNo", err, "accountNo", accountNo)
		return nil, err
	}

	logger.ExitMethod("customerRepository.GetByAccountNo", "accountNo", accountNo, "customerID", customer.ID)
	return customer, nil
}

func (r *customerRepository) ListActiveSince(ctx context.Context, since time.Time) ([]domain.Customer, error) {
	logger.EnterMethod("customerRepository.ListActiveSince", "since", since.Format("2006-01-02"))

	query := `
		SELECT DISTINCT c.id, c.account_no, COALESCE(c.name, ''), COALESCE(c.address, ''),
		       COALESCE(c.barangay, ''), COALESCE(c.meter_no, ''), c.status,
		       COALESCE(c.balance_cents, 0), c.created_at
		FROM customers c
		JOIN bills b ON b.account_no = c.account_no
		WHERE c.status = 'ACTIVE' AND b.created_at >= $1
		ORDER BY c.id
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		logger.ExitMethodWithError("customerRepository.ListActiveSince", err)
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.AccountNo, &c.Name, &c.Address, &c.Barangay, &c.MeterNo, &c.Status, &c.BalanceCents, &c.CreatedAt); err != nil {
			logger.ExitMethodWithError("customerRepository.ListActiveSince", err)
			return nil, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		logger.ExitMethodWithError("customerRepository.ListActiveSince", err)
		return nil, err
	}

	logger.ExitMethod("customerRepository.ListActiveSince", "count", len(customers))
	return customers, nil
}
