package postgres

import (
	"database/sql"

	"waterbill-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.BillRepository
	repository.CashierPaymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                       db,
		CustomerRepository:       NewCustomerRepository(db),
		BillRepository:           NewBillRepository(db),
		CashierPaymentRepository: NewCashierPaymentRepository(db),
	}
}
