package postgres

import (
	"context"
	"database/sql"

	"waterbill-backend/internal/domain"
	"waterbill-backend/internal/logger"
	"waterbill-backend/internal/repository"
)

type cashierPaymentRepository struct {
	db *sql.DB
}

func NewCashierPaymentRepository(db *sql.DB) repository.CashierPaymentRepository {
	return &cashierPaymentRepository{db: db}
}

// ListByAccount returns cashier postings as raw records. The legacy postings
// table is sparsely populated (older rows only carry or_number, newer rows
// receipt_number and payment_date), so rows are surfaced as opaque records
// with only the present fields set and the normalizer's ordered lookups pick
// the usable ones.
func (r *cashierPaymentRepository) ListByAccount(ctx context.Context, accountNo string) ([]domain.PaymentRecord, error) {
	logger.EnterMethod("cashierPaymentRepository.ListByAccount", "accountNo", accountNo)

	query := `
		SELECT id, payment_date, created_at, amount_paid::text, penalty_paid::text,
		       payment_method, receipt_number, or_number, reference_number
		FROM cashier_payments WHERE account_no = $1 ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, accountNo)
	if err != nil {
		logger.ExitMethodWithError("cashierPaymentRepository.ListByAccount", err, "accountNo", accountNo)
		return nil, err
	}
	defer rows.Close()

	var records []domain.PaymentRecord
	for rows.Next() {
		var (
			id            int64
			paymentDate   sql.NullTime
			createdAt     sql.NullTime
			amountPaid    sql.NullString
			penaltyPaid   sql.NullString
			paymentMethod sql.NullString
			receiptNumber sql.NullString
			orNumber      sql.NullString
			referenceNo   sql.NullString
		)
		if err := rows.Scan(&id, &paymentDate, &createdAt, &amountPaid, &penaltyPaid, &paymentMethod, &receiptNumber, &orNumber, &referenceNo); err != nil {
			logger.ExitMethodWithError("cashierPaymentRepository.ListByAccount", err, "accountNo", accountNo)
			return nil, err
		}

		// The surrogate primary key is surfaced under "row_id", a key the
		// ledger normalizer does not map: it identifies the row, not the
		// real-world payment, and must stay out of the dedup fingerprint.
		rec := domain.PaymentRecord{"row_id": id}
		if t := timeOrNil(paymentDate); t != nil {
			rec["payment_date"] = *t
		}
		if t := timeOrNil(createdAt); t != nil {
			rec["created_at"] = *t
		}
		if amountPaid.Valid {
			rec["amount_paid"] = amountPaid.String
		}
		if penaltyPaid.Valid {
			rec["penalty_paid"] = penaltyPaid.String
		}
		if paymentMethod.Valid {
			rec["payment_method"] = paymentMethod.String
		}
		if receiptNumber.Valid {
			rec["receipt_number"] = receiptNumber.String
		}
		if orNumber.Valid {
			rec["or_number"] = orNumber.String
		}
		if referenceNo.Valid {
			rec["reference_number"] = referenceNo.String
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		logger.ExitMethodWithError("cashierPaymentRepository.ListByAccount", err, "accountNo", accountNo)
		return nil, err
	}

	logger.ExitMethod("cashierPaymentRepository.ListByAccount", "accountNo", accountNo, "count", len(records))
	return records, nil
}
