package postgres

import (
	"context"
	"database/sql"
	"time"

	"waterbill-backend/internal/domain"
	"waterbill-backend/internal/logger"
	"waterbill-backend/internal/repository"
)

type billRepository struct {
	db *sql.DB
}

func NewBillRepository(db *sql.DB) repository.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) ListByAccount(ctx context.Context, accountNo string) ([]domain.BillRecord, error) {
	logger.EnterMethod("billRepository.ListByAccount", "accountNo", accountNo)

	// Amounts come back as numeric text; the ledger normalizer converts them
	// to cents, treating anything unparsable as zero.
	query := `
		SELECT bill_id, account_no, created_at, COALESCE(amount_due::text, ''), COALESCE(penalty::text, '')
		FROM bills WHERE account_no = $1 ORDER BY created_at, bill_id
	`

	rows, err := r.db.QueryContext(ctx, query, accountNo)
	if err != nil {
		logger.ExitMethodWithError("billRepository.ListByAccount", err, "accountNo", accountNo)
		return nil, err
	}
	defer rows.Close()

	var bills []domain.BillRecord
	for rows.Next() {
		var rec domain.BillRecord
		var createdAt sql.NullTime
		if err := rows.Scan(&rec.BillID, &rec.AccountNo, &createdAt, &rec.AmountDue, &rec.Penalty); err != nil {
			logger.ExitMethodWithError("billRepository.ListByAccount", err, "accountNo", accountNo)
			return nil, err
		}
		if createdAt.Valid {
			t := createdAt.Time
			rec.CreatedAt = &t
		}
		bills = append(bills, rec)
	}
	if err := rows.Err(); err != nil {
		logger.ExitMethodWithError("billRepository.ListByAccount", err, "accountNo", accountNo)
		return nil, err
	}

	logger.ExitMethod("billRepository.ListByAccount", "accountNo", accountNo, "count", len(bills))
	return bills, nil
}

// timeOrNil converts a nullable scan target into the optional field shape the
// payment records use.
func timeOrNil(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
