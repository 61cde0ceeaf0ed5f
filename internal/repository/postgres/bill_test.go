package postgres_test

import (
	"context"
	"testing"
	"time"

	"waterbill-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillRepository_ListByAccount(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := postgres.NewBillRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		createdAt := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"bill_id", "account_no", "created_at", "amount_due", "penalty"}).
			AddRow("B-1", "ACC-001", createdAt, "450.50", "0").
			AddRow("B-2", "ACC-001", createdAt.AddDate(0, 1, 0), "512.00", "45.05")

		mock.ExpectQuery("SELECT (.+) FROM bills WHERE account_no = \\$1").
			WithArgs("ACC-001").
			WillReturnRows(rows)

		bills, err := repo.ListByAccount(ctx, "ACC-001")
		require.NoError(t, err)
		require.Len(t, bills, 2)
		assert.Equal(t, "B-1", bills[0].BillID)
		assert.Equal(t, "450.50", bills[0].AmountDue)
		require.NotNil(t, bills[0].CreatedAt)
		assert.True(t, bills[0].CreatedAt.Equal(createdAt))
		assert.Equal(t, "45.05", bills[1].Penalty)
	})

	t.Run("Null created_at stays nil", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"bill_id", "account_no", "created_at", "amount_due", "penalty"}).
			AddRow("B-3", "ACC-001", nil, "100.00", "")

		mock.ExpectQuery("SELECT (.+) FROM bills WHERE account_no = \\$1").
			WithArgs("ACC-001").
			WillReturnRows(rows)

		bills, err := repo.ListByAccount(ctx, "ACC-001")
		require.NoError(t, err)
		require.Len(t, bills, 1)
		assert.Nil(t, bills[0].CreatedAt)
	})

	t.Run("Empty result", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bills WHERE account_no = \\$1").
			WithArgs("ACC-009").
			WillReturnRows(sqlmock.NewRows([]string{"bill_id", "account_no", "created_at", "amount_due", "penalty"}))

		bills, err := repo.ListByAccount(ctx, "ACC-009")
		assert.NoError(t, err)
		assert.Empty(t, bills)
	})
}
