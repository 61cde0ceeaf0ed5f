package ledger

import (
	"testing"
	"time"

	"waterbill-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestNormalizeBill(t *testing.T) {
	t.Run("Complete record", func(t *testing.T) {
		issued := date("2024-01-05")
		ev := NormalizeBill(domain.BillRecord{
			BillID:    "B-1001",
			CreatedAt: &issued,
			AmountDue: "500.00",
			Penalty:   "20.00",
		})
		require.NotNil(t, ev)
		assert.Equal(t, "B-1001", ev.BillID)
		assert.Equal(t, int64(50000), ev.AmountDue.Cents())
		assert.Equal(t, int64(2000), ev.Penalty.Cents())
	})

	t.Run("Missing issue date drops the bill", func(t *testing.T) {
		assert.Nil(t, NormalizeBill(domain.BillRecord{BillID: "B-1002", AmountDue: "100.00"}))
	})

	t.Run("Unparsable amounts map to zero", func(t *testing.T) {
		issued := date("2024-02-01")
		ev := NormalizeBill(domain.BillRecord{BillID: "B-1003", CreatedAt: &issued, AmountDue: "??", Penalty: ""})
		require.NotNil(t, ev)
		assert.Equal(t, int64(0), ev.AmountDue.Cents())
		assert.Equal(t, int64(0), ev.Penalty.Cents())
	})
}

func TestNormalizePayment_TimestampFallback(t *testing.T) {
	t.Run("payment_date wins over created_at", func(t *testing.T) {
		ev := NormalizePayment(domain.PaymentSourceCashier, domain.PaymentRecord{
			"payment_date": "2024-01-10",
			"created_at":   "2024-01-12",
			"amount_paid":  "500.00",
		})
		require.NotNil(t, ev)
		assert.Equal(t, date("2024-01-10"), ev.PaidAt)
	})

	t.Run("Falls through to approvedAt", func(t *testing.T) {
		ev := NormalizePayment(domain.PaymentSourceOnline, domain.PaymentRecord{
			"approvedAt": "2024-03-15",
			"amount":     300.0,
		})
		require.NotNil(t, ev)
		assert.Equal(t, date("2024-03-15"), ev.PaidAt)
	})

	t.Run("No usable timestamp drops the record", func(t *testing.T) {
		assert.Nil(t, NormalizePayment(domain.PaymentSourceCashier, domain.PaymentRecord{
			"amount_paid": "500.00",
		}))
		assert.Nil(t, NormalizePayment(domain.PaymentSourceCashier, domain.PaymentRecord{
			"payment_date": "never",
			"amount_paid":  "500.00",
		}))
	})

	t.Run("time.Time values are accepted directly", func(t *testing.T) {
		ev := NormalizePayment(domain.PaymentSourceCashier, domain.PaymentRecord{
			"payment_date": date("2024-04-01"),
			"amount_paid":  "75.25",
		})
		require.NotNil(t, ev)
		assert.Equal(t, date("2024-04-01"), ev.PaidAt)
	})
}

func TestNormalizePayment_AmountFallback(t *testing.T) {
	t.Run("amount_paid wins over amount", func(t *testing.T) {
		ev := NormalizePayment(domain.PaymentSourceCashier, domain.PaymentRecord{
			"payment_date": "2024-01-10",
			"amount_paid":  "500.00",
			"amount":       "999.99",
		})
		require.NotNil(t, ev)
		assert.Equal(t, int64(50000), ev.AmountPaid.Cents())
	})

	t.Run("total_amount used last", func(t *testing.T) {
		ev := NormalizePayment(domain.PaymentSourceOnline, domain.PaymentRecord{
			"created_at":   "2024-01-10",
			"total_amount": 150.75,
		})
		require.NotNil(t, ev)
		assert.Equal(t, int64(15075), ev.AmountPaid.Cents())
	})
}

func TestNormalizePayment_OnlineApproval(t *testing.T) {
	base := domain.PaymentRecord{
		"created_at": "2024-05-01",
		"amount":     150.0,
	}

	t.Run("Pending online payment is excluded", func(t *testing.T) {
		rec := domain.PaymentRecord{"created_at": "2024-05-01", "amount": 150.0, "status": "pending"}
		assert.Nil(t, NormalizePayment(domain.PaymentSourceOnline, rec))
	})

	t.Run("Approved variants pass", func(t *testing.T) {
		for _, status := range []string{"approved", "SUCCESS", "Successful"} {
			rec := domain.PaymentRecord{"created_at": "2024-05-01", "amount": 150.0, "status": status}
			assert.NotNil(t, NormalizePayment(domain.PaymentSourceOnline, rec), status)
		}
	})

	t.Run("Absent status is treated as approved", func(t *testing.T) {
		assert.NotNil(t, NormalizePayment(domain.PaymentSourceOnline, base))
	})

	t.Run("Status is ignored for cashier postings", func(t *testing.T) {
		rec := domain.PaymentRecord{"payment_date": "2024-05-01", "amount_paid": "10.00", "status": "pending"}
		assert.NotNil(t, NormalizePayment(domain.PaymentSourceCashier, rec))
	})
}

func TestNormalizePayment_Identifiers(t *testing.T) {
	ev := NormalizePayment(domain.PaymentSourceOnline, domain.PaymentRecord{
		"created_at":       "2024-02-01",
		"amount":           300.0,
		"payment_method":   "gcash",
		"reference_number": "REF1",
		"payment_id":       float64(42), // JSON numbers decode as float64
	})
	require.NotNil(t, ev)
	assert.Equal(t, "gcash", ev.Method)
	assert.Equal(t, "REF1", ev.ReferenceNumber)
	assert.Equal(t, "42", ev.RawID)
	assert.Equal(t, "", ev.ReceiptNumber)
}

func TestNormalizePayment_ChannelLocalIDsIgnored(t *testing.T) {
	// Each channel tags records with its own local id (a cashier row's
	// surrogate key, a gateway submission id). Neither identifies the
	// real-world payment, so neither may reach the dedup fingerprint.
	cashier := NormalizePayment(domain.PaymentSourceCashier, domain.PaymentRecord{
		"payment_date":     "2024-02-01",
		"amount_paid":      "300.00",
		"reference_number": "REF1",
		"row_id":           int64(9731),
	})
	online := NormalizePayment(domain.PaymentSourceOnline, domain.PaymentRecord{
		"created_at":       "2024-02-01",
		"amount":           300.0,
		"reference_number": "REF1",
		"id":               "sub-42",
		"status":           "approved",
	})
	require.NotNil(t, cashier)
	require.NotNil(t, online)
	assert.Equal(t, "", cashier.RawID)
	assert.Equal(t, "", online.RawID)
}

func TestUnwrapOnlineContainer(t *testing.T) {
	record := map[string]any{"created_at": "2024-01-01", "amount": 1.0}

	t.Run("Bare array", func(t *testing.T) {
		recs := UnwrapOnlineContainer([]any{record})
		assert.Len(t, recs, 1)
	})

	t.Run("Wrapper keys in priority order", func(t *testing.T) {
		for _, key := range []string{"payments", "submissions", "data"} {
			recs := UnwrapOnlineContainer(map[string]any{key: []any{record}})
			assert.Len(t, recs, 1, key)
		}
	})

	t.Run("First matching key wins", func(t *testing.T) {
		payload := map[string]any{
			"payments": []any{record, record},
			"data":     []any{record},
		}
		assert.Len(t, UnwrapOnlineContainer(payload), 2)
	})

	t.Run("Unrecognized shapes yield nothing", func(t *testing.T) {
		assert.Empty(t, UnwrapOnlineContainer(nil))
		assert.Empty(t, UnwrapOnlineContainer("oops"))
		assert.Empty(t, UnwrapOnlineContainer(map[string]any{"results": []any{record}}))
	})

	t.Run("Non-record items are skipped", func(t *testing.T) {
		recs := UnwrapOnlineContainer([]any{record, "garbage", 42})
		assert.Len(t, recs, 1)
	})
}
