package domain

import "time"

type PaymentSource string

const (
	PaymentSourceCashier PaymentSource = "cashier"
	PaymentSourceOnline  PaymentSource = "online"
)

// BillEvent is the canonical shape of one issued bill.
type BillEvent struct {
	BillID    string    `json:"bill_id"`
	IssuedAt  time.Time `json:"issued_at"`
	AmountDue Money     `json:"amount_due"`
	Penalty   Money     `json:"penalty"`
}

// PaymentEvent is the canonical shape of one completed payment from either
// channel. Any of the identifier fields may be absent in the source record.
type PaymentEvent struct {
	Source          PaymentSource `json:"source"`
	PaidAt          time.Time     `json:"paid_at"`
	AmountPaid      Money         `json:"amount_paid"`
	PenaltyPaid     Money         `json:"penalty_paid"`
	Method          string        `json:"method"`
	ReceiptNumber   string        `json:"receipt_number"`
	ReferenceNumber string        `json:"reference_number"`
	RawID           string        `json:"raw_id"`
}

// LedgerEntry is one row of the customer ledger. Placeholder rows carry no
// date and a nil balance; dated rows always carry a balance once the
// chronological pass has run. Exactly one of debit/credit is non-zero on a
// real entry.
type LedgerEntry struct {
	Date          *time.Time `json:"date"`
	Particulars   string     `json:"particulars"`
	Reference     string     `json:"reference"`
	DebitCents    int64      `json:"debit_cents"`
	CreditCents   int64      `json:"credit_cents"`
	BalanceCents  *int64     `json:"balance_cents"`
	IsPlaceholder bool       `json:"is_placeholder"`
}

// LedgerReport is the reconciled customer ledger: the Jan-Dec display grid
// for the dominant year plus summary totals computed from dated entries only.
type LedgerReport struct {
	Year                  int            `json:"year"`
	Entries               []*LedgerEntry `json:"entries"`
	TotalBillingsCents    int64          `json:"total_billings_cents"`
	TotalCollectionsCents int64          `json:"total_collections_cents"`
	CurrentBalanceCents   int64          `json:"current_balance_cents"`
	HasEntries            bool           `json:"has_entries"`
	DroppedPayments       int            `json:"dropped_payments"`      // payment records excluded for lacking a usable date or approval
	DeduplicatedPayments  int            `json:"deduplicated_payments"` // cross-channel duplicates collapsed
}
