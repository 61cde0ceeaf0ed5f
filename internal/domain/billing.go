package domain

import "time"

// BillRecord is a billing row as stored by the billing collaborator. Amounts
// are kept as the decimal text the source produced; conversion to cents
// happens at the normalization boundary.
type BillRecord struct {
	BillID    string     `json:"bill_id"`
	AccountNo string     `json:"account_no"`
	CreatedAt *time.Time `json:"created_at"`
	AmountDue string     `json:"amount_due"`
	Penalty   string     `json:"penalty"`
}

// PaymentRecord is a raw payment row from either channel. Field names vary by
// source (cashier postings and online submissions use different schemas), so
// records stay opaque until the normalizer applies its ordered field lookups.
type PaymentRecord map[string]any
