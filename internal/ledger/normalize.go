// Package ledger implements the customer ledger reconciliation engine: it
// normalizes bill and payment records from the cashier and online channels,
// collapses cross-channel duplicates, and projects a chronologically balanced
// twelve-month ledger. The whole pipeline is pure computation; fetching the
// underlying records is the caller's concern.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"waterbill-backend/internal/domain"
)

// Ordered field lookups for the payment channels. For each canonical field the
// first present, non-empty source field wins. Field-presence decisions live
// here and nowhere else.
var (
	paymentDateFields   = []string{"payment_date", "created_at", "createdAt", "approved_at", "approvedAt"}
	paymentAmountFields = []string{"amount_paid", "amount", "paidAmount", "total_amount"}
	penaltyPaidFields   = []string{"penalty_paid", "penalty"}
	methodFields        = []string{"payment_method", "method"}
	receiptFields       = []string{"receipt_number", "or_number"}
	referenceFields     = []string{"reference_number", "reference"}
	// The generic "id" key is deliberately not mapped: each channel assigns
	// its own local id to the same real-world payment (a cashier row's
	// surrogate key, a gateway's submission id), so it can never prove two
	// cross-channel records identical — only distinct. Mapping it into the
	// fingerprint would defeat cross-channel deduplication entirely.
	rawIDFields = []string{"payment_id", "submission_id", "transaction_id"}
	statusFields        = []string{"status", "approval_status"}
)

// Container keys an online submission feed may wrap its records in.
var onlineContainerKeys = []string{"payments", "submissions", "data"}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"01/02/2006",
}

// NormalizeBill maps a stored bill row to its canonical event. Bills without
// an issue date cannot be placed on the ledger and are dropped.
func NormalizeBill(rec domain.BillRecord) *domain.BillEvent {
	if rec.CreatedAt == nil {
		return nil
	}
	return &domain.BillEvent{
		BillID:    rec.BillID,
		IssuedAt:  *rec.CreatedAt,
		AmountDue: domain.MoneyFromDecimal(rec.AmountDue),
		Penalty:   domain.MoneyFromDecimal(rec.Penalty),
	}
}

// NormalizePayment maps one raw payment record to its canonical event.
// It returns nil when the record has no usable timestamp, or when an
// online record carries a non-approved status. An absent status is treated
// as approved, matching cashier postings which carry no status field.
func NormalizePayment(source domain.PaymentSource, rec domain.PaymentRecord) *domain.PaymentEvent {
	if rec == nil {
		return nil
	}

	if source == domain.PaymentSourceOnline && !isApproved(firstString(rec, statusFields)) {
		return nil
	}

	paidAt, ok := firstDate(rec, paymentDateFields)
	if !ok {
		return nil
	}

	return &domain.PaymentEvent{
		Source:          source,
		PaidAt:          paidAt,
		AmountPaid:      firstMoney(rec, paymentAmountFields),
		PenaltyPaid:     firstMoney(rec, penaltyPaidFields),
		Method:          firstString(rec, methodFields),
		ReceiptNumber:   firstString(rec, receiptFields),
		ReferenceNumber: firstString(rec, referenceFields),
		RawID:           firstString(rec, rawIDFields),
	}
}

// UnwrapOnlineContainer extracts the record list from an online submission
// payload, which may be a bare array or a wrapper object keyed by one of
// payments/submissions/data (first matching key wins). Anything else yields
// no records.
func UnwrapOnlineContainer(payload any) []domain.PaymentRecord {
	switch v := payload.(type) {
	case nil:
		return nil
	case []domain.PaymentRecord:
		return v
	case []any:
		return toRecords(v)
	case []map[string]any:
		recs := make([]domain.PaymentRecord, 0, len(v))
		for _, m := range v {
			recs = append(recs, domain.PaymentRecord(m))
		}
		return recs
	case map[string]any:
		for _, key := range onlineContainerKeys {
			inner, ok := v[key]
			if !ok {
				continue
			}
			if list, ok := inner.([]any); ok {
				return toRecords(list)
			}
			return nil
		}
		return nil
	default:
		return nil
	}
}

func toRecords(list []any) []domain.PaymentRecord {
	recs := make([]domain.PaymentRecord, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			recs = append(recs, domain.PaymentRecord(m))
		}
	}
	return recs
}

func isApproved(status string) bool {
	if status == "" {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "success", "successful":
		return true
	default:
		return false
	}
}

func firstString(rec domain.PaymentRecord, fields []string) string {
	for _, f := range fields {
		v, ok := rec[f]
		if !ok || v == nil {
			continue
		}
		s := strings.TrimSpace(stringify(v))
		if s != "" {
			return s
		}
	}
	return ""
}

func firstMoney(rec domain.PaymentRecord, fields []string) domain.Money {
	for _, f := range fields {
		v, ok := rec[f]
		if !ok || v == nil {
			continue
		}
		return domain.MoneyFromAny(v)
	}
	return 0
}

func firstDate(rec domain.PaymentRecord, fields []string) (time.Time, bool) {
	for _, f := range fields {
		v, ok := rec[f]
		if !ok || v == nil {
			continue
		}
		if t, ok := parseDate(v); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseDate(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		if val.IsZero() {
			return time.Time{}, false
		}
		return val, true
	case *time.Time:
		if val == nil || val.IsZero() {
			return time.Time{}, false
		}
		return *val, true
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; identifiers are whole numbers
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
