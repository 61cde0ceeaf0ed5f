package ledger

import (
	"strconv"
	"strings"

	"waterbill-backend/internal/domain"
)

// fingerprintSep joins fingerprint components. It must never occur inside a
// component, so identifiers are trimmed before joining.
const fingerprintSep = "|"

// Fingerprint derives the composite identity used to detect the same
// real-world payment reported through both channels. It returns "" when every
// component is blank; such payments cannot be proven identical to anything
// and are never deduplicated.
func Fingerprint(p domain.PaymentEvent) string {
	date := ""
	if !p.PaidAt.IsZero() {
		date = p.PaidAt.Format("2006-01-02")
	}
	amount := ""
	if p.AmountPaid != 0 {
		amount = strconv.FormatInt(p.AmountPaid.Cents(), 10)
	}
	receipt := strings.TrimSpace(p.ReceiptNumber)
	reference := strings.TrimSpace(p.ReferenceNumber)
	rawID := strings.TrimSpace(p.RawID)

	if date == "" && amount == "" && receipt == "" && reference == "" && rawID == "" {
		return ""
	}
	return strings.Join([]string{date, amount, receipt, reference, rawID}, fingerprintSep)
}

// DedupPayments collapses payments that share a non-empty fingerprint,
// keeping the first occurrence in iteration order. Duplicates are financially
// identical by definition, so which copy survives changes no amount.
// The operation is idempotent.
func DedupPayments(events []domain.PaymentEvent) []domain.PaymentEvent {
	seen := make(map[string]struct{}, len(events))
	out := make([]domain.PaymentEvent, 0, len(events))
	for _, ev := range events {
		fp := Fingerprint(ev)
		if fp == "" {
			out = append(out, ev)
			continue
		}
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, ev)
	}
	return out
}
