package ledger

import (
	"fmt"
	"strings"
	"time"

	"waterbill-backend/internal/domain"
)

// BuildBillEntries expands canonical bill events into ledger rows: one DR row
// per bill, plus a DR "PENALTY" row when a penalty was assessed. The penalty
// row inherits the bill's date so it participates in chronological balancing.
func BuildBillEntries(bills []domain.BillEvent) []*domain.LedgerEntry {
	entries := make([]*domain.LedgerEntry, 0, len(bills))
	for _, bill := range bills {
		issued := bill.IssuedAt
		entries = append(entries, &domain.LedgerEntry{
			Date:        &issued,
			Particulars: billParticulars(issued),
			Reference:   bill.BillID,
			DebitCents:  bill.AmountDue.Cents(),
		})
		if bill.Penalty.IsPositive() {
			penaltyDate := bill.IssuedAt
			entries = append(entries, &domain.LedgerEntry{
				Date:        &penaltyDate,
				Particulars: "PENALTY",
				Reference:   bill.BillID,
				DebitCents:  bill.Penalty.Cents(),
			})
		}
	}
	return entries
}

// BuildPaymentEntries expands deduplicated payment events into ledger rows:
// one CR row per payment, folding penalty-paid into the credit.
func BuildPaymentEntries(payments []domain.PaymentEvent) []*domain.LedgerEntry {
	entries := make([]*domain.LedgerEntry, 0, len(payments))
	for _, p := range payments {
		paidAt := p.PaidAt
		entries = append(entries, &domain.LedgerEntry{
			Date:        &paidAt,
			Particulars: paymentParticulars(p.Method),
			Reference:   paymentReference(p),
			CreditCents: p.AmountPaid.Add(p.PenaltyPaid).Cents(),
		})
	}
	return entries
}

func billParticulars(issued time.Time) string {
	return fmt.Sprintf("%s %d BILL", strings.ToUpper(issued.Month().String()), issued.Year())
}

func paymentParticulars(method string) string {
	if method == "" {
		return "PAYMENT"
	}
	return fmt.Sprintf("PAYMENT (%s)", strings.ToUpper(method))
}

func paymentReference(p domain.PaymentEvent) string {
	receipt := strings.TrimSpace(p.ReceiptNumber)
	reference := strings.TrimSpace(p.ReferenceNumber)
	switch {
	case receipt != "" && reference != "":
		return receipt + " / " + reference
	case receipt != "":
		return receipt
	default:
		return reference
	}
}
