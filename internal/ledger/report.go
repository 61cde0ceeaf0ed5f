package ledger

import (
	"time"

	"waterbill-backend/internal/domain"
)

// BuildReport runs the full reconciliation pipeline over the three
// collaborator feeds: normalize, deduplicate payments, expand to ledger
// entries, balance chronologically, arrange for display, and aggregate.
// It is a pure projection; nothing in the inputs is mutated and repeated
// calls over the same data produce the same report.
func BuildReport(bills []domain.BillRecord, cashier []domain.PaymentRecord, onlinePayload any, now time.Time) *domain.LedgerReport {
	billEvents := make([]domain.BillEvent, 0, len(bills))
	for _, rec := range bills {
		if ev := NormalizeBill(rec); ev != nil {
			billEvents = append(billEvents, *ev)
		}
	}

	// Cashier postings first, then online submissions. Dedup keeps the first
	// copy per fingerprint; duplicates are financially identical so feed
	// order cannot change any amount.
	onlineRecords := UnwrapOnlineContainer(onlinePayload)
	paymentEvents := make([]domain.PaymentEvent, 0, len(cashier)+len(onlineRecords))
	dropped := 0
	for _, rec := range cashier {
		ev := NormalizePayment(domain.PaymentSourceCashier, rec)
		if ev == nil {
			dropped++
			continue
		}
		paymentEvents = append(paymentEvents, *ev)
	}
	for _, rec := range onlineRecords {
		ev := NormalizePayment(domain.PaymentSourceOnline, rec)
		if ev == nil {
			dropped++
			continue
		}
		paymentEvents = append(paymentEvents, *ev)
	}

	deduped := DedupPayments(paymentEvents)

	entries := BuildBillEntries(billEvents)
	entries = append(entries, BuildPaymentEntries(deduped)...)

	report := &domain.LedgerReport{
		DroppedPayments:      dropped,
		DeduplicatedPayments: len(paymentEvents) - len(deduped),
	}

	report.CurrentBalanceCents = ApplyRunningBalance(entries)
	for _, e := range entries {
		report.TotalBillingsCents += e.DebitCents
		report.TotalCollectionsCents += e.CreditCents
		if e.Date != nil {
			report.HasEntries = true
		}
	}

	report.Year = DominantYear(entries, now.Year())
	if report.HasEntries {
		report.Entries = ArrangeByMonth(entries, report.Year)
	}
	return report
}
