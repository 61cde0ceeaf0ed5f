package ledger

import (
	"sort"

	"waterbill-backend/internal/domain"
)

// ApplyRunningBalance sorts the dated entries by calendar date (stable, so
// entries sharing a date keep their insertion order), walks them once
// accumulating debits minus credits, and records the running balance on each
// entry. The balance attaches to the entry itself, not its position, so the
// display arrangement can reorder rows without detaching balances.
// Returns the balance after the chronologically last dated entry.
func ApplyRunningBalance(entries []*domain.LedgerEntry) int64 {
	dated := make([]*domain.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if e.Date != nil {
			dated = append(dated, e)
		}
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].Date.Before(*dated[j].Date)
	})

	var running int64
	for _, e := range dated {
		running += e.DebitCents
		running -= e.CreditCents
		balance := running
		e.BalanceCents = &balance
	}
	return running
}
