package ledger

import (
	"fmt"
	"strings"
	"time"

	"waterbill-backend/internal/domain"
)

// placeholdersPerEmptyMonth is the number of rows (bill, penalty, payment)
// inserted for a month with no activity.
const placeholdersPerEmptyMonth = 3

// DominantYear selects the calendar year for the display skeleton: the
// latest year with any dated entry, or fallbackYear when the ledger is empty.
func DominantYear(entries []*domain.LedgerEntry, fallbackYear int) int {
	year := 0
	for _, e := range entries {
		if e.Date != nil && e.Date.Year() > year {
			year = e.Date.Year()
		}
	}
	if year == 0 {
		return fallbackYear
	}
	return year
}

// ArrangeByMonth lays dated entries onto the fixed Jan-Dec grid for the
// dominant year. Months with no activity receive exactly three placeholder
// rows (bill, penalty, payment) with zero amounts and no balance, so the
// rendered ledger always shows a uniform twelve-month skeleton. Placeholders
// never carry amounts and so cannot disturb totals or balances.
func ArrangeByMonth(entries []*domain.LedgerEntry, year int) []*domain.LedgerEntry {
	byMonth := make(map[time.Month][]*domain.LedgerEntry)
	for _, e := range entries {
		if e.Date == nil || e.Date.Year() != year {
			continue
		}
		m := e.Date.Month()
		byMonth[m] = append(byMonth[m], e)
	}

	arranged := make([]*domain.LedgerEntry, 0, len(entries)+12*placeholdersPerEmptyMonth)
	for m := time.January; m <= time.December; m++ {
		if rows, ok := byMonth[m]; ok {
			arranged = append(arranged, rows...)
			continue
		}
		arranged = append(arranged,
			&domain.LedgerEntry{
				Particulars:   fmt.Sprintf("%s %d BILL", strings.ToUpper(m.String()), year),
				IsPlaceholder: true,
			},
			&domain.LedgerEntry{
				Particulars:   "PENALTY",
				IsPlaceholder: true,
			},
			&domain.LedgerEntry{
				Particulars:   "PAYMENT",
				IsPlaceholder: true,
			},
		)
	}
	return arranged
}
