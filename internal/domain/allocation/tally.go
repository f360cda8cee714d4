package allocation

import (
	"slices"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/domain/table"
)

type TableCount struct {
	Table *table.Table
	Count int
}

// DailyTally holds the per-day table figures. The tally is built per call and
// never shared.
type DailyTally struct {
	// BookedTableSlots counts every stored ref, resolved or not, duplicates included.
	BookedTableSlots int
	// Frequencies is ordered by count descending, then table ID.
	Frequencies []TableCount
	MostBooked  *TableCount
	LeastBooked *TableCount
}

func TallyDay(bookings []*booking.Booking, tables []*table.Table) DailyTally {
	idx := table.IndexByID(tables)
	counts := make(map[*table.Table]int)
	var tally DailyTally

	for _, b := range bookings {
		refs := b.TableIDs()
		tally.BookedTableSlots += len(refs)
		for _, id := range refs {
			if t, ok := idx[id]; ok {
				counts[t]++
			}
		}
	}

	tally.Frequencies = make([]TableCount, 0, len(counts))
	for t, n := range counts {
		tally.Frequencies = append(tally.Frequencies, TableCount{Table: t, Count: n})
	}
	slices.SortFunc(tally.Frequencies, func(a, b TableCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return table.CompareIDs(a.Table.ID(), b.Table.ID())
	})

	if n := len(tally.Frequencies); n > 0 {
		most := tally.Frequencies[0]
		least := tally.Frequencies[n-1]
		tally.MostBooked = &most
		tally.LeastBooked = &least
	}
	return tally
}
