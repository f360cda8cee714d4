package allocation

import (
	"time"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/domain/table"
)

// BookedTable is the booking nearest to now that holds a table.
type BookedTable struct {
	Table             *table.Table
	Booking           *booking.Booking
	BookingTime       time.Time
	ReservationStatus booking.ReservationStatus
}

// ClosestPerTable keeps, per table, the booking whose time is nearest to now.
// Bookings are expected in store order (booking time, then ID); a later
// candidate only replaces the current pick when strictly closer, so ties go
// to the earlier booking. Unresolved refs are skipped. The result is ordered
// by table ID.
func ClosestPerTable(now time.Time, bookings []*booking.Booking, tables []*table.Table) []BookedTable {
	idx := table.IndexByID(tables)
	best := make(map[*table.Table]BookedTable)
	distance := make(map[*table.Table]time.Duration)

	for _, b := range bookings {
		res := b.Reservation()
		if res == nil {
			continue
		}
		d := absDuration(b.BookingTime().Sub(now))
		for _, id := range res.TableIDs() {
			t, ok := idx[id]
			if !ok {
				continue
			}
			if cur, seen := distance[t]; seen && d >= cur {
				continue
			}
			distance[t] = d
			best[t] = BookedTable{
				Table:             t,
				Booking:           b,
				BookingTime:       b.BookingTime(),
				ReservationStatus: res.Status(),
			}
		}
	}

	keys := make([]*table.Table, 0, len(best))
	for t := range best {
		keys = append(keys, t)
	}
	out := make([]BookedTable, 0, len(best))
	for _, t := range table.SortByID(keys) {
		out = append(out, best[t])
	}
	return out
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
