package allocation

import (
	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/domain/table"

	"github.com/google/uuid"
)

// ResolvedBooking is a booking with its table refs hydrated. Tables keeps the
// order and duplicates of the stored refs; refs with no matching table are
// left out.
type ResolvedBooking struct {
	Booking *booking.Booking
	Tables  []*table.Table
}

type Resolution struct {
	Bookings []ResolvedBooking
	// Dangling lists distinct refs no table matched, in first-seen order.
	Dangling []uuid.UUID
}

// CollectTableIDs returns every table ref across bookings, duplicates kept.
func CollectTableIDs(bookings []*booking.Booking) []uuid.UUID {
	var ids []uuid.UUID
	for _, b := range bookings {
		ids = append(ids, b.TableIDs()...)
	}
	return ids
}

// Resolve attaches found tables to bookings. found is the result of a single
// batched lookup of booking.DistinctIDs(CollectTableIDs(bookings)).
func Resolve(bookings []*booking.Booking, found []*table.Table) Resolution {
	idx := table.IndexByID(found)
	res := Resolution{Bookings: make([]ResolvedBooking, 0, len(bookings))}
	dangling := make(map[uuid.UUID]struct{})

	for _, b := range bookings {
		refs := b.TableIDs()
		tables := make([]*table.Table, 0, len(refs))
		for _, id := range refs {
			t, ok := idx[id]
			if !ok {
				if _, seen := dangling[id]; !seen {
					dangling[id] = struct{}{}
					res.Dangling = append(res.Dangling, id)
				}
				continue
			}
			tables = append(tables, t)
		}
		res.Bookings = append(res.Bookings, ResolvedBooking{Booking: b, Tables: tables})
	}
	return res
}

// MissingIDs returns the requested ids with no matching table, deduplicated.
func MissingIDs(requested []uuid.UUID, found []*table.Table) []uuid.UUID {
	idx := table.IndexByID(found)
	var missing []uuid.UUID
	for _, id := range booking.DistinctIDs(requested) {
		if _, ok := idx[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
