//go:build unit

package memstore

import (
	"context"
	"slices"
	"strings"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

func (s *Store) CountBookings(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failed("failed to count bookings"); err != nil {
		return 0, err
	}
	return int64(len(s.bookings)), nil
}

func (s *Store) CountBookingsByStatus(ctx context.Context) ([]queries.StatusCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int64{}
	for _, b := range s.bookings {
		counts[b.Status().String()]++
	}
	out := make([]queries.StatusCount, 0, len(counts))
	for st, n := range counts {
		out = append(out, queries.StatusCount{Status: st, Count: n})
	}
	slices.SortFunc(out, func(a, b queries.StatusCount) int { return strings.Compare(a.Status, b.Status) })
	return out, nil
}

func (s *Store) CountTableSlotsByStatuses(ctx context.Context, statuses []booking.Status) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, b := range s.bookings {
		if slices.Contains(statuses, b.Status()) {
			n += int64(len(b.TableIDs()))
		}
	}
	return n, nil
}

func (s *Store) CountBookingsByMonth(ctx context.Context) ([]queries.MonthCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int64{}
	for _, b := range s.bookings {
		counts[b.BookingTime().In(s.loc).Format("2006-01")]++
	}
	out := make([]queries.MonthCount, 0, len(counts))
	for m, n := range counts {
		out = append(out, queries.MonthCount{Month: m, Count: n})
	}
	slices.SortFunc(out, func(a, b queries.MonthCount) int { return strings.Compare(a.Month, b.Month) })
	return out, nil
}

func (s *Store) TopCustomers(ctx context.Context, limit int32) ([]queries.RankedEntity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[uuid.UUID]int64{}
	for _, b := range s.bookings {
		if id := b.Party().CustomerID(); id != nil {
			counts[*id]++
		}
	}
	return rank(counts, s.customers, limit), nil
}

func (s *Store) TopRestaurants(ctx context.Context, limit int32) ([]queries.RankedEntity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[uuid.UUID]int64{}
	for _, b := range s.bookings {
		counts[b.RestaurantID()]++
	}
	return rank(counts, s.restaurants, limit), nil
}

func (s *Store) CountCustomers(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.customers)), nil
}

func (s *Store) CountGuests(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.guests)), nil
}

func (s *Store) CountRestaurants(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.restaurants)), nil
}

func (s *Store) CountTables(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.tables)), nil
}

func rank(counts map[uuid.UUID]int64, names map[uuid.UUID]string, limit int32) []queries.RankedEntity {
	out := make([]queries.RankedEntity, 0, len(counts))
	for id, n := range counts {
		out = append(out, queries.RankedEntity{ID: id, Name: names[id], Bookings: n})
	}
	slices.SortFunc(out, func(a, b queries.RankedEntity) int {
		if a.Bookings != b.Bookings {
			if a.Bookings > b.Bookings {
				return -1
			}
			return 1
		}
		return compareIDs(a.ID, b.ID)
	})
	if int(limit) < len(out) {
		out = out[:limit]
	}
	return out
}
