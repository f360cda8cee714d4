//go:build unit

package memstore

import (
	"context"
	"slices"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/domain/table"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

func (s *Store) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failed("failed to find booking"); err != nil {
		return nil, err
	}
	b, ok := s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return clone(b, b.Version()), nil
}

func (s *Store) FindBookings(ctx context.Context, f queries.BookingFilter) ([]*booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failed("failed to find bookings"); err != nil {
		return nil, err
	}
	var out []*booking.Booking
	for _, b := range s.bookings {
		t := b.BookingTime()
		switch {
		case f.From != nil && t.Before(*f.From):
			continue
		case f.To != nil && !t.Before(*f.To):
			continue
		case f.RestaurantID != nil && b.RestaurantID() != *f.RestaurantID:
			continue
		case f.WithReservation && b.Reservation() == nil:
			continue
		case f.CustomerID != nil && (b.Party().CustomerID() == nil || *b.Party().CustomerID() != *f.CustomerID):
			continue
		case f.TableID != nil && !slices.Contains(b.TableIDs(), *f.TableID):
			continue
		}
		out = append(out, clone(b, b.Version()))
	}
	sortBookings(out)
	return out, nil
}

func (s *Store) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*table.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failed("failed to find tables"); err != nil {
		return nil, err
	}
	var out []*table.Table
	for _, id := range booking.DistinctIDs(ids) {
		if t, ok := s.tables[id]; ok {
			out = append(out, t)
		}
	}
	return table.SortByID(out), nil
}

func (s *Store) FindExcludingIDs(ctx context.Context, ids []uuid.UUID, restaurantID *uuid.UUID) ([]*table.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failed("failed to find tables"); err != nil {
		return nil, err
	}
	var out []*table.Table
	for _, t := range s.tables {
		if slices.Contains(ids, t.ID()) {
			continue
		}
		if restaurantID != nil && t.RestaurantID() != *restaurantID {
			continue
		}
		out = append(out, t)
	}
	return table.SortByID(out), nil
}
