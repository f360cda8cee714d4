//go:build unit

// Package memstore is an in-memory stand-in for the Postgres unit of work and
// read stores. Writes apply immediately and are undone on rollback, so
// interleavings can be driven from tests through OnSave.
package memstore

import (
	"bytes"
	"slices"
	"sync"
	"time"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/domain/table"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Job struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type Store struct {
	mu          sync.Mutex
	loc         *time.Location
	bookings    map[uuid.UUID]*booking.Booking
	tables      map[uuid.UUID]*table.Table
	restaurants map[uuid.UUID]string
	customers   map[uuid.UUID]string
	guests      map[uuid.UUID]string
	jobs        []Job
	failure     error
	onSave      func()
}

func New() *Store {
	return &Store{
		loc:         time.UTC,
		bookings:    map[uuid.UUID]*booking.Booking{},
		tables:      map[uuid.UUID]*table.Table{},
		restaurants: map[uuid.UUID]string{},
		customers:   map[uuid.UUID]string{},
		guests:      map[uuid.UUID]string{},
	}
}

var (
	_ shared.UnitOfWork        = (*Store)(nil)
	_ queries.BookingReadStore = (*Store)(nil)
	_ queries.TableReadStore   = (*Store)(nil)
	_ queries.StatsReadStore   = (*Store)(nil)
)

// Seeding

func (s *Store) AddRestaurant(id uuid.UUID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants[id] = name
}

func (s *Store) AddCustomer(id uuid.UUID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[id] = name
}

func (s *Store) AddGuest(id uuid.UUID, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.guests[id] = name
}

func (s *Store) AddTables(tables ...*table.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range tables {
		s.tables[t.ID()] = t
		if _, ok := s.restaurants[t.RestaurantID()]; !ok {
			s.restaurants[t.RestaurantID()] = "restaurant"
		}
	}
}

// PutBooking stores b as-is, bypassing version handling.
func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = clone(b, b.Version())
}

// Inspection

func (s *Store) Booking(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil
	}
	return clone(b, b.Version())
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.jobs)
}

// Fault injection

// SetFailure makes every store call fail with err until cleared with nil.
func (s *Store) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// OnSave registers a hook run once at the start of the next booking save,
// after the caller has read its copy.
func (s *Store) OnSave(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSave = fn
}

func (s *Store) SetLocation(loc *time.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loc = loc
}

func (s *Store) failed(msg string) error {
	if s.failure == nil {
		return nil
	}
	return infra.WrapRepoErr(msg, s.failure)
}

func clone(b *booking.Booking, version int64) *booking.Booking {
	var res *booking.Reservation
	if r := b.Reservation(); r != nil {
		res = booking.ReconstructReservation(r.TableIDs(), r.Status())
	}
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:            b.ID(),
		RestaurantID:  b.RestaurantID(),
		CustomerID:    b.Party().CustomerID(),
		GuestID:       b.Party().GuestID(),
		BookingTime:   b.BookingTime(),
		AdultsCount:   b.AdultsCount(),
		ChildrenCount: b.ChildrenCount(),
		Note:          b.Note().String(),
		Status:        b.Status(),
		DishIDs:       b.DishIDs(),
		Reservation:   res,
		Version:       version,
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	})
}

// checkRow mirrors the CHECK constraints of the bookings table.
func checkRow(b *booking.Booking) error {
	p := b.Party()
	switch {
	case b.AdultsCount() < 0 || b.ChildrenCount() < 0:
		return infra.WrapRepoErr("bookings_counts_check", nil, infra.KindCheckViolated)
	case !b.Status().IsValid():
		return infra.WrapRepoErr("bookings_status_check", nil, infra.KindCheckViolated)
	case (p.CustomerID() == nil) == (p.GuestID() == nil):
		return infra.WrapRepoErr("bookings_party_check", nil, infra.KindCheckViolated)
	}
	return nil
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

func sortBookings(bs []*booking.Booking) {
	slices.SortFunc(bs, func(a, b *booking.Booking) int {
		if c := a.BookingTime().Compare(b.BookingTime()); c != 0 {
			return c
		}
		return compareIDs(a.ID(), b.ID())
	})
}
