package booking

import (
	"time"

	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

var (
	ErrBookingTimeNotInFuture = errs.New("booking time must be in the future")
	ErrPartyRequired          = errs.New("booking requires a customer or a guest")
	ErrAmbiguousParty         = errs.New("booking cannot have both a customer and a guest")
	ErrNegativeHeadcount      = errs.New("adults and children counts cannot be negative")
	ErrEmptyTableList         = errs.New("missing required reservation data")
	ErrReservationNotFound    = errs.New("reservation not found in booking")
	ErrEmptyReservationStatus = errs.New("reservation status is required")
	ErrInvalidTransition      = errs.New("invalid reservation state transition")
)

const DefaultAdultsCount = 1

type Booking struct {
	id            uuid.UUID
	restaurantID  uuid.UUID
	party         Party
	bookingTime   time.Time
	adultsCount   int
	childrenCount int
	note          Note
	status        Status
	dishIDs       []uuid.UUID
	reservation   *Reservation
	version       int64
	createdAt     time.Time
	updatedAt     time.Time
}

type NewBookingParams struct {
	RestaurantID  uuid.UUID
	CustomerID    *uuid.UUID
	GuestID       *uuid.UUID
	BookingTime   time.Time
	AdultsCount   *int
	ChildrenCount *int
	Note          string
	DishIDs       []uuid.UUID
}

func NewBooking(clk clock.Clock, p NewBookingParams) (*Booking, error) {
	now := clk.Now()
	if !p.BookingTime.After(now) {
		return nil, ErrBookingTimeNotInFuture
	}

	party, err := NewParty(p.CustomerID, p.GuestID)
	if err != nil {
		return nil, err
	}

	adults := patch.Coalesce(p.AdultsCount, DefaultAdultsCount)
	children := patch.Coalesce(p.ChildrenCount, 0)
	if adults < 0 || children < 0 {
		return nil, ErrNegativeHeadcount
	}

	return &Booking{
		id:            uuid.New(),
		restaurantID:  p.RestaurantID,
		party:         party,
		bookingTime:   p.BookingTime,
		adultsCount:   adults,
		childrenCount: children,
		note:          NewNote(p.Note),
		status:        StatusPending,
		dishIDs:       DistinctIDs(p.DishIDs),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type ReconstructParams struct {
	ID            uuid.UUID
	RestaurantID  uuid.UUID
	CustomerID    *uuid.UUID
	GuestID       *uuid.UUID
	BookingTime   time.Time
	AdultsCount   int
	ChildrenCount int
	Note          string
	Status        Status
	DishIDs       []uuid.UUID
	Reservation   *Reservation
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructBooking(p ReconstructParams) *Booking {
	var res *Reservation
	if p.Reservation != nil {
		res = ReconstructReservation(p.Reservation.tableIDs, p.Reservation.status)
	}
	return &Booking{
		id:            p.ID,
		restaurantID:  p.RestaurantID,
		party:         reconstructParty(p.CustomerID, p.GuestID),
		bookingTime:   p.BookingTime,
		adultsCount:   p.AdultsCount,
		childrenCount: p.ChildrenCount,
		note:          Note{value: p.Note},
		status:        p.Status,
		dishIDs:       copyIDs(p.DishIDs),
		reservation:   res,
		version:       p.Version,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

func (b *Booking) State() ReservationState {
	if b.reservation == nil {
		return StateUnassigned
	}
	return StateAssigned
}

// AssignTables replaces any previous reservation wholesale. Table existence
// is checked by the caller before this is invoked.
func (b *Booking) AssignTables(tableIDs []uuid.UUID, status ReservationStatus, now time.Time) error {
	if !b.State().CanTransitionTo(StateAssigned) {
		return ErrInvalidTransition
	}
	res, err := NewReservation(tableIDs, status)
	if err != nil {
		return err
	}
	b.reservation = res
	b.status = StatusTableAssigned
	b.updatedAt = now
	return nil
}

func (b *Booking) SetReservationStatus(status ReservationStatus, now time.Time) error {
	if b.reservation == nil {
		return ErrReservationNotFound
	}
	if status == "" {
		return ErrEmptyReservationStatus
	}
	b.reservation = ReconstructReservation(b.reservation.tableIDs, status)
	b.updatedAt = now
	return nil
}

// Patch holds the whitelisted scalar fields of a generic update.
type Patch struct {
	BookingTime   *time.Time
	AdultsCount   *int
	ChildrenCount *int
	Note          *string
	Status        *Status
}

func (p Patch) IsEmpty() bool {
	return !patch.Any(p.BookingTime != nil, p.AdultsCount != nil, p.ChildrenCount != nil, p.Note != nil, p.Status != nil)
}

// ApplyPatch does not re-check that bookingTime lies in the future, and leaves
// count and status validation to the store schema.
func (b *Booking) ApplyPatch(p Patch, now time.Time) {
	b.bookingTime = patch.Coalesce(p.BookingTime, b.bookingTime)
	b.adultsCount = patch.Coalesce(p.AdultsCount, b.adultsCount)
	b.childrenCount = patch.Coalesce(p.ChildrenCount, b.childrenCount)
	if p.Note != nil {
		b.note = NewNote(*p.Note)
	}
	b.status = patch.Coalesce(p.Status, b.status)
	b.updatedAt = now
}

// TableIDs returns the reservation table refs, or nil when unassigned.
func (b *Booking) TableIDs() []uuid.UUID {
	if b.reservation == nil {
		return nil
	}
	return b.reservation.TableIDs()
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) RestaurantID() uuid.UUID   { return b.restaurantID }
func (b *Booking) Party() Party              { return b.party }
func (b *Booking) BookingTime() time.Time    { return b.bookingTime }
func (b *Booking) AdultsCount() int          { return b.adultsCount }
func (b *Booking) ChildrenCount() int        { return b.childrenCount }
func (b *Booking) Note() Note                { return b.note }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) DishIDs() []uuid.UUID      { return copyIDs(b.dishIDs) }
func (b *Booking) Reservation() *Reservation { return b.reservation }
func (b *Booking) Version() int64            { return b.version }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
