//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

// FixedNow is the reference instant used by builders and usecase tests.
var FixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type BookingBuilder struct {
	ID                uuid.UUID
	RestaurantID      uuid.UUID
	CustomerID        *uuid.UUID
	GuestID           *uuid.UUID
	BookingTime       time.Time
	AdultsCount       int
	ChildrenCount     int
	Note              string
	Status            booking.Status
	DishIDs           []uuid.UUID
	TableIDs          []uuid.UUID
	ReservationStatus booking.ReservationStatus
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	customerID := uuid.New()
	return &BookingBuilder{
		ID:            uuid.New(),
		RestaurantID:  uuid.New(),
		CustomerID:    &customerID,
		BookingTime:   FixedNow.Add(24 * time.Hour),
		AdultsCount:   2,
		ChildrenCount: 0,
		Note:          "window seat",
		Status:        booking.StatusPending,
		Version:       1,
		CreatedAt:     FixedNow,
		UpdatedAt:     FixedNow,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// BuildDomain goes through NewBooking, so creation rules apply.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	adults, children := b.AdultsCount, b.ChildrenCount
	return booking.NewBooking(clock.NewMockClock(FixedNow), booking.NewBookingParams{
		RestaurantID:  b.RestaurantID,
		CustomerID:    b.CustomerID,
		GuestID:       b.GuestID,
		BookingTime:   b.BookingTime,
		AdultsCount:   &adults,
		ChildrenCount: &children,
		Note:          b.Note,
		DishIDs:       b.DishIDs,
	})
}

// BuildStored reconstructs a persisted booking, bypassing creation rules.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	var res *booking.Reservation
	if len(b.TableIDs) > 0 {
		status := b.ReservationStatus
		if status == "" {
			status = booking.ReservationReserved
		}
		res = booking.ReconstructReservation(b.TableIDs, status)
	}
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:            b.ID,
		RestaurantID:  b.RestaurantID,
		CustomerID:    b.CustomerID,
		GuestID:       b.GuestID,
		BookingTime:   b.BookingTime,
		AdultsCount:   b.AdultsCount,
		ChildrenCount: b.ChildrenCount,
		Note:          b.Note,
		Status:        b.Status,
		DishIDs:       b.DishIDs,
		Reservation:   res,
		Version:       b.Version,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	})
}

func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithRestaurantID(id uuid.UUID) *BookingBuilder {
	b.RestaurantID = id
	return b
}

func (b *BookingBuilder) WithBookingTime(t time.Time) *BookingBuilder {
	b.BookingTime = t
	return b
}

func (b *BookingBuilder) WithTables(ids ...uuid.UUID) *BookingBuilder {
	b.TableIDs = ids
	if len(ids) > 0 && b.Status == booking.StatusPending {
		b.Status = booking.StatusTableAssigned
	}
	return b
}

func (b *BookingBuilder) WithReservationStatus(s booking.ReservationStatus) *BookingBuilder {
	b.ReservationStatus = s
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithVersion(v int64) *BookingBuilder {
	b.Version = v
	return b
}

func (b *BookingBuilder) AsGuest() *BookingBuilder {
	guestID := uuid.New()
	b.CustomerID = nil
	b.GuestID = &guestID
	return b
}
