package request

import (
	"time"

	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RestaurantID  uuid.UUID   `json:"restaurantId" binding:"required"`
	CustomerID    *uuid.UUID  `json:"customerId,omitempty"`
	GuestID       *uuid.UUID  `json:"guestId,omitempty"`
	BookingTime   time.Time   `json:"bookingTime" binding:"required"`
	AdultsCount   *int        `json:"adultsCount,omitempty"`
	ChildrenCount *int        `json:"childrenCount,omitempty"`
	Note          string      `json:"note" binding:"max=1000"`
	DishIDs       []uuid.UUID `json:"dishIds,omitempty" binding:"omitempty,uuid_list"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		RestaurantID:  r.RestaurantID,
		CustomerID:    r.CustomerID,
		GuestID:       r.GuestID,
		BookingTime:   r.BookingTime,
		AdultsCount:   r.AdultsCount,
		ChildrenCount: r.ChildrenCount,
		Note:          r.Note,
		DishIDs:       r.DishIDs,
	}
}

// AssignTablesRequest replaces the reservation wholesale. An empty list is
// rejected by the engine, a missing one by binding.
type AssignTablesRequest struct {
	TableIDs        []uuid.UUID `json:"tableIds" binding:"required,uuid_list"`
	Status          string      `json:"status,omitempty" binding:"omitempty,booking_status"`
	ExpectedVersion *int64      `json:"expectedVersion,omitempty"`
}

func (r AssignTablesRequest) ToCommand(bookingID uuid.UUID) commands.AssignTablesRequest {
	return commands.AssignTablesRequest{
		BookingID:       bookingID,
		TableIDs:        r.TableIDs,
		Status:          r.Status,
		ExpectedVersion: r.ExpectedVersion,
	}
}

type SetReservationStatusRequest struct {
	Status          string `json:"status" binding:"required"`
	ExpectedVersion *int64 `json:"expectedVersion,omitempty"`
}

func (r SetReservationStatusRequest) ToCommand(bookingID uuid.UUID) commands.SetReservationStatusRequest {
	return commands.SetReservationStatusRequest{
		BookingID:       bookingID,
		Status:          r.Status,
		ExpectedVersion: r.ExpectedVersion,
	}
}

// PatchBookingRequest carries only whitelisted fields; anything else in the
// body is ignored.
type PatchBookingRequest struct {
	BookingTime     *time.Time `json:"bookingTime,omitempty"`
	AdultsCount     *int       `json:"adultsCount,omitempty"`
	ChildrenCount   *int       `json:"childrenCount,omitempty"`
	Note            *string    `json:"note,omitempty" binding:"omitempty,max=1000"`
	Status          *string    `json:"status,omitempty" binding:"omitempty,booking_status"`
	ExpectedVersion *int64     `json:"expectedVersion,omitempty"`
}

func (r PatchBookingRequest) ToCommand(bookingID uuid.UUID) commands.PatchFieldsRequest {
	return commands.PatchFieldsRequest{
		BookingID:       bookingID,
		BookingTime:     r.BookingTime,
		AdultsCount:     r.AdultsCount,
		ChildrenCount:   r.ChildrenCount,
		Note:            r.Note,
		Status:          r.Status,
		ExpectedVersion: r.ExpectedVersion,
	}
}

// BookingListQuery filters GET /bookings. Malformed IDs fail binding.
type BookingListQuery struct {
	RestaurantID string `form:"restaurantId" binding:"omitempty,uuid"`
	CustomerID   string `form:"customerId" binding:"omitempty,uuid"`
	TableID      string `form:"tableId" binding:"omitempty,uuid"`
}

func (q BookingListQuery) ToFilter() queries.BookingListFilter {
	return queries.BookingListFilter{
		RestaurantID: optionalID(q.RestaurantID),
		CustomerID:   optionalID(q.CustomerID),
		TableID:      optionalID(q.TableID),
	}
}
