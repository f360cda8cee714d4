package response

import (
	"time"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TableResponse struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
}

type ReservationResponse struct {
	TableIDs []uuid.UUID     `json:"tableIds"`
	Tables   []TableResponse `json:"tables,omitempty"`
	Status   string          `json:"status"`
}

type BookingResponse struct {
	ID            uuid.UUID            `json:"id"`
	RestaurantID  uuid.UUID            `json:"restaurantId"`
	CustomerID    *uuid.UUID           `json:"customerId,omitempty"`
	GuestID       *uuid.UUID           `json:"guestId,omitempty"`
	BookingTime   time.Time            `json:"bookingTime"`
	AdultsCount   int                  `json:"adultsCount"`
	ChildrenCount int                  `json:"childrenCount"`
	Note          string               `json:"note"`
	Status        string               `json:"status"`
	DishIDs       []uuid.UUID          `json:"dishIds"`
	Reservation   *ReservationResponse `json:"reservation,omitempty"`
	Version       int64                `json:"version"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// FromBooking renders a command result; tables are not hydrated.
func FromBooking(b *booking.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:            b.ID(),
		RestaurantID:  b.RestaurantID(),
		CustomerID:    b.Party().CustomerID(),
		GuestID:       b.Party().GuestID(),
		BookingTime:   b.BookingTime(),
		AdultsCount:   b.AdultsCount(),
		ChildrenCount: b.ChildrenCount(),
		Note:          b.Note().String(),
		Status:        b.Status().String(),
		DishIDs:       nonNilIDs(b.DishIDs()),
		Version:       b.Version(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
	if res := b.Reservation(); res != nil {
		resp.Reservation = &ReservationResponse{
			TableIDs: res.TableIDs(),
			Status:   res.Status().String(),
		}
	}
	return resp
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{
		ID:            v.ID,
		RestaurantID:  v.RestaurantID,
		CustomerID:    v.CustomerID,
		GuestID:       v.GuestID,
		BookingTime:   v.BookingTime,
		AdultsCount:   v.AdultsCount,
		ChildrenCount: v.ChildrenCount,
		Note:          v.Note,
		Status:        v.Status,
		DishIDs:       nonNilIDs(v.DishIDs),
		Version:       v.Version,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
	if v.Reservation != nil {
		resp.Reservation = &ReservationResponse{
			TableIDs: v.Reservation.TableIDs,
			Tables:   FromTableViews(v.Reservation.Tables),
			Status:   v.Reservation.Status,
		}
	}
	return resp
}

func FromBookingViews(vs []queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(vs))
	for i := range vs {
		out = append(out, FromBookingView(&vs[i]))
	}
	return out
}

func FromTableView(v queries.TableView) TableResponse {
	return TableResponse{
		ID:           v.ID,
		RestaurantID: v.RestaurantID,
		Name:         v.Name,
		Capacity:     v.Capacity,
	}
}

func FromTableViews(vs []queries.TableView) []TableResponse {
	out := make([]TableResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromTableView(v))
	}
	return out
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
