package queries

import (
	"time"

	"restaurant-booking/internal/domain/allocation"
	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/domain/table"

	"github.com/google/uuid"
)

// TableView represents read-optimized table data
type TableView struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Capacity     int       `json:"capacity"`
}

type ReservationView struct {
	// TableIDs are the stored refs, duplicates and dangling refs included.
	TableIDs []uuid.UUID `json:"table_ids"`
	// Tables holds resolved tables in stored order; unresolved refs are absent.
	Tables   []TableView `json:"tables"`
	Status   string      `json:"status"`
}

// BookingView is a booking with its reservation tables hydrated.
type BookingView struct {
	ID            uuid.UUID        `json:"id"`
	RestaurantID  uuid.UUID        `json:"restaurant_id"`
	CustomerID    *uuid.UUID       `json:"customer_id,omitempty"`
	GuestID       *uuid.UUID       `json:"guest_id,omitempty"`
	BookingTime   time.Time        `json:"booking_time"`
	AdultsCount   int              `json:"adults_count"`
	ChildrenCount int              `json:"children_count"`
	Note          string           `json:"note"`
	Status        string           `json:"status"`
	DishIDs       []uuid.UUID      `json:"dish_ids"`
	Reservation   *ReservationView `json:"reservation,omitempty"`
	Version       int64            `json:"version"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

type WindowView struct {
	Mode  string    `json:"mode"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityView struct {
	Window          WindowView    `json:"window"`
	Bookings        []BookingView `json:"bookings"`
	AvailableTables []TableView   `json:"available_tables"`
}

type BookedTableView struct {
	Table             TableView `json:"table"`
	BookingID         uuid.UUID `json:"booking_id"`
	BookingTime       time.Time `json:"booking_time"`
	ReservationStatus string    `json:"reservation_status"`
}

type TableCountView struct {
	Table TableView `json:"table"`
	Count int       `json:"count"`
}

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// RankedEntity is a customer or restaurant ranked by booking count.
type RankedEntity struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Bookings int64     `json:"bookings"`
}

type DailyStatsView struct {
	Date                string           `json:"date"`
	BookedTableSlots    int              `json:"booked_table_slots"`
	TableFrequencies    []TableCountView `json:"table_frequencies"`
	MostBookedTable     *TableCountView  `json:"most_booked_table"`
	LeastBookedTable    *TableCountView  `json:"least_booked_table"`
	TotalBookings       int64            `json:"total_bookings"`
	BookingsByStatus    []StatusCount    `json:"bookings_by_status"`
	AssignedTableSlots  int64            `json:"assigned_table_slots"`
	CancelledTableSlots int64            `json:"cancelled_table_slots"`
	TotalCustomers      int64            `json:"total_customers"`
	TotalRestaurants    int64            `json:"total_restaurants"`
	TotalTables         int64            `json:"total_tables"`
	BookingsByMonth     []MonthCount     `json:"bookings_by_month"`
	TopCustomers        []RankedEntity   `json:"top_customers"`
	TopRestaurants      []RankedEntity   `json:"top_restaurants"`
}

func toTableView(t *table.Table) TableView {
	return TableView{
		ID:           t.ID(),
		RestaurantID: t.RestaurantID(),
		Name:         t.Name(),
		Capacity:     t.Capacity(),
	}
}

func toTableViews(tables []*table.Table) []TableView {
	out := make([]TableView, 0, len(tables))
	for _, t := range tables {
		out = append(out, toTableView(t))
	}
	return out
}

func toBookingView(rb allocation.ResolvedBooking) BookingView {
	b := rb.Booking
	v := BookingView{
		ID:            b.ID(),
		RestaurantID:  b.RestaurantID(),
		CustomerID:    b.Party().CustomerID(),
		GuestID:       b.Party().GuestID(),
		BookingTime:   b.BookingTime(),
		AdultsCount:   b.AdultsCount(),
		ChildrenCount: b.ChildrenCount(),
		Note:          b.Note().String(),
		Status:        b.Status().String(),
		DishIDs:       b.DishIDs(),
		Version:       b.Version(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
	if res := b.Reservation(); res != nil {
		v.Reservation = &ReservationView{
			TableIDs: res.TableIDs(),
			Tables:   toTableViews(rb.Tables),
			Status: res.Status().String(),
		}
	}
	return v
}

func toTableCountView(tc *allocation.TableCount) *TableCountView {
	if tc == nil {
		return nil
	}
	return &TableCountView{Table: toTableView(tc.Table), Count: tc.Count}
}

func windowView(mode booking.WindowMode, w booking.Window) WindowView {
	return WindowView{Mode: mode.String(), Start: w.Start(), End: w.End()}
}
