package queries

import (
	"context"
	"time"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/domain/table"

	"github.com/google/uuid"
)

// BookingFilter narrows FindBookings. From is inclusive, To exclusive.
// TableID matches bookings whose reservation references that table.
// Results are ordered by booking time, then ID.
type BookingFilter struct {
	From            *time.Time
	To              *time.Time
	RestaurantID    *uuid.UUID
	CustomerID      *uuid.UUID
	TableID         *uuid.UUID
	WithReservation bool
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindBookings(ctx context.Context, filter BookingFilter) ([]*booking.Booking, error)
}

type TableReadStore interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*table.Table, error)
	// FindExcludingIDs returns the table universe minus ids, optionally
	// restricted to one restaurant.
	FindExcludingIDs(ctx context.Context, ids []uuid.UUID, restaurantID *uuid.UUID) ([]*table.Table, error)
}

type StatsReadStore interface {
	CountBookings(ctx context.Context) (int64, error)
	CountBookingsByStatus(ctx context.Context) ([]StatusCount, error)
	CountTableSlotsByStatuses(ctx context.Context, statuses []booking.Status) (int64, error)
	CountBookingsByMonth(ctx context.Context) ([]MonthCount, error)
	TopCustomers(ctx context.Context, limit int32) ([]RankedEntity, error)
	TopRestaurants(ctx context.Context, limit int32) ([]RankedEntity, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountGuests(ctx context.Context) (int64, error)
	CountRestaurants(ctx context.Context) (int64, error)
	CountTables(ctx context.Context) (int64, error)
}

// StatsCache memoises daily stats per local date.
type StatsCache interface {
	Get(ctx context.Context, date string) (*DailyStatsView, bool, error)
	Set(ctx context.Context, date string, stats *DailyStatsView) error
}

type nopStatsCache struct{}

func NewNopStatsCache() StatsCache { return nopStatsCache{} }

func (nopStatsCache) Get(context.Context, string) (*DailyStatsView, bool, error) {
	return nil, false, nil
}

func (nopStatsCache) Set(context.Context, string, *DailyStatsView) error { return nil }
