package queries

//go:generate mockgen -source=allocation.go -destination=../../../tests/mock/queries/allocation.go -package=queriesmock

import (
	"context"
	"time"

	"restaurant-booking/internal/domain/allocation"
	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/domain/table"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type AllocationSettings struct {
	DefaultToleranceMin int
	LegacyOffset        time.Duration
}

type AvailabilityRequest struct {
	// At is RFC 3339, or a local date-time without offset.
	At           string
	ToleranceMin *int
	Mode         booking.WindowMode
	RestaurantID *uuid.UUID
}

type AllocationQueries interface {
	BookingsAndAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityView, error)
	ClosestBookingPerTable(ctx context.Context) ([]BookedTableView, error)
	DailyUtilizationStats(ctx context.Context, date string) (*DailyStatsView, error)
}

type allocationQueriesImpl struct {
	bookings BookingReadStore
	tables   TableReadStore
	stats    StatsReadStore
	cache    StatsCache
	clock    clock.Clock
	settings AllocationSettings
}

func NewAllocationQueries(
	bookings BookingReadStore,
	tables TableReadStore,
	stats StatsReadStore,
	cache StatsCache,
	clk clock.Clock,
	settings AllocationSettings,
) AllocationQueries {
	if cache == nil {
		cache = NewNopStatsCache()
	}
	return &allocationQueriesImpl{
		bookings: bookings,
		tables:   tables,
		stats:    stats,
		cache:    cache,
		clock:    clk,
		settings: settings,
	}
}

func (q *allocationQueriesImpl) BookingsAndAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityView, error) {
	ref, err := booking.ParseInstant(req.At, q.clock.Location())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}
	tolerance := q.settings.DefaultToleranceMin
	if req.ToleranceMin != nil {
		tolerance = *req.ToleranceMin
	}
	w, err := booking.NewWindow(req.Mode, ref, tolerance, q.settings.LegacyOffset)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidArgument)
	}

	start, end := w.Start(), w.End()
	candidates, err := q.bookings.FindBookings(ctx, BookingFilter{
		From:         &start,
		To:           &end,
		RestaurantID: req.RestaurantID,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	inWindow := booking.SelectInWindow(w, candidates)

	resolved, err := resolveTables(ctx, q.tables, inWindow)
	if err != nil {
		return nil, err
	}

	occupied := booking.DistinctIDs(allocation.CollectTableIDs(inWindow))
	available, err := q.tables.FindExcludingIDs(ctx, occupied, req.RestaurantID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	view := &AvailabilityView{
		Window:          windowView(req.Mode, w),
		Bookings:        make([]BookingView, 0, len(resolved.Bookings)),
		AvailableTables: toTableViews(table.SortByID(available)),
	}
	for _, rb := range resolved.Bookings {
		view.Bookings = append(view.Bookings, toBookingView(rb))
	}
	return view, nil
}

func (q *allocationQueriesImpl) ClosestBookingPerTable(ctx context.Context) ([]BookedTableView, error) {
	reserved, err := q.bookings.FindBookings(ctx, BookingFilter{WithReservation: true})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	found, err := findTables(ctx, q.tables, booking.DistinctIDs(allocation.CollectTableIDs(reserved)))
	if err != nil {
		return nil, err
	}

	closest := allocation.ClosestPerTable(q.clock.Now(), reserved, found)
	out := make([]BookedTableView, 0, len(closest))
	for _, c := range closest {
		out = append(out, BookedTableView{
			Table:             toTableView(c.Table),
			BookingID:         c.Booking.ID(),
			BookingTime:       c.BookingTime,
			ReservationStatus: c.ReservationStatus.String(),
		})
	}
	return out, nil
}
