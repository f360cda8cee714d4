package queries

import (
	"context"
	"log/slog"
	"time"

	"restaurant-booking/internal/domain/allocation"
	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/pkg/errs"
)

const topRankingLimit = 5

// DailyUtilizationStats reports table usage for the local day named by date
// (YYYY-MM-DD, today when empty) together with all-time totals.
func (q *allocationQueriesImpl) DailyUtilizationStats(ctx context.Context, date string) (*DailyStatsView, error) {
	loc := q.clock.Location()
	day := q.clock.Now().In(loc)
	if date != "" {
		parsed, err := booking.ParseDate(date, loc)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidArgument)
		}
		day = parsed
	}
	w := booking.DayWindow(day, loc)
	key := w.Start().Format(time.DateOnly)

	if cached, ok, err := q.cache.Get(ctx, key); err != nil {
		slog.WarnContext(ctx, "stats cache read failed", "date", key, "error", err.Error())
	} else if ok {
		return cached, nil
	}

	stats, err := q.computeDailyStats(ctx, w)
	if err != nil {
		return nil, err
	}
	stats.Date = key

	if err := q.cache.Set(ctx, key, stats); err != nil {
		slog.WarnContext(ctx, "stats cache write failed", "date", key, "error", err.Error())
	}
	return stats, nil
}

func (q *allocationQueriesImpl) computeDailyStats(ctx context.Context, w booking.Window) (*DailyStatsView, error) {
	start, end := w.Start(), w.End()
	dayBookings, err := q.bookings.FindBookings(ctx, BookingFilter{From: &start, To: &end})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	dayBookings = booking.SelectInWindow(w, dayBookings)

	found, err := findTables(ctx, q.tables, booking.DistinctIDs(allocation.CollectTableIDs(dayBookings)))
	if err != nil {
		return nil, err
	}
	tally := allocation.TallyDay(dayBookings, found)

	v := &DailyStatsView{
		BookedTableSlots: tally.BookedTableSlots,
		TableFrequencies: make([]TableCountView, 0, len(tally.Frequencies)),
		MostBookedTable:  toTableCountView(tally.MostBooked),
		LeastBookedTable: toTableCountView(tally.LeastBooked),
	}
	for i := range tally.Frequencies {
		v.TableFrequencies = append(v.TableFrequencies, *toTableCountView(&tally.Frequencies[i]))
	}

	if err := q.fillTotals(ctx, v); err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return v, nil
}

func (q *allocationQueriesImpl) fillTotals(ctx context.Context, v *DailyStatsView) error {
	var err error
	if v.TotalBookings, err = q.stats.CountBookings(ctx); err != nil {
		return err
	}
	if v.BookingsByStatus, err = q.stats.CountBookingsByStatus(ctx); err != nil {
		return err
	}
	if v.AssignedTableSlots, err = q.stats.CountTableSlotsByStatuses(ctx, booking.SlotCountingStatuses); err != nil {
		return err
	}
	if v.CancelledTableSlots, err = q.stats.CountTableSlotsByStatuses(ctx, []booking.Status{booking.StatusCancelled}); err != nil {
		return err
	}

	customers, err := q.stats.CountCustomers(ctx)
	if err != nil {
		return err
	}
	guests, err := q.stats.CountGuests(ctx)
	if err != nil {
		return err
	}
	v.TotalCustomers = customers + guests

	if v.TotalRestaurants, err = q.stats.CountRestaurants(ctx); err != nil {
		return err
	}
	if v.TotalTables, err = q.stats.CountTables(ctx); err != nil {
		return err
	}
	if v.BookingsByMonth, err = q.stats.CountBookingsByMonth(ctx); err != nil {
		return err
	}
	if v.TopCustomers, err = q.stats.TopCustomers(ctx, topRankingLimit); err != nil {
		return err
	}
	v.TopRestaurants, err = q.stats.TopRestaurants(ctx, topRankingLimit)
	return err
}
