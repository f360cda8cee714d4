//go:build unit

package queries_test

import (
	"context"
	"time"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/tests/common/builder"

	"github.com/google/uuid"
)

type recordingCache struct {
	entries map[string]*queries.DailyStatsView
	getErr  error
	sets    int
}

func (c *recordingCache) Get(_ context.Context, date string) (*queries.DailyStatsView, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.entries[date]
	return v, ok, nil
}

func (c *recordingCache) Set(_ context.Context, date string, v *queries.DailyStatsView) error {
	c.sets++
	c.entries[date] = v
	return nil
}

func (s *AllocationQueriesTestSuite) TestDailyUtilizationStats() {
	t1, t2, t3 := s.tables[0].ID(), s.tables[1].ID(), s.tables[2].ID()
	customerID := uuid.New()
	s.store.AddCustomer(customerID, "Lan")
	s.store.AddGuest(uuid.New(), "Walk-in")

	put := func(at time.Time, status booking.Status, tables ...uuid.UUID) {
		b := builder.NewBookingBuilder().
			WithRestaurantID(s.restaurantID).
			WithBookingTime(at).
			WithTables(tables...).
			With(func(bb *builder.BookingBuilder) { bb.CustomerID = &customerID }).
			WithStatus(status).
			BuildStored()
		s.store.PutBooking(b)
	}
	put(evening(12, 0), booking.StatusTableAssigned, t1)
	put(evening(19, 0), booking.StatusCompleted, t1, t3)
	put(evening(23, 59), booking.StatusCancelled, t3, t2, t3)
	put(evening(0, 0).Add(24*time.Hour), booking.StatusTableAssigned, t2)
	put(time.Date(2025, 5, 20, 18, 0, 0, 0, time.UTC), booking.StatusPending)

	s.Run("success: day figures and all-time totals", func() {
		got, err := s.q.DailyUtilizationStats(s.ctx, "2025-06-02")
		s.Require().NoError(err)

		s.Equal("2025-06-02", got.Date)
		s.Equal(6, got.BookedTableSlots)
		s.Require().Len(got.TableFrequencies, 3)
		s.Require().NotNil(got.MostBookedTable)
		s.Equal("T3", got.MostBookedTable.Table.Name)
		s.Equal(3, got.MostBookedTable.Count)
		s.Equal("T2", got.LeastBookedTable.Table.Name)
		s.Equal(1, got.LeastBookedTable.Count)

		s.Equal(int64(5), got.TotalBookings)
		s.Equal(int64(4), got.AssignedTableSlots)
		s.Equal(int64(3), got.CancelledTableSlots)
		s.Equal(int64(2), got.TotalCustomers)
		s.Equal(int64(1), got.TotalRestaurants)
		s.Equal(int64(3), got.TotalTables)
		s.Equal([]queries.MonthCount{{Month: "2025-05", Count: 1}, {Month: "2025-06", Count: 4}}, got.BookingsByMonth)
		s.Require().Len(got.TopCustomers, 1)
		s.Equal("Lan", got.TopCustomers[0].Name)
		s.Equal(int64(5), got.TopCustomers[0].Bookings)
		s.Require().Len(got.TopRestaurants, 1)
		s.Equal(s.restaurantID, got.TopRestaurants[0].ID)
	})

	s.Run("success: empty day has no most or least booked", func() {
		got, err := s.q.DailyUtilizationStats(s.ctx, "2025-01-01")
		s.Require().NoError(err)
		s.Zero(got.BookedTableSlots)
		s.Nil(got.MostBookedTable)
		s.Nil(got.LeastBookedTable)
		s.Empty(got.TableFrequencies)
	})

	s.Run("success: empty date means today in the clock zone", func() {
		s.clock.Set(evening(8, 0))
		defer s.clock.Set(builder.FixedNow)

		got, err := s.q.DailyUtilizationStats(s.ctx, "")
		s.Require().NoError(err)
		s.Equal("2025-06-02", got.Date)
		s.Equal(6, got.BookedTableSlots)
	})

	s.Run("success: day boundaries follow the clock zone", func() {
		hcm, err := time.LoadLocation("Asia/Ho_Chi_Minh")
		s.Require().NoError(err)
		zoned := queries.NewAllocationQueries(s.store, s.store, s.store, nil,
			clock.NewMockClock(builder.FixedNow.In(hcm)), queries.AllocationSettings{DefaultToleranceMin: 60})

		// 2025-06-02 in +07:00 is [06-01 17:00Z, 06-02 17:00Z).
		got, err := zoned.DailyUtilizationStats(s.ctx, "2025-06-02")
		s.Require().NoError(err)
		s.Equal(1, got.BookedTableSlots)
		s.Equal("T1", got.MostBookedTable.Table.Name)
	})

	s.Run("success: cached result is reused", func() {
		cache := &recordingCache{entries: map[string]*queries.DailyStatsView{}}
		cached := queries.NewAllocationQueries(s.store, s.store, s.store, cache, s.clock, queries.AllocationSettings{})

		first, err := cached.DailyUtilizationStats(s.ctx, "2025-06-02")
		s.Require().NoError(err)
		second, err := cached.DailyUtilizationStats(s.ctx, "2025-06-02")
		s.Require().NoError(err)

		s.Same(first, second)
		s.Equal(1, cache.sets)
	})

	s.Run("success: cache failure is bypassed", func() {
		cache := &recordingCache{entries: map[string]*queries.DailyStatsView{}, getErr: errs.New("redis down")}
		cached := queries.NewAllocationQueries(s.store, s.store, s.store, cache, s.clock, queries.AllocationSettings{})

		got, err := cached.DailyUtilizationStats(s.ctx, "2025-06-02")
		s.Require().NoError(err)
		s.Equal(6, got.BookedTableSlots)
	})

	s.Run("error: malformed date", func() {
		_, err := s.q.DailyUtilizationStats(s.ctx, "06/02/2025")
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrInvalidArgument))
	})

	s.Run("error: store failure", func() {
		s.store.SetFailure(errs.New("timeout"))
		defer s.store.SetFailure(nil)

		_, err := s.q.DailyUtilizationStats(s.ctx, "2025-06-02")
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrPersistence))
	})
}
