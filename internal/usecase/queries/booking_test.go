//go:build unit

package queries_test

import (
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/queries"
	"restaurant-booking/tests/common/builder"

	"github.com/google/uuid"
)

func (s *AllocationQueriesTestSuite) TestGetBookingByID() {
	bq := queries.NewBookingQueries(s.store, s.store)

	s.Run("success: resolves reservation tables in stored order", func() {
		b := s.seed(evening(19, 0), s.tables[2].ID(), uuid.New(), s.tables[0].ID())

		got, err := bq.GetByID(s.ctx, b.ID())
		s.Require().NoError(err)
		s.Equal(b.ID(), got.ID)
		s.Require().NotNil(got.Reservation)
		s.Equal([]string{"T3", "T1"}, tableNames(got.Reservation.Tables))
		s.Equal("RESERVED", got.Reservation.Status)
		s.Equal("TABLE_ASSIGNED", got.Status)
	})

	s.Run("success: unassigned booking has no reservation", func() {
		b := builder.NewBookingBuilder().WithRestaurantID(s.restaurantID).BuildStored()
		s.store.PutBooking(b)

		got, err := bq.GetByID(s.ctx, b.ID())
		s.Require().NoError(err)
		s.Nil(got.Reservation)
		s.Equal("PENDING", got.Status)
	})

	s.Run("error: not found", func() {
		_, err := bq.GetByID(s.ctx, uuid.New())
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *AllocationQueriesTestSuite) TestListBookings() {
	bq := queries.NewBookingQueries(s.store, s.store)

	customerID := uuid.New()
	late := s.seed(evening(21, 0), s.tables[0].ID())
	early := builder.NewBookingBuilder().
		WithRestaurantID(s.restaurantID).
		WithBookingTime(evening(18, 0)).
		WithTables(s.tables[1].ID(), s.tables[0].ID()).
		With(func(bb *builder.BookingBuilder) { bb.CustomerID = &customerID }).
		BuildStored()
	s.store.PutBooking(early)
	unassigned := builder.NewBookingBuilder().
		WithRestaurantID(s.restaurantID).
		WithBookingTime(evening(19, 0)).
		With(func(bb *builder.BookingBuilder) { bb.CustomerID = &customerID }).
		BuildStored()
	s.store.PutBooking(unassigned)
	other := builder.NewBookingBuilder().WithBookingTime(evening(20, 0)).BuildStored()
	s.store.PutBooking(other)

	s.Run("success: all bookings ordered by booking time", func() {
		got, err := bq.List(s.ctx, queries.BookingListFilter{})
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{early.ID(), unassigned.ID(), other.ID(), late.ID()}, viewIDs(got))
	})

	s.Run("success: bookings holding a table, tables hydrated", func() {
		tableID := s.tables[0].ID()
		got, err := bq.List(s.ctx, queries.BookingListFilter{TableID: &tableID})
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{early.ID(), late.ID()}, viewIDs(got))
		s.Require().NotNil(got[0].Reservation)
		s.Equal([]string{"T2", "T1"}, tableNames(got[0].Reservation.Tables))
	})

	s.Run("success: bookings of a customer include unassigned ones", func() {
		got, err := bq.List(s.ctx, queries.BookingListFilter{CustomerID: &customerID})
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{early.ID(), unassigned.ID()}, viewIDs(got))
		s.Nil(got[1].Reservation)
	})

	s.Run("success: restaurant filter", func() {
		got, err := bq.List(s.ctx, queries.BookingListFilter{RestaurantID: &s.restaurantID})
		s.Require().NoError(err)
		s.Len(got, 3)
	})

	s.Run("success: unknown table yields an empty list", func() {
		unknown := uuid.New()
		got, err := bq.List(s.ctx, queries.BookingListFilter{TableID: &unknown})
		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("error: store failure surfaces as persistence", func() {
		s.store.SetFailure(errs.New("connection reset"))
		defer s.store.SetFailure(nil)

		_, err := bq.List(s.ctx, queries.BookingListFilter{})
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrPersistence))
	})
}

func viewIDs(views []queries.BookingView) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}
