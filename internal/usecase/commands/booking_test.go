//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/domain/table"
	"restaurant-booking/internal/pkg/clock"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/commands"
	"restaurant-booking/tests/common/builder"
	"restaurant-booking/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	ctx          context.Context
	store        *memstore.Store
	clock        *clock.MockClock
	uc           commands.BookingCommands
	restaurantID uuid.UUID
	tables       []*table.Table
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.clock = clock.NewMockClock(builder.FixedNow)
	s.uc = commands.NewBookingUseCase(s.store, s.clock)

	s.restaurantID = uuid.New()
	s.store.AddRestaurant(s.restaurantID, "Pho 24")
	s.tables = builder.OrderedTables(s.restaurantID, "T1", "T2", "T3")
	s.store.AddTables(s.tables...)
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) seedBooking(mutate ...func(*builder.BookingBuilder)) *booking.Booking {
	bb := builder.NewBookingBuilder().WithRestaurantID(s.restaurantID)
	for _, m := range mutate {
		bb.With(m)
	}
	b := bb.BuildStored()
	s.store.PutBooking(b)
	return b
}

func (s *BookingCommandsTestSuite) tableID(i int) uuid.UUID {
	return s.tables[i].ID()
}

func (s *BookingCommandsTestSuite) assertKind(err error, kind error) {
	s.Require().Error(err)
	s.True(errs.Is(err, kind), "expected kind %v, got %v", kind, err)
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	customerID := uuid.New()
	valid := func() commands.CreateBookingRequest {
		return commands.CreateBookingRequest{
			RestaurantID: s.restaurantID,
			CustomerID:   &customerID,
			BookingTime:  builder.FixedNow.Add(2 * time.Hour),
			Note:         " anniversary ",
		}
	}

	s.Run("success: stored as PENDING with defaults and outbox event", func() {
		b, err := s.uc.CreateBooking(s.ctx, valid())
		s.Require().NoError(err)

		s.Equal(booking.StatusPending, b.Status())
		s.Equal(booking.DefaultAdultsCount, b.AdultsCount())
		s.Equal(0, b.ChildrenCount())
		s.Equal("anniversary", b.Note().String())
		s.Equal(int64(1), b.Version())
		s.Nil(b.Reservation())
		s.NotNil(s.store.Booking(b.ID()))

		jobs := s.store.Jobs()
		s.Require().Len(jobs, 1)
		s.Equal(commands.TopicBookingCreated, jobs[0].Topic)
		s.Equal("event", jobs[0].Kind)
	})

	cases := []struct {
		name   string
		mutate func(*commands.CreateBookingRequest)
		kind   error
	}{
		{
			name:   "error: booking time not in the future",
			mutate: func(r *commands.CreateBookingRequest) { r.BookingTime = builder.FixedNow },
			kind:   errs.ErrInvalidArgument,
		},
		{
			name:   "error: no party",
			mutate: func(r *commands.CreateBookingRequest) { r.CustomerID = nil },
			kind:   errs.ErrInvalidArgument,
		},
		{
			name: "error: both customer and guest",
			mutate: func(r *commands.CreateBookingRequest) {
				g := uuid.New()
				r.GuestID = &g
			},
			kind: errs.ErrInvalidArgument,
		},
		{
			name: "error: negative children",
			mutate: func(r *commands.CreateBookingRequest) {
				n := -1
				r.ChildrenCount = &n
			},
			kind: errs.ErrInvalidArgument,
		},
		{
			name:   "error: unknown restaurant",
			mutate: func(r *commands.CreateBookingRequest) { r.RestaurantID = uuid.New() },
			kind:   errs.ErrNotFound,
		},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			before := len(s.store.Jobs())
			req := valid()
			tc.mutate(&req)

			_, err := s.uc.CreateBooking(s.ctx, req)
			s.assertKind(err, tc.kind)
			s.Len(s.store.Jobs(), before)
		})
	}
}

// ================================================================================
// AssignTables
// ================================================================================

func (s *BookingCommandsTestSuite) TestAssignTables() {
	s.Run("success: assigns tables, defaults RESERVED, bumps version", func() {
		b := s.seedBooking()

		got, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{
			BookingID: b.ID(),
			TableIDs:  []uuid.UUID{s.tableID(0)},
		})
		s.Require().NoError(err)

		s.Equal(booking.StatusTableAssigned, got.Status())
		s.Equal(booking.ReservationReserved, got.Reservation().Status())
		s.Equal([]uuid.UUID{s.tableID(0)}, got.TableIDs())
		s.Equal(b.Version()+1, got.Version())

		jobs := s.store.Jobs()
		s.Require().Len(jobs, 1)
		s.Equal(commands.TopicBookingTablesAssigned, jobs[0].Topic)

		var ev commands.BookingEvent
		s.Require().NoError(json.Unmarshal(jobs[0].Payload, &ev))
		s.Equal(b.ID(), ev.BookingID)
		s.Equal([]uuid.UUID{s.tableID(0)}, ev.TableIDs)
		s.Equal("RESERVED", ev.ReservationStatus)
	})

	s.Run("success: explicit initial status is stored as supplied", func() {
		b := s.seedBooking()

		got, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{
			BookingID: b.ID(),
			TableIDs:  []uuid.UUID{s.tableID(1)},
			Status:    " confirmed ",
		})
		s.Require().NoError(err)
		s.Equal(booking.ReservationStatus("confirmed"), got.Reservation().Status())
		s.Equal(booking.ReservationStatus("confirmed"), s.store.Booking(b.ID()).Reservation().Status())
	})

	s.Run("success: repeating the same assignment yields the same state", func() {
		b := s.seedBooking()
		req := commands.AssignTablesRequest{BookingID: b.ID(), TableIDs: []uuid.UUID{s.tableID(0), s.tableID(2)}}

		first, err := s.uc.AssignTables(s.ctx, req)
		s.Require().NoError(err)
		second, err := s.uc.AssignTables(s.ctx, req)
		s.Require().NoError(err)

		s.Equal(first.TableIDs(), second.TableIDs())
		s.Equal(first.Status(), second.Status())
		s.Equal(first.Reservation().Status(), second.Reservation().Status())
	})

	s.Run("success: duplicate ids are accepted and kept", func() {
		b := s.seedBooking()

		got, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{
			BookingID: b.ID(),
			TableIDs:  []uuid.UUID{s.tableID(0), s.tableID(0)},
		})
		s.Require().NoError(err)
		s.Equal(2, got.Reservation().SlotCount())
	})

	s.Run("success: reassignment overwrites previous reservation", func() {
		b := s.seedBooking(func(bb *builder.BookingBuilder) {
			bb.WithTables(s.tableID(0)).WithReservationStatus(booking.ReservationSeated)
		})

		got, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{BookingID: b.ID(), TableIDs: []uuid.UUID{s.tableID(2)}})
		s.Require().NoError(err)
		s.Equal([]uuid.UUID{s.tableID(2)}, got.TableIDs())
		s.Equal(booking.ReservationReserved, got.Reservation().Status())
	})

	s.Run("error: empty table list", func() {
		b := s.seedBooking()

		_, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{BookingID: b.ID()})
		s.assertKind(err, errs.ErrInvalidArgument)
	})

	s.Run("error: unknown table leaves booking unchanged", func() {
		b := s.seedBooking()
		before := len(s.store.Jobs())

		_, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{
			BookingID: b.ID(),
			TableIDs:  []uuid.UUID{s.tableID(0), uuid.New()},
		})
		s.assertKind(err, errs.ErrValidation)
		s.True(errs.Is(err, commands.ErrTablesNotFound))

		stored := s.store.Booking(b.ID())
		s.Nil(stored.Reservation())
		s.Equal(booking.StatusPending, stored.Status())
		s.Equal(b.Version(), stored.Version())
		s.Len(s.store.Jobs(), before)
	})

	s.Run("error: unknown booking", func() {
		_, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{
			BookingID: uuid.New(),
			TableIDs:  []uuid.UUID{s.tableID(0)},
		})
		s.assertKind(err, errs.ErrNotFound)
	})

	s.Run("error: unknown table is reported before unknown booking", func() {
		_, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{
			BookingID: uuid.New(),
			TableIDs:  []uuid.UUID{uuid.New()},
		})
		s.assertKind(err, errs.ErrValidation)
		s.True(errs.Is(err, commands.ErrTablesNotFound))
	})

	s.Run("error: store failure surfaces as persistence", func() {
		b := s.seedBooking()
		s.store.SetFailure(errs.New("connection reset"))
		defer s.store.SetFailure(nil)

		_, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{BookingID: b.ID(), TableIDs: []uuid.UUID{s.tableID(0)}})
		s.assertKind(err, errs.ErrPersistence)
	})
}

// ================================================================================
// Concurrency
// ================================================================================

func (s *BookingCommandsTestSuite) TestConcurrentAssignments() {
	s.Run("last writer wins without expected version", func() {
		b := s.seedBooking()

		s.store.OnSave(func() {
			_, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{BookingID: b.ID(), TableIDs: []uuid.UUID{s.tableID(1)}})
			s.Require().NoError(err)
		})
		got, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{BookingID: b.ID(), TableIDs: []uuid.UUID{s.tableID(0)}})
		s.Require().NoError(err)

		s.Equal([]uuid.UUID{s.tableID(0)}, got.TableIDs())
		s.Equal([]uuid.UUID{s.tableID(0)}, s.store.Booking(b.ID()).TableIDs())
		s.Equal(b.Version()+2, s.store.Booking(b.ID()).Version())
	})

	s.Run("expected version turns the race into a conflict", func() {
		b := s.seedBooking()
		version := b.Version()

		s.store.OnSave(func() {
			_, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{BookingID: b.ID(), TableIDs: []uuid.UUID{s.tableID(1)}})
			s.Require().NoError(err)
		})
		_, err := s.uc.AssignTables(s.ctx, commands.AssignTablesRequest{
			BookingID:       b.ID(),
			TableIDs:        []uuid.UUID{s.tableID(0)},
			ExpectedVersion: &version,
		})
		s.assertKind(err, errs.ErrVersionConflict)
		s.Equal([]uuid.UUID{s.tableID(1)}, s.store.Booking(b.ID()).TableIDs())
	})

	s.Run("stale expected version is rejected before writing", func() {
		b := s.seedBooking()
		stale := b.Version() - 1

		_, err := s.uc.SetReservationStatus(s.ctx, commands.SetReservationStatusRequest{
			BookingID:       b.ID(),
			Status:          "CONFIRMED",
			ExpectedVersion: &stale,
		})
		s.assertKind(err, errs.ErrVersionConflict)
		s.Equal(b.Version(), s.store.Booking(b.ID()).Version())
	})
}

// ================================================================================
// SetReservationStatus
// ================================================================================

func (s *BookingCommandsTestSuite) TestSetReservationStatus() {
	s.Run("success: updates status and keeps tables", func() {
		b := s.seedBooking(func(bb *builder.BookingBuilder) { bb.WithTables(s.tableID(0), s.tableID(1)) })

		got, err := s.uc.SetReservationStatus(s.ctx, commands.SetReservationStatusRequest{BookingID: b.ID(), Status: "SEATED"})
		s.Require().NoError(err)

		s.Equal(booking.ReservationSeated, got.Reservation().Status())
		s.Equal([]uuid.UUID{s.tableID(0), s.tableID(1)}, got.TableIDs())

		jobs := s.store.Jobs()
		s.Require().NotEmpty(jobs)
		s.Equal(commands.TopicBookingReservationStatusChanged, jobs[len(jobs)-1].Topic)
	})

	s.Run("success: matching expected version", func() {
		b := s.seedBooking(func(bb *builder.BookingBuilder) { bb.WithTables(s.tableID(2)) })
		v := b.Version()

		got, err := s.uc.SetReservationStatus(s.ctx, commands.SetReservationStatusRequest{BookingID: b.ID(), Status: "CANCELLED", ExpectedVersion: &v})
		s.Require().NoError(err)
		s.Equal(v+1, got.Version())
	})

	s.Run("success: caller casing is kept", func() {
		b := s.seedBooking(func(bb *builder.BookingBuilder) { bb.WithTables(s.tableID(0)) })

		got, err := s.uc.SetReservationStatus(s.ctx, commands.SetReservationStatusRequest{BookingID: b.ID(), Status: "confirmed"})
		s.Require().NoError(err)

		s.Equal(booking.ReservationStatus("confirmed"), got.Reservation().Status())
		s.Equal(booking.ReservationStatus("confirmed"), s.store.Booking(b.ID()).Reservation().Status())
	})

	s.Run("error: booking without reservation is not mutated", func() {
		b := s.seedBooking()

		_, err := s.uc.SetReservationStatus(s.ctx, commands.SetReservationStatusRequest{BookingID: b.ID(), Status: "CONFIRMED"})
		s.assertKind(err, errs.ErrValidation)
		s.True(errs.Is(err, booking.ErrReservationNotFound))

		stored := s.store.Booking(b.ID())
		s.Nil(stored.Reservation())
		s.Equal(b.Version(), stored.Version())
	})

	s.Run("error: empty status", func() {
		b := s.seedBooking(func(bb *builder.BookingBuilder) { bb.WithTables(s.tableID(0)) })

		_, err := s.uc.SetReservationStatus(s.ctx, commands.SetReservationStatusRequest{BookingID: b.ID(), Status: "  "})
		s.assertKind(err, errs.ErrInvalidArgument)
	})

	s.Run("error: unknown booking", func() {
		_, err := s.uc.SetReservationStatus(s.ctx, commands.SetReservationStatusRequest{BookingID: uuid.New(), Status: "CONFIRMED"})
		s.assertKind(err, errs.ErrNotFound)
	})
}

// ================================================================================
// PatchFields
// ================================================================================

func (s *BookingCommandsTestSuite) TestPatchFields() {
	s.Run("success: patches whitelisted fields only", func() {
		b := s.seedBooking()
		adults := 5
		status := "confirmed"

		got, err := s.uc.PatchFields(s.ctx, commands.PatchFieldsRequest{BookingID: b.ID(), AdultsCount: &adults, Status: &status})
		s.Require().NoError(err)

		s.Equal(5, got.AdultsCount())
		s.Equal(booking.StatusConfirmed, got.Status())
		s.Equal(b.BookingTime(), got.BookingTime())
		s.Equal(b.Note().String(), got.Note().String())
	})

	s.Run("success: past booking time is accepted", func() {
		b := s.seedBooking()
		past := builder.FixedNow.Add(-72 * time.Hour)

		got, err := s.uc.PatchFields(s.ctx, commands.PatchFieldsRequest{BookingID: b.ID(), BookingTime: &past})
		s.Require().NoError(err)
		s.True(past.Equal(got.BookingTime()))
	})

	s.Run("success: empty patch returns the booking unchanged", func() {
		b := s.seedBooking()
		jobsBefore := len(s.store.Jobs())

		got, err := s.uc.PatchFields(s.ctx, commands.PatchFieldsRequest{BookingID: b.ID()})
		s.Require().NoError(err)

		s.Equal(b.ID(), got.ID())
		s.Equal(b.Version(), got.Version())
		s.Equal(b.Status(), got.Status())
		s.Equal(b.Version(), s.store.Booking(b.ID()).Version())
		s.Len(s.store.Jobs(), jobsBefore)
	})

	s.Run("error: empty patch on unknown booking", func() {
		_, err := s.uc.PatchFields(s.ctx, commands.PatchFieldsRequest{BookingID: uuid.New()})
		s.assertKind(err, errs.ErrNotFound)
	})

	s.Run("error: empty patch with stale expected version", func() {
		b := s.seedBooking()
		stale := b.Version() - 1

		_, err := s.uc.PatchFields(s.ctx, commands.PatchFieldsRequest{BookingID: b.ID(), ExpectedVersion: &stale})
		s.assertKind(err, errs.ErrVersionConflict)
	})

	s.Run("error: schema rejects unknown status", func() {
		b := s.seedBooking()
		status := "ARCHIVED"

		_, err := s.uc.PatchFields(s.ctx, commands.PatchFieldsRequest{BookingID: b.ID(), Status: &status})
		s.assertKind(err, errs.ErrValidation)
		s.Equal(booking.StatusPending, s.store.Booking(b.ID()).Status())
	})

	s.Run("error: schema rejects negative counts", func() {
		b := s.seedBooking()
		n := -3

		_, err := s.uc.PatchFields(s.ctx, commands.PatchFieldsRequest{BookingID: b.ID(), ChildrenCount: &n})
		s.assertKind(err, errs.ErrValidation)
	})

	s.Run("error: unknown booking", func() {
		note := "x"
		_, err := s.uc.PatchFields(s.ctx, commands.PatchFieldsRequest{BookingID: uuid.New(), Note: &note})
		s.assertKind(err, errs.ErrNotFound)
	})
}
