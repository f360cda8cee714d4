//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"restaurant-booking/internal/handler/dto/request"
	"restaurant-booking/internal/handler/dto/response"
	"restaurant-booking/tests/common/authtest"
	"restaurant-booking/tests/common/dbtest"
	"restaurant-booking/tests/common/httptest"
	"restaurant-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL          = "/api/bookings"
	bookingURL           = "/api/bookings/%s"
	reservationURL       = "/api/bookings/%s/reservation"
	reservationStatusURL = "/api/bookings/%s/reservation/status"
	availabilityURL      = "/api/allocation/availability?at=%s&restaurantId=%s"
	bookedTablesURL      = "/api/allocation/booked-tables"
	statsURL             = "/api/allocation/stats?date=%s"
	tableBookingsURL     = "/api/tables/%s/bookings"
	customerBookingsURL  = "/api/customers/%s/bookings"
)

type BookingSuite struct {
	e2e.SharedSuite
	token string
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.token = authtest.NewJWTHelper(s.Config.JWT).StaffToken(s.T())
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type fixture struct {
	restaurantID uuid.UUID
	customerID   uuid.UUID
	tables       []uuid.UUID
}

func (s *BookingSuite) seed(t *testing.T) fixture {
	t.Helper()
	restaurantID := dbtest.CreateTestRestaurant(t, s.DB, "Pho 24")
	return fixture{
		restaurantID: restaurantID,
		customerID:   dbtest.CreateTestCustomer(t, s.DB, "Lan"),
		tables: []uuid.UUID{
			dbtest.CreateTestTable(t, s.DB, restaurantID, "T1", 2),
			dbtest.CreateTestTable(t, s.DB, restaurantID, "T2", 4),
			dbtest.CreateTestTable(t, s.DB, restaurantID, "T3", 6),
		},
	}
}

func (s *BookingSuite) createBooking(t *testing.T, f fixture, at time.Time) response.BookingResponse {
	t.Helper()
	customerID := f.customerID
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
		RestaurantID: f.restaurantID,
		CustomerID:   &customerID,
		BookingTime:  at,
		Note:         "window seat",
	}, s.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *BookingSuite) assign(t *testing.T, id uuid.UUID, tables ...uuid.UUID) response.BookingResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reservationURL, id),
		request.AssignTablesRequest{TableIDs: tables}, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
	return updated
}

// futureSlot returns noon UTC of the day d from now, so bookings an hour
// apart stay on the same local day.
func futureSlot(d time.Duration) time.Time {
	return time.Now().UTC().Add(d).Truncate(24 * time.Hour).Add(12 * time.Hour)
}

// =============================================================================
// TestBookingLifecycle
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: create, assign, change status and read back", func() {
		t := s.T()
		f := s.seed(t)
		at := futureSlot(48 * time.Hour)

		created := s.createBooking(t, f, at)
		require.Equal(t, "PENDING", created.Status)
		require.Equal(t, 1, created.AdultsCount)
		require.Nil(t, created.Reservation)

		assigned := s.assign(t, created.ID, f.tables[0], f.tables[1])
		require.Equal(t, "TABLE_ASSIGNED", assigned.Status)
		require.NotNil(t, assigned.Reservation)
		require.Equal(t, "RESERVED", assigned.Reservation.Status)
		require.Equal(t, created.Version+1, assigned.Version)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(reservationStatusURL, created.ID),
			request.SetReservationStatusRequest{Status: "SEATED"}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.ID), nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))

		customerID := f.customerID
		want := response.BookingResponse{
			ID:           created.ID,
			RestaurantID: f.restaurantID,
			CustomerID:   &customerID,
			BookingTime:  at,
			AdultsCount:  1,
			Note:         "window seat",
			Status:       "TABLE_ASSIGNED",
			DishIDs:      []uuid.UUID{},
			Reservation: &response.ReservationResponse{
				TableIDs: []uuid.UUID{f.tables[0], f.tables[1]},
				Tables: []response.TableResponse{
					{ID: f.tables[0], RestaurantID: f.restaurantID, Name: "T1", Capacity: 2},
					{ID: f.tables[1], RestaurantID: f.restaurantID, Name: "T2", Capacity: 4},
				},
				Status: "SEATED",
			},
			Version: created.Version + 2,
		}
		opts := cmp.Options{
			cmpopts.IgnoreFields(response.BookingResponse{}, "CreatedAt", "UpdatedAt"),
			cmpopts.EquateApproxTime(time.Second),
		}
		if diff := cmp.Diff(want, got, opts); diff != "" {
			t.Errorf("booking mismatch (-want +got):\n%s", diff)
		}

		topics := dbtest.OutboxTopics(t, s.DB, created.ID)
		require.Equal(t, []string{
			"booking.created",
			"booking.tables_assigned",
			"booking.reservation_status_changed",
		}, topics)
	})

	s.Run("Normal case: dangling table refs are skipped on read", func() {
		t := s.T()
		f := s.seed(t)
		created := s.createBooking(t, f, futureSlot(72*time.Hour))
		s.assign(t, created.ID, f.tables[0], f.tables[2])

		dbtest.DeleteTestTable(t, s.DB, f.tables[2])

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, created.ID), nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.NotNil(t, got.Reservation)
		require.Len(t, got.Reservation.TableIDs, 2)
		require.Len(t, got.Reservation.Tables, 1)
		require.Equal(t, f.tables[0], got.Reservation.Tables[0].ID)
	})
}

// =============================================================================
// TestBookingErrors
// =============================================================================

func (s *BookingSuite) TestBookingErrors() {
	s.Run("Error case: booking time in the past", func() {
		t := s.T()
		f := s.seed(t)
		customerID := f.customerID
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			RestaurantID: f.restaurantID,
			CustomerID:   &customerID,
			BookingTime:  time.Now().Add(-time.Hour),
		}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid argument")
	})

	s.Run("Error case: unknown restaurant", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Minh")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, request.CreateBookingRequest{
			RestaurantID: uuid.New(),
			CustomerID:   &customerID,
			BookingTime:  futureSlot(24 * time.Hour),
		}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Not found")
	})

	s.Run("Error case: assigning a table that does not exist", func() {
		t := s.T()
		f := s.seed(t)
		created := s.createBooking(t, f, futureSlot(24*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reservationURL, created.ID),
			request.AssignTablesRequest{TableIDs: []uuid.UUID{f.tables[0], uuid.New()}}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("Error case: status change without a reservation", func() {
		t := s.T()
		f := s.seed(t)
		created := s.createBooking(t, f, futureSlot(24*time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(reservationStatusURL, created.ID),
			request.SetReservationStatusRequest{Status: "SEATED"}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("Error case: stale expected version", func() {
		t := s.T()
		f := s.seed(t)
		created := s.createBooking(t, f, futureSlot(24*time.Hour))
		s.assign(t, created.ID, f.tables[0])

		stale := created.Version
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(reservationURL, created.ID),
			request.AssignTablesRequest{TableIDs: []uuid.UUID{f.tables[1]}, ExpectedVersion: &stale}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Version conflict")
	})

	s.Run("Error case: patching an unknown booking status", func() {
		t := s.T()
		f := s.seed(t)
		created := s.createBooking(t, f, futureSlot(24*time.Hour))

		status := "ARCHIVED"
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(bookingURL, created.ID),
			request.PatchBookingRequest{Status: &status}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Validation failed")
	})

	s.Run("Error case: missing bearer token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, uuid.New()), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}

// =============================================================================
// TestAllocation
// =============================================================================

func (s *BookingSuite) TestAllocation() {
	s.Run("Normal case: availability excludes tables booked inside the window", func() {
		t := s.T()
		f := s.seed(t)
		at := futureSlot(48 * time.Hour)

		inside := s.createBooking(t, f, at.Add(30*time.Minute))
		s.assign(t, inside.ID, f.tables[0])
		outside := s.createBooking(t, f, at.Add(3*time.Hour))
		s.assign(t, outside.ID, f.tables[1])

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(availabilityURL, at.Format(time.RFC3339), f.restaurantID), nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got response.AvailabilityResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, "direct", got.Window.Mode)
		require.Len(t, got.Bookings, 1)
		require.Equal(t, inside.ID, got.Bookings[0].ID)

		free := make([]uuid.UUID, 0, len(got.AvailableTables))
		for _, tbl := range got.AvailableTables {
			free = append(free, tbl.ID)
		}
		require.ElementsMatch(t, []uuid.UUID{f.tables[1], f.tables[2]}, free)
	})

	s.Run("Normal case: booked tables and daily stats", func() {
		t := s.T()
		f := s.seed(t)
		at := futureSlot(48 * time.Hour)

		first := s.createBooking(t, f, at)
		s.assign(t, first.ID, f.tables[0], f.tables[1])
		second := s.createBooking(t, f, at.Add(time.Hour))
		s.assign(t, second.ID, f.tables[0])

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookedTablesURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var booked []response.BookedTableResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &booked))
		require.Len(t, booked, 2)
		for _, b := range booked {
			require.Equal(t, first.ID, b.BookingID, "closest booking for table %s", b.Table.Name)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(statsURL, at.Format(time.DateOnly)), nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var stats response.DailyStatsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &stats))
		require.Equal(t, at.Format(time.DateOnly), stats.Date)
		require.Equal(t, int64(2), stats.TotalBookings)
		require.Equal(t, int64(3), stats.AssignedTableSlots)
		require.Equal(t, int64(3), stats.TotalTables)
		require.NotNil(t, stats.MostBookedTable)
		require.Equal(t, f.tables[0], stats.MostBookedTable.Table.ID)
		require.Equal(t, 2, stats.MostBookedTable.Count)
	})
}

// =============================================================================
// TestBookingListings
// =============================================================================

func (s *BookingSuite) TestBookingListings() {
	s.Run("Normal case: bookings by table, by customer and by filter", func() {
		t := s.T()
		f := s.seed(t)
		first := s.createBooking(t, f, futureSlot(72*time.Hour))
		second := s.createBooking(t, f, futureSlot(72*time.Hour).Add(time.Hour))
		s.assign(t, first.ID, f.tables[0])
		s.assign(t, second.ID, f.tables[1], f.tables[0])

		list := func(url string) []uuid.UUID {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			var got []response.BookingResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
			ids := make([]uuid.UUID, 0, len(got))
			for _, b := range got {
				ids = append(ids, b.ID)
			}
			return ids
		}

		require.Equal(t, []uuid.UUID{first.ID, second.ID}, list(fmt.Sprintf(tableBookingsURL, f.tables[0])))
		require.Equal(t, []uuid.UUID{second.ID}, list(fmt.Sprintf(tableBookingsURL, f.tables[1])))
		require.Empty(t, list(fmt.Sprintf(tableBookingsURL, f.tables[2])))
		require.Equal(t, []uuid.UUID{first.ID, second.ID}, list(fmt.Sprintf(customerBookingsURL, f.customerID)))
		require.Equal(t, []uuid.UUID{second.ID},
			list(fmt.Sprintf("%s?customerId=%s&tableId=%s", bookingsURL, f.customerID, f.tables[1])))
		require.Empty(t, list(fmt.Sprintf(customerBookingsURL, uuid.New())))
	})
}
