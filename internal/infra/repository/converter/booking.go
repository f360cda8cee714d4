package converter

import (
	"restaurant-booking/internal/domain/booking"
	sqlc "restaurant-booking/internal/infra/sqlc/generated"
	"restaurant-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	tableIDs, resStatus := reservationColumns(b)
	return sqlc.CreateBookingParams{
		ID:                  b.ID(),
		RestaurantID:        b.RestaurantID(),
		CustomerID:          pgconv.UUIDPtrToPgtype(b.Party().CustomerID()),
		GuestID:             pgconv.UUIDPtrToPgtype(b.Party().GuestID()),
		BookingTime:         pgconv.TimeToPgtype(b.BookingTime()),
		AdultsCount:         pgconv.IntToInt32(b.AdultsCount()),
		ChildrenCount:       pgconv.IntToInt32(b.ChildrenCount()),
		Note:                b.Note().String(),
		Status:              b.Status().String(),
		DishIds:             nonNilIDs(b.DishIDs()),
		ReservationTableIds: tableIDs,
		ReservationStatus:   resStatus,
		CreatedAt:           pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToSaveParams(b *booking.Booking, expectedVersion *int64) sqlc.SaveBookingParams {
	tableIDs, resStatus := reservationColumns(b)
	return sqlc.SaveBookingParams{
		ID:                  b.ID(),
		BookingTime:         pgconv.TimeToPgtype(b.BookingTime()),
		AdultsCount:         pgconv.IntToInt32(b.AdultsCount()),
		ChildrenCount:       pgconv.IntToInt32(b.ChildrenCount()),
		Note:                b.Note().String(),
		Status:              b.Status().String(),
		DishIds:             nonNilIDs(b.DishIDs()),
		ReservationTableIds: tableIDs,
		ReservationStatus:   resStatus,
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt()),
		ExpectedVersion:     pgconv.Int8PtrToPgtype(expectedVersion),
	}
}

// BookingFromRow trusts stored data; CHECK constraints guard the row shape.
func BookingFromRow(row sqlc.Bookings) *booking.Booking {
	var res *booking.Reservation
	if row.ReservationTableIds != nil {
		res = booking.ReconstructReservation(row.ReservationTableIds, booking.ReservationStatus(pgconv.StringFromPgtype(row.ReservationStatus)))
	}
	return booking.ReconstructBooking(booking.ReconstructParams{
		ID:            row.ID,
		RestaurantID:  row.RestaurantID,
		CustomerID:    pgconv.UUIDPtrFromPgtype(row.CustomerID),
		GuestID:       pgconv.UUIDPtrFromPgtype(row.GuestID),
		BookingTime:   pgconv.TimeFromPgtype(row.BookingTime),
		AdultsCount:   int(row.AdultsCount),
		ChildrenCount: int(row.ChildrenCount),
		Note:          row.Note,
		Status:        booking.Status(row.Status),
		DishIDs:       row.DishIds,
		Reservation:   res,
		Version:       row.Version,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func reservationColumns(b *booking.Booking) ([]uuid.UUID, pgtype.Text) {
	res := b.Reservation()
	if res == nil {
		return nil, pgtype.Text{Valid: false}
	}
	return res.TableIDs(), pgconv.StringToPgtype(res.Status().String())
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
