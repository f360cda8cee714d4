package readstore

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking_queries.go -package=readstoremock

import (
	"context"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/repository/converter"
	sqlc "restaurant-booking/internal/infra/sqlc/generated"
	"restaurant-booking/internal/pkg/pgconv"
	"restaurant-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return converter.BookingFromRow(row), nil
}

func (r *BookingReadStore) FindBookings(ctx context.Context, filter queries.BookingFilter) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookings(ctx, r.db, sqlc.ListBookingsParams{
		FromTime:        pgconv.TimePtrToPgtype(filter.From),
		ToTime:          pgconv.TimePtrToPgtype(filter.To),
		RestaurantID:    pgconv.UUIDPtrToPgtype(filter.RestaurantID),
		WithReservation: filter.WithReservation,
		CustomerID:      pgconv.UUIDPtrToPgtype(filter.CustomerID),
		TableID:         pgconv.UUIDPtrToPgtype(filter.TableID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.BookingFromRow(row))
	}
	return out, nil
}
