package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking_queries.go -package=repositorymock

import (
	"context"

	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/infra/repository/converter"
	sqlc "restaurant-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	SaveBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.SaveBookingParams) (int64, error)
	BookingExists(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (bool, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// Save reports STALE_VERSION only when the row exists under another version.
func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking, expectedVersion *int64) error {
	affected, err := r.queries.SaveBooking(ctx, r.db, converter.BookingToSaveParams(b, expectedVersion))
	if err != nil {
		return infra.WrapRepoErr("failed to save booking", err)
	}
	if affected > 0 {
		return nil
	}

	if expectedVersion == nil {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	exists, err := r.queries.BookingExists(ctx, r.db, b.ID())
	if err != nil {
		return infra.WrapRepoErr("failed to check booking existence", err)
	}
	if !exists {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("booking version changed", nil, infra.KindStaleVersion)
}
