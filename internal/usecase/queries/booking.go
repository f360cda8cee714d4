package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"
	"log/slog"

	"restaurant-booking/internal/domain/allocation"
	"restaurant-booking/internal/domain/booking"
	"restaurant-booking/internal/domain/table"
	"restaurant-booking/internal/infra"
	"restaurant-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// List returns every booking matching the filter, unpaginated, ordered by
	// booking time then ID. A filter naming an unknown entity yields an empty list.
	List(ctx context.Context, filter BookingListFilter) ([]BookingView, error)
}

// BookingListFilter selects bookings by owner or held table. Unset fields match all.
type BookingListFilter struct {
	RestaurantID *uuid.UUID
	CustomerID   *uuid.UUID
	TableID      *uuid.UUID
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	tables   TableReadStore
}

func NewBookingQueries(bookings BookingReadStore, tables TableReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, tables: tables}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrBookingNotFound, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	resolved, err := resolveTables(ctx, q.tables, []*booking.Booking{b})
	if err != nil {
		return nil, err
	}
	v := toBookingView(resolved.Bookings[0])
	return &v, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingListFilter) ([]BookingView, error) {
	found, err := q.bookings.FindBookings(ctx, BookingFilter{
		RestaurantID: filter.RestaurantID,
		CustomerID:   filter.CustomerID,
		TableID:      filter.TableID,
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	resolved, err := resolveTables(ctx, q.tables, found)
	if err != nil {
		return nil, err
	}
	views := make([]BookingView, 0, len(resolved.Bookings))
	for _, rb := range resolved.Bookings {
		views = append(views, toBookingView(rb))
	}
	return views, nil
}

// resolveTables hydrates table refs with one batched lookup.
func resolveTables(ctx context.Context, tables TableReadStore, bookings []*booking.Booking) (allocation.Resolution, error) {
	refs := booking.DistinctIDs(allocation.CollectTableIDs(bookings))
	found, err := findTables(ctx, tables, refs)
	if err != nil {
		return allocation.Resolution{}, err
	}
	res := allocation.Resolve(bookings, found)
	if len(res.Dangling) > 0 {
		slog.WarnContext(ctx, "dropping unresolved table references", "table_ids", res.Dangling)
	}
	return res, nil
}

func findTables(ctx context.Context, tables TableReadStore, ids []uuid.UUID) ([]*table.Table, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := tables.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return found, nil
}
